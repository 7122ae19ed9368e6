package exporter

// Result is the outcome of one export pass. Warnings carry non-fatal
// degradations, such as a signature image that could not be decoded; the
// document in Data is still valid when warnings are present.
type Result struct {
	Data     []byte
	Warnings []string
}

// Exporter renders assembled report lines into one binary document format.
// Implementations are stateless single-pass transforms and never mutate the
// input lines.
type Exporter interface {
	Export(lines []string, signature []byte) (Result, error)
}

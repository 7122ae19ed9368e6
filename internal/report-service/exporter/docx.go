package exporter

import (
	"MLC_Report_Service/internal/report-service/model"
	"bytes"
	"fmt"

	docxlib "github.com/fumiama/go-docx"
)

const docxHeadingSize = "32" // half-points

// DOCXExporter renders report lines into a word-processing document: a bold
// heading followed by one paragraph per line. Pagination is left to the
// consuming word processor.
type DOCXExporter struct{}

func NewDOCXExporter() *DOCXExporter {
	return &DOCXExporter{}
}

// Export accepts the signature blob for interface parity but does not embed
// it in the document body.
func (e *DOCXExporter) Export(lines []string, _ []byte) (Result, error) {
	doc := docxlib.New().WithDefaultTheme()
	doc.AddParagraph().AddText(model.ReportTitle).Size(docxHeadingSize).Bold()
	for _, line := range lines {
		doc.AddParagraph().AddText(line)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return Result{}, fmt.Errorf("DOCXExporter.Export: %w", err)
	}
	return Result{Data: buf.Bytes()}, nil
}

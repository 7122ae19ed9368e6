package response

type Response struct {
	Message string `json:"message"`
}

type PreviewResponse struct {
	ReportText string `json:"report_text"`
}

type GenerateReportResponse struct {
	ReportText string   `json:"report_text"`
	Formats    []string `json:"formats"`
	Warnings   []string `json:"warnings,omitempty"`
}

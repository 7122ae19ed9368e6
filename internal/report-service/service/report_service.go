package service

import (
	"MLC_Report_Service/internal/report-service/assembler"
	"MLC_Report_Service/internal/report-service/exporter"
	"MLC_Report_Service/internal/report-service/model"
	"context"
	"fmt"
	"strings"
)

type ReportService interface {
	PreviewReport(ctx context.Context, report model.Report) (string, error)
	ExportPDF(ctx context.Context, report model.Report) (exporter.Result, error)
	ExportDOCX(ctx context.Context, report model.Report) (exporter.Result, error)
	GenerateReport(ctx context.Context, report model.Report) model.GeneratedReport
}

type reportService struct {
	pdfExporter  exporter.Exporter
	docxExporter exporter.Exporter
}

func (s *reportService) PreviewReport(_ context.Context, report model.Report) (string, error) {
	return assembler.Text(report), nil
}

func (s *reportService) ExportPDF(_ context.Context, report model.Report) (exporter.Result, error) {
	res, err := s.pdfExporter.Export(assembler.Assemble(report), report.SignatureImage)
	if err != nil {
		return exporter.Result{}, fmt.Errorf("ReportService.ExportPDF: %w", err)
	}
	return res, nil
}

func (s *reportService) ExportDOCX(_ context.Context, report model.Report) (exporter.Result, error) {
	res, err := s.docxExporter.Export(assembler.Assemble(report), report.SignatureImage)
	if err != nil {
		return exporter.Result{}, fmt.Errorf("ReportService.ExportDOCX: %w", err)
	}
	return res, nil
}

// GenerateReport assembles the report text and runs both exporters. A failed
// exporter never fails the pass: its format is omitted, a user-visible warning
// is added and the underlying error is kept in Failures for the caller to log.
func (s *reportService) GenerateReport(_ context.Context, report model.Report) model.GeneratedReport {
	lines := assembler.Assemble(report)
	generated := model.GeneratedReport{
		Text:     strings.Join(lines, "\n"),
		Failures: make(map[string]error),
	}

	exporters := []struct {
		format string
		exp    exporter.Exporter
	}{
		{model.FormatPDF, s.pdfExporter},
		{model.FormatDOCX, s.docxExporter},
	}
	for _, e := range exporters {
		res, err := e.exp.Export(lines, report.SignatureImage)
		if err != nil {
			generated.Failures[e.format] = fmt.Errorf("ReportService.GenerateReport: %w", err)
			generated.Warnings = append(generated.Warnings, fmt.Sprintf("%s export failed, download unavailable", e.format))
			continue
		}
		generated.Formats = append(generated.Formats, e.format)
		generated.Warnings = append(generated.Warnings, res.Warnings...)
	}
	return generated
}

func NewReportService(pdfExporter exporter.Exporter, docxExporter exporter.Exporter) ReportService {
	return &reportService{
		pdfExporter:  pdfExporter,
		docxExporter: docxExporter,
	}
}

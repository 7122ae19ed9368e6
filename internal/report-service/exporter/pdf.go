package exporter

import (
	"MLC_Report_Service/internal/report-service/model"
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfTitleFontSize = 14
	pdfBodyFontSize  = 11
	pdfBodyLineH     = 7
	signatureX       = 150
	signatureWidth   = 40
)

// PDFExporter renders report lines into an A4 PDF with a centered bold title,
// an optional letterhead line, a generated-on footer on every page and an
// optional signature image near the report foot.
type PDFExporter struct {
	hospitalName string
	now          func() time.Time
}

func NewPDFExporter(hospitalName string) *PDFExporter {
	return &PDFExporter{
		hospitalName: hospitalName,
		now:          time.Now,
	}
}

func (e *PDFExporter) Export(lines []string, signature []byte) (Result, error) {
	var res Result

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	generatedAt := e.now().Format("02-01-2006 15:04")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Generated on %s", generatedAt), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	if e.hospitalName != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, e.hospitalName, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "B", pdfTitleFontSize)
	pdf.CellFormat(0, 10, model.ReportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", pdfBodyFontSize)
	for _, line := range lines {
		pdf.MultiCell(0, pdfBodyLineH, line, "", "L", false)
	}
	pdf.Ln(6)

	if len(signature) > 0 {
		pngBytes, err := normalizeSignature(signature)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("signature image not embedded: %v", err))
		} else {
			opts := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("signature", opts, bytes.NewReader(pngBytes))
			pdf.ImageOptions("signature", signatureX, pdf.GetY(), signatureWidth, 0, false, opts, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Result{}, fmt.Errorf("PDFExporter.Export: %w", err)
	}
	res.Data = buf.Bytes()
	return res, nil
}

// normalizeSignature re-encodes an uploaded PNG or JPEG blob as PNG so the
// document only ever embeds one image type.
func normalizeSignature(blob []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

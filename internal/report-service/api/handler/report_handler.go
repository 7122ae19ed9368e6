package handler

import (
	"MLC_Report_Service/internal/report-service/api/dto/request"
	"MLC_Report_Service/internal/report-service/api/dto/response"
	"MLC_Report_Service/internal/report-service/model"
	"MLC_Report_Service/internal/report-service/service"
	"MLC_Report_Service/internal/report-service/web"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	pdfContentType  = "application/pdf"
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type ReportHandler interface {
	ServeForm() gin.HandlerFunc
	PreviewReport() gin.HandlerFunc
	GenerateReport() gin.HandlerFunc
	ExportReportToPDFFile() gin.HandlerFunc
	ExportReportToDOCXFile() gin.HandlerFunc
}

type reportHandler struct {
	logger        *zap.Logger
	reportService service.ReportService
	validator     *validator.Validate
}

func (*reportHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid date, use YYYY-MM-DD format", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *reportHandler) ServeForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.FormPage)
	}
}

func (h *reportHandler) PreviewReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := h.extractReportFromForm(c)
		if err != nil {
			h.respondBindError(c, err)
			return
		}
		text, err := h.reportService.PreviewReport(c, report)
		if err != nil {
			err = fmt.Errorf("ReportHandler.PreviewReport: %w", err)
			h.loggingError(c, err, "failed to preview report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.PreviewResponse{
			ReportText: text,
		})
	}
}

func (h *reportHandler) GenerateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := h.extractReportFromForm(c)
		if err != nil {
			h.respondBindError(c, err)
			return
		}
		generated := h.reportService.GenerateReport(c, report)
		for format, exportErr := range generated.Failures {
			exportErr = fmt.Errorf("ReportHandler.GenerateReport: %w", exportErr)
			h.loggingError(c, exportErr, fmt.Sprintf("failed to export report to %s", format), zap.WarnLevel)
		}
		c.JSON(http.StatusOK, response.GenerateReportResponse{
			ReportText: generated.Text,
			Formats:    generated.Formats,
			Warnings:   generated.Warnings,
		})
	}
}

func (h *reportHandler) ExportReportToPDFFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := h.extractReportFromForm(c)
		if err != nil {
			h.respondBindError(c, err)
			return
		}
		res, err := h.reportService.ExportPDF(c, report)
		if err != nil {
			err = fmt.Errorf("ReportHandler.ExportReportToPDFFile: %w", err)
			h.loggingError(c, err, "failed to export report to pdf", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		for _, warning := range res.Warnings {
			h.loggingError(c, errors.New(warning), "pdf export degraded", zap.WarnLevel)
			c.Writer.Header().Add("X-Report-Warning", warning)
		}
		fileName := fmt.Sprintf("MLC_Xray_Report_%s.pdf", fileNamePart(report.PatientName))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		c.Data(http.StatusOK, pdfContentType, res.Data)
	}
}

func (h *reportHandler) ExportReportToDOCXFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := h.extractReportFromForm(c)
		if err != nil {
			h.respondBindError(c, err)
			return
		}
		res, err := h.reportService.ExportDOCX(c, report)
		if err != nil {
			err = fmt.Errorf("ReportHandler.ExportReportToDOCXFile: %w", err)
			h.loggingError(c, err, "failed to export report to docx", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		fileName := fmt.Sprintf("MLC_Xray_Report_%s.docx", fileNamePart(report.PatientName))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		c.Data(http.StatusOK, docxContentType, res.Data)
	}
}

var errUnsupportedSignatureType = errors.New("unsupported signature image type")

func (h *reportHandler) extractReportFromForm(c *gin.Context) (model.Report, error) {
	var req request.ReportRequest
	if err := c.ShouldBind(&req); err != nil {
		return model.Report{}, err
	}
	if err := h.validator.Struct(req); err != nil {
		return model.Report{}, err
	}

	examDate := time.Now()
	if req.DateOfExam != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfExam)
		if err != nil {
			return model.Report{}, err
		}
		examDate = parsed
	}
	xrayType := req.XrayType
	if xrayType == model.XrayTypeOther {
		xrayType = req.XrayTypeOther
	}
	report := model.Report{
		PatientName:        req.PatientName,
		Age:                req.Age,
		Sex:                req.Sex,
		HospitalNo:         req.HospitalNo,
		ReferringPhysician: req.ReferringPhysician,
		DateOfExam:         examDate,
		XrayType:           xrayType,
		ClinicalHistory:    req.ClinicalHistory,
		Findings:           req.Findings,
		Impression:         req.Impression,
		DoctorName:         req.DoctorName,
	}

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return report, nil
	}
	fileHeader, err := c.FormFile("signature_image")
	if err != nil {
		// The signature upload is optional.
		return report, nil
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return model.Report{}, errUnsupportedSignatureType
	}
	fileContent, err := fileHeader.Open()
	if err != nil {
		return model.Report{}, err
	}
	defer fileContent.Close()
	blob, err := io.ReadAll(fileContent)
	if err != nil {
		return model.Report{}, err
	}
	report.SignatureImage = blob
	return report, nil
}

func (h *reportHandler) respondBindError(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	switch {
	case errors.As(err, &validatorError):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: h.formatValidationError(validatorError[0]),
		})
	case errors.Is(err, errUnsupportedSignatureType):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Signature image must be a PNG or JPEG file",
		})
	default:
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid request body",
		})
	}
}

// fileNamePart turns the patient name into a safe download file name segment,
// falling back to "patient" when the name is empty.
func fileNamePart(patientName string) string {
	patientName = strings.TrimSpace(patientName)
	if patientName == "" {
		return "patient"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, patientName)
}

func (h *reportHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	requestID := c.GetString("request_id")
	if requestID != "" {
		data = append(data, zap.String("request_id", requestID))
	}
	h.logger.Log(logLevel, errDescription, data...)
}

func NewReportHandler(logger *zap.Logger, reportService service.ReportService) ReportHandler {
	return &reportHandler{
		logger:        logger,
		reportService: reportService,
		validator:     validator.New(),
	}
}

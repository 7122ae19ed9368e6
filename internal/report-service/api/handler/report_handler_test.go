package handler

import (
	"MLC_Report_Service/internal/report-service/exporter"
	mockservice "MLC_Report_Service/internal/report-service/mocks/service"
	"MLC_Report_Service/internal/report-service/model"
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupTestContext(t *testing.T, method, url string, body io.Reader) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	c.Request = req
	return w, c
}

func buildReportForm(t *testing.T, fields map[string]string, signature []byte, signatureName string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if signature != nil {
		part, err := writer.CreateFormFile("signature_image", signatureName)
		require.NoError(t, err)
		_, err = part.Write(signature)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func defaultFormFields() map[string]string {
	return map[string]string{
		"patient_name":        "John Doe",
		"age":                 "42",
		"sex":                 "Male",
		"hospital_no":         "OPD-1234",
		"referring_physician": "Dr. Smith",
		"date_of_exam":        "2024-03-05",
		"xray_type":           "Chest PA",
		"clinical_history":    "cough",
		"findings":            "Clear lung fields.",
		"impression":          "Normal study.",
		"doctor_name":         "Dr. Jones",
	}
}

func TestReportHandler_PreviewReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		fields         map[string]string
		setupMocks     func(mockService *mockservice.MockReportService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success Preview returned",
			fields: defaultFormFields(),
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					PreviewReport(gomock.Any(), gomock.Any()).
					Return("MLC X-RAY REPORT\n\nPatient Name: John Doe", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"report_text":"MLC X-RAY REPORT\n\nPatient Name: John Doe"`,
		},
		{
			name: "Error Invalid exam date",
			fields: map[string]string{
				"patient_name": "John Doe",
				"date_of_exam": "05-03-2024",
			},
			setupMocks:     func(mockService *mockservice.MockReportService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The DateOfExam field is not a valid date, use YYYY-MM-DD format"`,
		},
		{
			name:   "Error Internal server error",
			fields: defaultFormFields(),
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					PreviewReport(gomock.Any(), gomock.Any()).
					Return("", errors.New("unexpected error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockReportService(ctrl)
			tc.setupMocks(mockService)

			handler := NewReportHandler(zap.NewNop(), mockService)

			body, contentType := buildReportForm(t, tc.fields, nil, "")
			w, c := setupTestContext(t, http.MethodPost, "/reports/preview", body)
			c.Request.Header.Set("Content-Type", contentType)

			handler.PreviewReport()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestReportHandler_PreviewReportMapsFormToReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	var captured model.Report
	mockService := mockservice.NewMockReportService(ctrl)
	mockService.EXPECT().
		PreviewReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report model.Report) (string, error) {
			captured = report
			return "ok", nil
		})

	handler := NewReportHandler(zap.NewNop(), mockService)

	fields := defaultFormFields()
	fields["xray_type"] = "Other"
	fields["xray_type_other"] = "Left wrist"
	signature := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	body, contentType := buildReportForm(t, fields, signature, "sig.png")
	w, c := setupTestContext(t, http.MethodPost, "/reports/preview", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.PreviewReport()(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "John Doe", captured.PatientName)
	assert.Equal(t, "42", captured.Age)
	assert.Equal(t, "Male", captured.Sex)
	assert.Equal(t, "Left wrist", captured.XrayType, "Other should be replaced by the free-text type")
	assert.Equal(t, "05-03-2024", captured.DateOfExam.Format("02-01-2006"))
	assert.Equal(t, signature, captured.SignatureImage)
}

func TestReportHandler_GenerateReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockReportService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "Success Both formats available",
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					GenerateReport(gomock.Any(), gomock.Any()).
					Return(model.GeneratedReport{
						Text:    "MLC X-RAY REPORT",
						Formats: []string{model.FormatPDF, model.FormatDOCX},
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"formats":["pdf","docx"]`, `"report_text":"MLC X-RAY REPORT"`},
		},
		{
			name: "Degraded DOCX failure reported as warning",
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					GenerateReport(gomock.Any(), gomock.Any()).
					Return(model.GeneratedReport{
						Text:     "MLC X-RAY REPORT",
						Formats:  []string{model.FormatPDF},
						Warnings: []string{"docx export failed, download unavailable"},
						Failures: map[string]error{model.FormatDOCX: errors.New("zip error")},
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"formats":["pdf"]`, `"warnings":["docx export failed, download unavailable"]`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockReportService(ctrl)
			tc.setupMocks(mockService)

			handler := NewReportHandler(zap.NewNop(), mockService)

			body, contentType := buildReportForm(t, defaultFormFields(), nil, "")
			w, c := setupTestContext(t, http.MethodPost, "/reports", body)
			c.Request.Header.Set("Content-Type", contentType)

			handler.GenerateReport()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			for _, expected := range tc.expectedBody {
				assert.Contains(t, w.Body.String(), expected)
			}
		})
	}
}

func TestReportHandler_ExportReportToPDFFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pdfBytes := []byte("%PDF-1.4 fake content")

	testCases := []struct {
		name               string
		fields             map[string]string
		signature          []byte
		signatureName      string
		setupMocks         func(mockService *mockservice.MockReportService)
		expectedStatus     int
		expectedFileName   string
		expectedWarnHeader string
	}{
		{
			name:   "Success PDF downloaded",
			fields: defaultFormFields(),
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					ExportPDF(gomock.Any(), gomock.Any()).
					Return(exporter.Result{Data: []byte("%PDF-1.4 fake content")}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedFileName: `attachment; filename="MLC_Xray_Report_John_Doe.pdf"`,
		},
		{
			name:   "Success Missing patient name falls back to placeholder",
			fields: map[string]string{"findings": "clear"},
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					ExportPDF(gomock.Any(), gomock.Any()).
					Return(exporter.Result{Data: []byte("%PDF-1.4 fake content")}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedFileName: `attachment; filename="MLC_Xray_Report_patient.pdf"`,
		},
		{
			name:   "Success Signature warning surfaced in header",
			fields: defaultFormFields(),
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					ExportPDF(gomock.Any(), gomock.Any()).
					Return(exporter.Result{
						Data:     []byte("%PDF-1.4 fake content"),
						Warnings: []string{"signature image not embedded: bad image"},
					}, nil)
			},
			expectedStatus:     http.StatusOK,
			expectedFileName:   `attachment; filename="MLC_Xray_Report_John_Doe.pdf"`,
			expectedWarnHeader: "signature image not embedded: bad image",
		},
		{
			name:          "Error Unsupported signature file type",
			fields:        defaultFormFields(),
			signature:     []byte("some bytes"),
			signatureName: "sig.gif",
			setupMocks:    func(mockService *mockservice.MockReportService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Error Internal server error",
			fields: defaultFormFields(),
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					ExportPDF(gomock.Any(), gomock.Any()).
					Return(exporter.Result{}, errors.New("render error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockReportService(ctrl)
			tc.setupMocks(mockService)

			handler := NewReportHandler(zap.NewNop(), mockService)

			body, contentType := buildReportForm(t, tc.fields, tc.signature, tc.signatureName)
			w, c := setupTestContext(t, http.MethodPost, "/reports/export/pdf", body)
			c.Request.Header.Set("Content-Type", contentType)

			handler.ExportReportToPDFFile()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
				assert.Equal(t, tc.expectedFileName, w.Header().Get("Content-Disposition"))
				assert.Equal(t, pdfBytes, w.Body.Bytes())
			}
			if tc.expectedWarnHeader != "" {
				assert.Equal(t, tc.expectedWarnHeader, w.Header().Get("X-Report-Warning"))
			}
		})
	}
}

func TestReportHandler_ExportReportToDOCXFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docxBytes := []byte("PK fake docx content")

	testCases := []struct {
		name             string
		setupMocks       func(mockService *mockservice.MockReportService)
		expectedStatus   int
		expectedFileName string
	}{
		{
			name: "Success DOCX downloaded",
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					ExportDOCX(gomock.Any(), gomock.Any()).
					Return(exporter.Result{Data: []byte("PK fake docx content")}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedFileName: `attachment; filename="MLC_Xray_Report_John_Doe.docx"`,
		},
		{
			name: "Error Internal server error",
			setupMocks: func(mockService *mockservice.MockReportService) {
				mockService.EXPECT().
					ExportDOCX(gomock.Any(), gomock.Any()).
					Return(exporter.Result{}, errors.New("zip error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockReportService(ctrl)
			tc.setupMocks(mockService)

			handler := NewReportHandler(zap.NewNop(), mockService)

			body, contentType := buildReportForm(t, defaultFormFields(), nil, "")
			w, c := setupTestContext(t, http.MethodPost, "/reports/export/docx", body)
			c.Request.Header.Set("Content-Type", contentType)

			handler.ExportReportToDOCXFile()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, docxContentType, w.Header().Get("Content-Type"))
				assert.Equal(t, tc.expectedFileName, w.Header().Get("Content-Disposition"))
				assert.Equal(t, docxBytes, w.Body.Bytes())
			}
		})
	}
}

func TestReportHandler_ServeForm(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(zap.NewNop(), nil)

	w, c := setupTestContext(t, http.MethodGet, "/", nil)

	handler.ServeForm()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "MLC X-ray Report Generator")
}

func TestFileNamePart(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty name", "", "patient"},
		{"whitespace only", "   ", "patient"},
		{"plain name", "John Doe", "John_Doe"},
		{"name with path characters", `Jane/..\Doe`, "Jane____Doe"},
		{"name with unicode letters", "Søren", "Søren"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, fileNamePart(tc.input))
		})
	}
}

package routes

import (
	"MLC_Report_Service/internal/report-service/api/handler"
	"MLC_Report_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpReportRoutes(r *gin.Engine, handler handler.ReportHandler, m middleware.RequestIDMiddleware) {
	r.Use(m.AttachRequestID())
	r.GET("/", handler.ServeForm())
	reportRoutes := r.Group("/reports")
	reportRoutes.POST("", handler.GenerateReport())
	reportRoutes.POST("/preview", handler.PreviewReport())
	reportRoutes.POST("/export/pdf", handler.ExportReportToPDFFile())
	reportRoutes.POST("/export/docx", handler.ExportReportToDOCXFile())
}

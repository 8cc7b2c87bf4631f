package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nasaem/pos-api/internal/application/service"
	"github.com/nasaem/pos-api/internal/presentation/http/dto/response"
)

// ReportHandler serves the day-by-day sales summaries for the history view
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles the daily summary listing, newest day first.
func (h *ReportHandler) Summary(c *gin.Context) {
	summaries := h.reportService.DailySummaries(c.Request.Context())
	response.OK(c, "Daily summaries retrieved successfully", summaries)
}

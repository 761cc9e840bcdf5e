// internal/interfaces/http/handlers/report.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/report"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/settings"
	"github.com/soqi-sistemas/pedefacil-backend/internal/pkg/pdf"
)

// ReportHandler handles sales report endpoints
type ReportHandler struct {
	reportService   *report.Service
	settingsService *settings.Service
	pdfService      *pdf.Service
	config          *config.Config
}

// NewReportHandler creates a new report handler
func NewReportHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *ReportHandler {
	return &ReportHandler{
		reportService:   report.NewService(db, cfg),
		settingsService: settings.NewService(db, redisClient, cfg),
		pdfService:      pdf.NewService(cfg),
		config:          cfg,
	}
}

// GetSalesSummary handles GET /admin/reports/sales
func (h *ReportHandler) GetSalesSummary(c *gin.Context) {
	from, to, err := report.ResolveRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	summary, err := h.reportService.GetSalesSummary(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build sales report",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// DownloadSalesReport handles GET /admin/reports/sales/pdf
func (h *ReportHandler) DownloadSalesReport(c *gin.Context) {
	from, to, err := report.ResolveRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	summary, err := h.reportService.GetSalesSummary(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build sales report",
		})
		return
	}

	storeName := "PedeFacil"
	if storeSettings, err := h.settingsService.Get(c.Request.Context()); err == nil {
		storeName = storeSettings.Name
	}

	pdfBuffer, err := h.pdfService.GenerateSalesReport(storeName, summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate PDF",
		})
		return
	}

	filename := fmt.Sprintf("vendas-%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

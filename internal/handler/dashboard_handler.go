package handler

import (
	"net/http"
	"strconv"

	"hospital-admission-backend/internal/service"
	"hospital-admission-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the aggregate landing-page reads
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	utils.SuccessResponse(c, summary)
}

// GetPatients returns one page of the patient listing (10 per page)
func (h *DashboardHandler) GetPatients(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid page number")
			return
		}
		page = parsed
	}

	patients, err := h.dashboardService.ListPatients(page)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	utils.SuccessResponse(c, patients)
}

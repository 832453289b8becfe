package handler

import (
	"net/http"
	"strconv"

	"hospital-admission-backend/internal/service"
	"hospital-admission-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the cascading-selector queries. Empty results come
// back as empty collections with a 200, never as errors.
type LookupHandler struct {
	lookupService *service.LookupService
}

func NewLookupHandler(lookupService *service.LookupService) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
	}
}

// GetDepartments lists all departments
func (h *LookupHandler) GetDepartments(c *gin.Context) {
	departments, err := h.lookupService.GetDepartments()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch departments")
		return
	}

	utils.SuccessResponse(c, departments)
}

// GetDoctorsByDepartment lists the doctors of the department in the path
func (h *LookupHandler) GetDoctorsByDepartment(c *gin.Context) {
	departmentID, ok := parseIDParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	doctors, err := h.lookupService.GetDoctorsByDepartment(departmentID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, doctors)
}

// GetRoomsByDepartment lists the available rooms of the department in the path
func (h *LookupHandler) GetRoomsByDepartment(c *gin.Context) {
	departmentID, ok := parseIDParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	rooms, err := h.lookupService.GetAvailableRoomsByDepartment(departmentID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}

	utils.SuccessResponse(c, rooms)
}

// GetBedsByRoom lists the available beds of the room in the path
func (h *LookupHandler) GetBedsByRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	beds, err := h.lookupService.GetAvailableBedsByRoom(roomID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch beds")
		return
	}

	utils.SuccessResponse(c, beds)
}

// GetInsuranceProviders lists all insurance providers
func (h *LookupHandler) GetInsuranceProviders(c *gin.Context) {
	providers, err := h.lookupService.GetInsuranceProviders()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch insurance providers")
		return
	}

	utils.SuccessResponse(c, providers)
}

// GetPaymentMethods lists all payment methods
func (h *LookupHandler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.lookupService.GetPaymentMethods()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch payment methods")
		return
	}

	utils.SuccessResponse(c, methods)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

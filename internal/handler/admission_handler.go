package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"hospital-admission-backend/internal/service"
	"hospital-admission-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AdmissionHandler struct {
	admissionService *service.AdmissionService
	lookupService    *service.LookupService
}

func NewAdmissionHandler(admissionService *service.AdmissionService, lookupService *service.LookupService) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
		lookupService:    lookupService,
	}
}

// GetForm returns the reference lists the admission form renders its
// selectors from
func (h *AdmissionHandler) GetForm(c *gin.Context) {
	references, err := h.lookupService.GetAdmissionFormReferences()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load form references")
		return
	}

	utils.SuccessResponse(c, references)
}

// Admit runs the admission workflow. Validation failures come back with a
// field map and the original input; persistence failures carry the cause.
func (h *AdmissionHandler) Admit(c *gin.Context) {
	var input service.AdmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			utils.ValidationErrorResponse(c, bindingErrorFields(verrs), input)
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := currentUserID(c)

	confirmation, err := h.admissionService.AdmitPatient(input, userID)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationErrorResponse(c, verr.Fields, input)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"input":   input,
		})
		return
	}

	utils.CreatedResponse(c, confirmation)
}

// RoomAvailability reports the advisory room check for a room/date pair
func (h *AdmissionHandler) RoomAvailability(c *gin.Context) {
	roomNumber := c.Query("room_number")
	date, ok := parseDateQuery(c)
	if roomNumber == "" || !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "room_number and date (YYYY-MM-DD) are required")
		return
	}

	available, err := h.admissionService.IsRoomAvailable(roomNumber, date)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to check room availability")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"room_number": roomNumber,
		"date":        date.Format("2006-01-02"),
		"available":   available,
	})
}

// DoctorAvailability reports the advisory doctor capacity check
func (h *AdmissionHandler) DoctorAvailability(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Query("doctor_id"), 10, 32)
	date, ok := parseDateQuery(c)
	if err != nil || !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "doctor_id and date (YYYY-MM-DD) are required")
		return
	}

	available, svcErr := h.admissionService.IsDoctorAvailable(uint(doctorID), date)
	if svcErr != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to check doctor availability")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctor_id": doctorID,
		"date":      date.Format("2006-01-02"),
		"available": available,
	})
}

func parseDateQuery(c *gin.Context) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func currentUserID(c *gin.Context) *uint {
	value, exists := c.Get("userID")
	if !exists {
		return nil
	}
	id, ok := value.(uint)
	if !ok {
		return nil
	}
	return &id
}

// bindingErrorFields converts validator failures into the same field map the
// service layer produces. Field names come from the json tags (registered
// in main via RegisterTagNameFunc).
func bindingErrorFields(verrs validator.ValidationErrors) map[string][]string {
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], bindingErrorMessage(fe))
	}
	return fields
}

func bindingErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "datetime":
		return "Must be a valid date in YYYY-MM-DD format"
	default:
		return "Invalid value"
	}
}

// RegisterTagNames makes validator report json field names instead of Go
// struct field names in validation errors
func RegisterTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

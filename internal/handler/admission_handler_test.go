package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"hospital-admission-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitEndpointCreatesAdmission(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)

	w := ts.request(t, http.MethodPost, "/admissions", token, ts.validAdmission())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			PatientID     uint   `json:"patient_id"`
			PatientNumber string `json:"patient_number"`
			Redirect      string `json:"redirect"`
			Message       string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.NotZero(t, response.Data.PatientID)
	assert.Equal(t, "/admin/dashboard", response.Data.Redirect)
	assert.Equal(t, "Patient admitted successfully", response.Data.Message)

	var count int64
	require.NoError(t, ts.db.Model(&models.Patient{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdmitEndpointValidationFailure(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)

	body := ts.validAdmission()
	delete(body, "primary_reason")
	body["email"] = "not-an-email"

	w := ts.request(t, http.MethodPost, "/admissions", token, body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	var response struct {
		Success bool                `json:"success"`
		Fields  map[string][]string `json:"fields"`
		Input   map[string]any      `json:"input"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Contains(t, response.Fields, "primary_reason")
	assert.Contains(t, response.Fields, "email")
	// Original input is echoed back for re-population
	assert.Equal(t, "Jane", response.Input["first_name"])

	var count int64
	require.NoError(t, ts.db.Model(&models.Patient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAdmitEndpointUnknownDepartment(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)

	body := ts.validAdmission()
	body["department_id"] = 9999

	w := ts.request(t, http.MethodPost, "/admissions", token, body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	var response struct {
		Fields map[string][]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Fields, "department_id")
}

func TestAdmitEndpointRequiresAdminGuard(t *testing.T) {
	ts := newTestServer(t)

	// No token at all
	w := ts.request(t, http.MethodPost, "/admissions", "", ts.validAdmission())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A web-guard doctor session is not enough
	login := ts.request(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "doctor@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var response struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &response))

	w = ts.request(t, http.MethodPost, "/admissions", response.Data.AccessToken, ts.validAdmission())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdmissionFormReferences(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)

	w := ts.request(t, http.MethodGet, "/admissions/form", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Data struct {
			Departments    []models.Department    `json:"departments"`
			Doctors        []models.Doctor        `json:"doctors"`
			PaymentMethods []models.PaymentMethod `json:"payment_methods"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data.Departments, 1)
	assert.Len(t, response.Data.Doctors, 1)
	assert.Len(t, response.Data.PaymentMethods, 1)
}

func TestRoomAvailabilityEndpoint(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)

	w := ts.request(t, http.MethodGet, "/admissions/availability/room?room_number=101&date=2024-01-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Data struct {
			Available bool `json:"available"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Data.Available)

	// Missing parameters are a bad request, not a server error
	w = ts.request(t, http.MethodGet, "/admissions/availability/room?room_number=101", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookupDoctorsEmptyDepartment(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)

	empty := models.Department{Name: "Radiology"}
	require.NoError(t, ts.db.Create(&empty).Error)

	w := ts.request(t, http.MethodGet, fmt.Sprintf("/lookups/departments/%d/doctors", empty.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Success bool            `json:"success"`
		Data    []models.Doctor `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Empty(t, response.Data)
}

package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crpms/internal/models"
)

func employeePayload(number int, first, last string) gin.H {
	return gin.H{
		"employeeNumber": number,
		"FirstNames":     first,
		"LastName":       last,
		"position":       "Mechanic",
		"gender":         "F",
		"telephone":      "0788000003",
		"address":        "Kigali",
		"hiredDate":      "2024-02-01",
	}
}

func TestCreateEmployeeRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/emp", employeePayload(100, "Aline", "Uwase"))
	require.Equal(t, http.StatusCreated, w.Code)
	data, _ := decodeBody(t, w)["data"].(map[string]interface{})
	require.NotNil(t, data)
	assert.Equal(t, float64(100), data["employeeNumber"])

	w = doJSON(t, r, http.MethodGet, "/emp", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
}

func TestCreateEmployeeValidation(t *testing.T) {
	r, db := newTestServer(t)

	payload := employeePayload(101, "Eric", "Mugisha")
	delete(payload, "telephone")
	w := doJSON(t, r, http.MethodPost, "/emp", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/emp", gin.H{
		"employeeNumber": "abc",
		"FirstNames":     "Eric",
		"LastName":       "Mugisha",
		"position":       "Mechanic",
		"gender":         "M",
		"telephone":      "0788000004",
		"address":        "Kigali",
		"hiredDate":      "2024-02-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateEmployeeDuplicateNumber(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/emp", employeePayload(102, "First", "Person"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/emp", employeePayload(102, "Second", "Person"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListEmployeesOrderedByName(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/emp", employeePayload(103, "Zed", "Zulu"))
	doJSON(t, r, http.MethodPost, "/emp", employeePayload(104, "Ann", "Abera"))

	w := doJSON(t, r, http.MethodGet, "/emp", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows, _ := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, rows, 2)
	first, _ := rows[0].(map[string]interface{})
	assert.Equal(t, "Abera", first["LastName"])
}

func TestUpdateEmployeePartial(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/emp", employeePayload(105, "Claude", "Niyonzima"))

	w := doJSON(t, r, http.MethodPut, "/emp/105", gin.H{"position": "Supervisor"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/emp", nil)
	rows, _ := decodeBody(t, w)["data"].([]interface{})
	row, _ := rows[0].(map[string]interface{})
	assert.Equal(t, "Supervisor", row["position"])
	assert.Equal(t, "Claude", row["FirstNames"])
	assert.Equal(t, "Kigali", row["address"])
}

func TestUpdateEmployeeErrors(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPut, "/emp/999", gin.H{"position": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	doJSON(t, r, http.MethodPost, "/emp", employeePayload(106, "Jean", "Habimana"))
	w = doJSON(t, r, http.MethodPut, "/emp/106", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

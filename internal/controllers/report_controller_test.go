package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReport(t *testing.T) {
	r, db := newTestServer(t)
	pkg := seedCarAndPackage(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/service-records", gin.H{
		"PlateNumber":   "RAF111E",
		"PackageNumber": pkg.PackageNumber,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recordNumber := decodeBody(t, w)["recordNumber"]

	w = doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"RecordNumber": recordNumber,
		"AmountPaid":   50.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// No date parameter defaults to today, which covers the payment just
	// made.
	w = doJSON(t, r, http.MethodGet, "/api/reports/daily", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])
	assert.NotEmpty(t, body["date"])
	rows, _ := body["data"].([]interface{})
	row, _ := rows[0].(map[string]interface{})
	assert.Equal(t, "RAF111E", row["PlateNumber"])
	assert.Equal(t, "Gold Wash", row["PackageName"])
	assert.Equal(t, 50.0, row["AmountPaid"])

	w = doJSON(t, r, http.MethodGet, "/api/reports/daily?date=2000-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "2000-01-01", body["date"])
	assert.Equal(t, float64(0), body["count"])
}

func TestDailyReportRejectsBadDate(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/reports/daily?date=garbage", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceSummaryReport(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/cars", carPayload("RAH333G"))
	doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"ServiceCode": "OIL1", "ServiceName": "Oil Change", "ServicePrice": 25.0,
	})
	id := createRecord(t, r, "2026-08-02", "RAH333G", "OIL1")
	doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"RecordNumber": id,
		"AmountPaid":   25.0,
	})

	w := doJSON(t, r, http.MethodGet, "/api/reports/service-summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])
	rows, _ := body["data"].([]interface{})
	row, _ := rows[0].(map[string]interface{})
	assert.Equal(t, "RAH333G", row["PlateNumber"])
	assert.Equal(t, "John Doe", row["DriverName"])
	assert.Equal(t, "Oil Change", row["ServiceName"])
	assert.Equal(t, 25.0, row["AmountPaid"])
}

func TestSalaryReportJoin(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/emp", employeePayload(700, "Diane", "Ingabire"))
	doJSON(t, r, http.MethodPost, "/salary", gin.H{
		"glossSalary":     600000,
		"totalDeducation": 60000,
		"netSalary":       540000,
		"employeNumber":   700,
	})
	doJSON(t, r, http.MethodPost, "/dep", gin.H{
		"departmentCode": 20,
		"departmentName": "Workshop",
		"glossSalary":    600000,
	})

	w := doJSON(t, r, http.MethodGet, "/api/report/salary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])
	rows, _ := body["data"].([]interface{})
	row, _ := rows[0].(map[string]interface{})
	assert.Equal(t, float64(700), row["employeeNumber"])
	assert.Equal(t, "Diane", row["FirstNames"])
	assert.Equal(t, "Workshop", row["departmentName"])
	assert.Equal(t, 540000.0, row["netSalary"])
}

func TestStatsCounts(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/cars", carPayload("RAJ444H"))
	doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"ServiceCode": "OIL1", "ServiceName": "Oil Change", "ServicePrice": 25.0,
	})
	createRecord(t, r, "2026-08-03", "RAJ444H", "OIL1")
	createRecord(t, r, "2026-08-04", "RAJ444H", "OIL1")
	doJSON(t, r, http.MethodPost, "/api/payments", gin.H{"RecordNumber": 1, "AmountPaid": 25.0})

	w := doJSON(t, r, http.MethodGet, "/api/stats/counts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["cars"])
	assert.Equal(t, float64(1), body["services"])
	assert.Equal(t, float64(2), body["serviceRecords"])
	assert.Equal(t, float64(1), body["payments"])
	assert.Equal(t, 50.0, body["totalRevenue"])
}

func TestStatsRecentActivity(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/cars", carPayload("RAK555J"))
	doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"ServiceCode": "WASH1", "ServiceName": "Full Wash", "ServicePrice": 10.0,
	})
	createRecord(t, r, "2026-08-05", "RAK555J", "WASH1")

	w := doJSON(t, r, http.MethodGet, "/api/stats/recent-activity", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	services, _ := body["recentServices"].([]interface{})
	require.Len(t, services, 1)
	row, _ := services[0].(map[string]interface{})
	assert.Equal(t, "Full Wash", row["ServiceName"])
	assert.Equal(t, "John Doe", row["DriverName"])
}

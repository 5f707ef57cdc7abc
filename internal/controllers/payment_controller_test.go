package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crpms/internal/models"
)

func TestCreatePaymentReturnsGeneratedNumber(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"RecordNumber": 1,
		"AmountPaid":   75.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["paymentNumber"])

	w = doJSON(t, r, http.MethodGet, "/api/payments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	require.Equal(t, float64(1), body["count"])
	rows, _ := body["data"].([]interface{})
	row, _ := rows[0].(map[string]interface{})
	assert.Equal(t, 75.0, row["AmountPaid"])
	assert.NotEmpty(t, row["PaymentDate"])
}

func TestCreatePaymentMissingAmount(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments", gin.H{"RecordNumber": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListPackages(t *testing.T) {
	r, db := newTestServer(t)

	require.NoError(t, db.Create(&models.Package{
		PackageName:        "Basic Wash",
		PackageDescription: "Exterior only",
		PackagePrice:       20,
	}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/packages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	require.Equal(t, float64(1), body["count"])
	rows, _ := body["data"].([]interface{})
	row, _ := rows[0].(map[string]interface{})
	assert.Equal(t, "Basic Wash", row["PackageName"])
	assert.Equal(t, 20.0, row["PackagePrice"])
}

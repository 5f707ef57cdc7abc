package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

// StatsController serves the dashboard counters.
type StatsController struct {
	db *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

type recentServiceRow struct {
	RecordNumber uint    `json:"RecordNumber"`
	ServiceDate  string  `json:"ServiceDate"`
	DriverName   *string `json:"DriverName"`
	ServiceName  *string `json:"ServiceName"`
}

type recentPaymentRow struct {
	PaymentNumber uint      `json:"PaymentNumber"`
	AmountPaid    float64   `json:"AmountPaid"`
	PaymentDate   time.Time `json:"PaymentDate"`
	PlateNumber   *string   `json:"PlateNumber"`
}

// Counts returns system-wide row counts and the total revenue implied by
// the recorded services.
func (st *StatsController) Counts(c *gin.Context) {
	var services, cars, records, payments int64
	for _, q := range []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Service{}, &services},
		{&models.Car{}, &cars},
		{&models.ServiceRecord{}, &records},
		{&models.Payment{}, &payments},
	} {
		if err := st.db.Model(q.model).Count(q.dst).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching system counts"})
			return
		}
	}

	var totalRevenue float64
	err := st.db.Raw(`
		SELECT COALESCE(SUM(s.service_price), 0)
		FROM "ServiceRecord" sr
		JOIN "Services" s ON sr.service_code = s.service_code
	`).Scan(&totalRevenue).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching system counts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"services":       services,
		"cars":           cars,
		"serviceRecords": records,
		"payments":       payments,
		"totalRevenue":   totalRevenue,
	})
}

// RecentActivity returns the five most recent service records and
// payments.
func (st *StatsController) RecentActivity(c *gin.Context) {
	var recentServices []recentServiceRow
	err := st.db.Raw(`
		SELECT sr.record_number, sr.service_date, c.driver_name, s.service_name
		FROM "ServiceRecord" sr
		LEFT JOIN "Car" c ON sr.plate_number = c.plate_number
		LEFT JOIN "Services" s ON sr.service_code = s.service_code
		ORDER BY sr.service_date DESC
		LIMIT 5
	`).Scan(&recentServices).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching recent activity"})
		return
	}

	var recentPayments []recentPaymentRow
	err = st.db.Raw(`
		SELECT p.payment_number, p.amount_paid, p.payment_date, sp.plate_number
		FROM "Payment" p
		LEFT JOIN "ServicePackage" sp ON p.record_number = sp.record_number
		ORDER BY p.payment_date DESC
		LIMIT 5
	`).Scan(&recentPayments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching recent activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"recentServices": recentServices,
		"recentPayments": recentPayments,
	})
}

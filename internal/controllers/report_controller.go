package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportController serves the fixed-join, read-only reporting endpoints.
type ReportController struct {
	db *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{db: db}
}

type dailyReportRow struct {
	RecordNumber       uint      `json:"RecordNumber"`
	PlateNumber        *string   `json:"PlateNumber"`
	PackageName        *string   `json:"PackageName"`
	PackageDescription *string   `json:"PackageDescription"`
	AmountPaid         float64   `json:"AmountPaid"`
	PaymentDate        time.Time `json:"PaymentDate"`
}

type serviceSummaryRow struct {
	RecordNumber uint       `json:"RecordNumber"`
	ServiceDate  string     `json:"ServiceDate"`
	PlateNumber  *string    `json:"PlateNumber"`
	CarType      *string    `json:"CarType"`
	DriverName   *string    `json:"DriverName"`
	ServiceCode  string     `json:"ServiceCode"`
	ServiceName  *string    `json:"ServiceName"`
	ServicePrice *float64   `json:"ServicePrice"`
	AmountPaid   *float64   `json:"AmountPaid"`
	PaymentDate  *time.Time `json:"PaymentDate"`
}

type salaryReportRow struct {
	EmployeeNumber  int     `json:"employeeNumber"`
	FirstNames      string  `json:"FirstNames"`
	LastName        string  `json:"LastName"`
	Position        string  `json:"position"`
	Gender          string  `json:"gender"`
	Telephone       string  `json:"telephone"`
	Address         string  `json:"address"`
	HiredDate       string  `json:"hiredDate"`
	DepartmentName  string  `json:"departmentName"`
	GlossSalary     float64 `json:"glossSalary"`
	TotalDeducation float64 `json:"totalDeducation"`
	NetSalary       float64 `json:"netSalary"`
}

// Daily lists the payments of one day (default today) with the car and
// package each one settled.
func (rc *ReportController) Daily(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	dayStart, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date must be formatted YYYY-MM-DD"})
		return
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	var rows []dailyReportRow
	err = rc.db.Raw(`
		SELECT py.record_number, c.plate_number,
		       p.package_name, p.package_description,
		       py.amount_paid, py.payment_date
		FROM "Payment" py
		LEFT JOIN "ServicePackage" sp ON py.record_number = sp.record_number
		LEFT JOIN "Car" c ON sp.plate_number = c.plate_number
		LEFT JOIN "Package" p ON sp.package_number = p.package_number
		WHERE py.payment_date >= ? AND py.payment_date < ?
		ORDER BY py.payment_date DESC
	`, dayStart, dayEnd).Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error generating daily report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "date": date, "count": len(rows), "data": rows})
}

// ServiceSummary lists every service record with its car, service and any
// payment, most recent first.
func (rc *ReportController) ServiceSummary(c *gin.Context) {
	var rows []serviceSummaryRow
	err := rc.db.Raw(`
		SELECT sr.record_number, sr.service_date,
		       c.plate_number, c.car_type, c.driver_name,
		       sr.service_code, s.service_name, s.service_price,
		       p.amount_paid, p.payment_date
		FROM "ServiceRecord" sr
		LEFT JOIN "Car" c ON sr.plate_number = c.plate_number
		LEFT JOIN "Services" s ON sr.service_code = s.service_code
		LEFT JOIN "Payment" p ON sr.record_number = p.record_number
		ORDER BY sr.service_date DESC
	`).Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching service summary report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "data": rows})
}

// Salary joins employees with their salary lines and the department whose
// gross salary band matches.
func (rc *ReportController) Salary(c *gin.Context) {
	var rows []salaryReportRow
	err := rc.db.Raw(`
		SELECT e.employee_number, e.first_names, e.last_name,
		       e.position, e.gender, e.telephone, e.address, e.hired_date,
		       d.department_name,
		       s.gloss_salary, s.total_deducation, s.net_salary
		FROM employee e
		JOIN salary s ON e.employee_number = s.employe_number
		JOIN department d ON d.gloss_salary = s.gloss_salary
	`).Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An error occurred while generating the report."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "data": rows})
}

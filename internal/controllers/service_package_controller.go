package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

type ServicePackageController struct {
	db *gorm.DB
}

func NewServicePackageController(db *gorm.DB) *ServicePackageController {
	return &ServicePackageController{db: db}
}

// servicePackageRow is a ServicePackage enriched with the car and package
// it references.
type servicePackageRow struct {
	RecordNumber  uint      `json:"RecordNumber"`
	ServiceDate   time.Time `json:"ServiceDate"`
	PlateNumber   string    `json:"PlateNumber"`
	PackageNumber uint      `json:"PackageNumber"`
	DriverName    *string   `json:"DriverName"`
	CarType       *string   `json:"CarType"`
	PackageName   *string   `json:"PackageName"`
	PackagePrice  *float64  `json:"PackagePrice"`
}

func (sp *ServicePackageController) CreateRecord(c *gin.Context) {
	var input struct {
		PlateNumber   string `json:"PlateNumber" binding:"required"`
		PackageNumber uint   `json:"PackageNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "PlateNumber and PackageNumber are required"})
		return
	}

	record := models.ServicePackage{
		PlateNumber:   input.PlateNumber,
		PackageNumber: input.PackageNumber,
	}
	if err := sp.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating service record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Service record created successfully", "recordNumber": record.RecordNumber})
}

func (sp *ServicePackageController) ListRecords(c *gin.Context) {
	var rows []servicePackageRow
	err := sp.db.Raw(`
		SELECT sp.record_number, sp.service_date,
		       sp.plate_number, sp.package_number,
		       c.driver_name, c.car_type,
		       p.package_name, p.package_price
		FROM "ServicePackage" sp
		LEFT JOIN "Car" c ON sp.plate_number = c.plate_number
		LEFT JOIN "Package" p ON sp.package_number = p.package_number
	`).Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching service records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "data": rows})
}

func (sp *ServicePackageController) UpdateRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Record number must be a number"})
		return
	}

	var input struct {
		PlateNumber   *string `json:"PlateNumber"`
		PackageNumber *uint   `json:"PackageNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid update body"})
		return
	}

	updates := map[string]interface{}{}
	if input.PlateNumber != nil {
		updates["plate_number"] = *input.PlateNumber
	}
	if input.PackageNumber != nil {
		updates["package_number"] = *input.PackageNumber
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field must be provided for update"})
		return
	}

	res := sp.db.Model(&models.ServicePackage{}).Where("record_number = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating service record"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service record updated successfully", "affectedRows": res.RowsAffected})
}

func (sp *ServicePackageController) DeleteRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Record number must be a number"})
		return
	}

	res := sp.db.Delete(&models.ServicePackage{}, "record_number = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting service record"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service record deleted successfully"})
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

type ServiceRecordController struct {
	db *gorm.DB
}

func NewServiceRecordController(db *gorm.DB) *ServiceRecordController {
	return &ServiceRecordController{db: db}
}

func (rc *ServiceRecordController) CreateRecord(c *gin.Context) {
	var input struct {
		ServiceDate string `json:"ServiceDate" binding:"required"`
		PlateNumber string `json:"PlateNumber" binding:"required"`
		ServiceCode string `json:"ServiceCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ServiceDate, PlateNumber and ServiceCode are required"})
		return
	}

	record := models.ServiceRecord{
		ServiceDate: input.ServiceDate,
		PlateNumber: input.PlateNumber,
		ServiceCode: input.ServiceCode,
	}
	if err := rc.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating service record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Service record created successfully", "id": record.RecordNumber})
}

func (rc *ServiceRecordController) ListRecords(c *gin.Context) {
	var records []models.ServiceRecord
	if err := rc.db.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching service records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(records), "data": records})
}

func (rc *ServiceRecordController) GetRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Record number must be a number"})
		return
	}

	var record models.ServiceRecord
	if err := rc.db.First(&record, "record_number = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching service record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

func (rc *ServiceRecordController) UpdateRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Record number must be a number"})
		return
	}

	var input struct {
		ServiceDate *string `json:"ServiceDate"`
		PlateNumber *string `json:"PlateNumber"`
		ServiceCode *string `json:"ServiceCode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid update body"})
		return
	}

	updates := map[string]interface{}{}
	if input.ServiceDate != nil {
		updates["service_date"] = *input.ServiceDate
	}
	if input.PlateNumber != nil {
		updates["plate_number"] = *input.PlateNumber
	}
	if input.ServiceCode != nil {
		updates["service_code"] = *input.ServiceCode
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field must be provided for update"})
		return
	}

	res := rc.db.Model(&models.ServiceRecord{}).Where("record_number = ?", id).Updates(updates)
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

func (rc *ServiceRecordController) DeleteRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Record number must be a number"})
		return
	}

	res := rc.db.Delete(&models.ServiceRecord{}, "record_number = ?", id)
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

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

type ServiceController struct {
	db *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{db: db}
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var input struct {
		ServiceCode  string         `json:"ServiceCode" binding:"required"`
		ServiceName  string         `json:"ServiceName" binding:"required"`
		ServicePrice models.Numeric `json:"ServicePrice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ServiceCode, ServiceName and ServicePrice are required"})
		return
	}

	service := models.Service{
		ServiceCode:  input.ServiceCode,
		ServiceName:  input.ServiceName,
		ServicePrice: input.ServicePrice.Float64(),
	}
	if err := sc.db.Create(&service).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Service code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating service"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Service created successfully"})
}

func (sc *ServiceController) ListServices(c *gin.Context) {
	var services []models.Service
	if err := sc.db.Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(services), "data": services})
}

func (sc *ServiceController) GetService(c *gin.Context) {
	var service models.Service
	if err := sc.db.First(&service, "service_code = ?", c.Param("serviceCode")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": service})
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	var input struct {
		ServiceName  *string         `json:"ServiceName"`
		ServicePrice *models.Numeric `json:"ServicePrice"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid update body"})
		return
	}

	updates := map[string]interface{}{}
	if input.ServiceName != nil {
		updates["service_name"] = *input.ServiceName
	}
	if input.ServicePrice != nil {
		updates["service_price"] = input.ServicePrice.Float64()
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field must be provided for update"})
		return
	}

	res := sc.db.Model(&models.Service{}).Where("service_code = ?", c.Param("serviceCode")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating service"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service updated successfully", "affectedRows": res.RowsAffected})
}

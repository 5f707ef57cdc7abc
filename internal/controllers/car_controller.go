package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

type CarController struct {
	db *gorm.DB
}

func NewCarController(db *gorm.DB) *CarController {
	return &CarController{db: db}
}

func (cc *CarController) CreateCar(c *gin.Context) {
	var input struct {
		PlateNumber string `json:"PlateNumber" binding:"required"`
		CarType     string `json:"CarType" binding:"required"`
		CarSize     string `json:"CarSize" binding:"required"`
		DriverName  string `json:"DriverName" binding:"required"`
		PhoneNumber string `json:"PhoneNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All car fields are required"})
		return
	}

	car := models.Car{
		PlateNumber: input.PlateNumber,
		CarType:     input.CarType,
		CarSize:     input.CarSize,
		DriverName:  input.DriverName,
		PhoneNumber: input.PhoneNumber,
	}
	if err := cc.db.Create(&car).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Plate number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating car"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Car created successfully", "plateNumber": car.PlateNumber})
}

func (cc *CarController) ListCars(c *gin.Context) {
	var cars []models.Car
	if err := cc.db.Find(&cars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching cars"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(cars), "data": cars})
}

func (cc *CarController) GetCar(c *gin.Context) {
	var car models.Car
	if err := cc.db.First(&car, "plate_number = ?", c.Param("plateNumber")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": car})
}

// UpdateCar applies a partial update; only the columns present in the body
// are written.
func (cc *CarController) UpdateCar(c *gin.Context) {
	var input struct {
		CarType     *string `json:"CarType"`
		CarSize     *string `json:"CarSize"`
		DriverName  *string `json:"DriverName"`
		PhoneNumber *string `json:"PhoneNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid update body"})
		return
	}

	updates := map[string]interface{}{}
	if input.CarType != nil {
		updates["car_type"] = *input.CarType
	}
	if input.CarSize != nil {
		updates["car_size"] = *input.CarSize
	}
	if input.DriverName != nil {
		updates["driver_name"] = *input.DriverName
	}
	if input.PhoneNumber != nil {
		updates["phone_number"] = *input.PhoneNumber
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field must be provided for update"})
		return
	}

	res := cc.db.Model(&models.Car{}).Where("plate_number = ?", c.Param("plateNumber")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating car"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Car not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Car updated successfully", "affectedRows": res.RowsAffected})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

type PaymentController struct {
	db *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{db: db}
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var input struct {
		RecordNumber uint           `json:"RecordNumber" binding:"required"`
		AmountPaid   models.Numeric `json:"AmountPaid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "RecordNumber and AmountPaid are required"})
		return
	}

	payment := models.Payment{
		RecordNumber: input.RecordNumber,
		AmountPaid:   input.AmountPaid.Float64(),
	}
	if err := pc.db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Payment created successfully", "paymentNumber": payment.PaymentNumber})
}

func (pc *PaymentController) ListPayments(c *gin.Context) {
	var payments []models.Payment
	if err := pc.db.Order("payment_date DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(payments), "data": payments})
}

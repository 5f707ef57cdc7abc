package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

type SalaryController struct {
	db *gorm.DB
}

func NewSalaryController(db *gorm.DB) *SalaryController {
	return &SalaryController{db: db}
}

func (sc *SalaryController) CreateSalary(c *gin.Context) {
	var input struct {
		GlossSalary     models.Numeric `json:"glossSalary" binding:"required"`
		TotalDeducation models.Numeric `json:"totalDeducation" binding:"required"`
		NetSalary       models.Numeric `json:"netSalary" binding:"required"`
		EmployeNumber   models.Numeric `json:"employeNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields (glossSalary, totalDeducation, netSalary, employeNumber) are required and must be numbers"})
		return
	}

	salary := models.Salary{
		GlossSalary:     input.GlossSalary.Float64(),
		TotalDeducation: input.TotalDeducation.Float64(),
		NetSalary:       input.NetSalary.Float64(),
		EmployeNumber:   input.EmployeNumber.Int(),
	}
	if err := sc.db.Create(&salary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Salary record created successfully",
		"data": gin.H{
			"insertId":        salary.ID,
			"glossSalary":     salary.GlossSalary,
			"totalDeducation": salary.TotalDeducation,
			"netSalary":       salary.NetSalary,
			"employeNumber":   salary.EmployeNumber,
		},
	})
}

func (sc *SalaryController) ListSalaries(c *gin.Context) {
	var salaries []models.Salary
	if err := sc.db.Find(&salaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(salaries), "data": salaries})
}

// GetByEmployee lists the salary records of one employee; 404 when there
// are none.
func (sc *SalaryController) GetByEmployee(c *gin.Context) {
	employeNumber, err := strconv.Atoi(c.Param("employeNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Employee number must be a number"})
		return
	}

	var salaries []models.Salary
	if err := sc.db.Where("employe_number = ?", employeNumber).Find(&salaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if len(salaries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No salary records found for this employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(salaries), "data": salaries})
}

func (sc *SalaryController) UpdateSalary(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Salary id must be a number"})
		return
	}

	var input struct {
		GlossSalary     *models.Numeric `json:"glossSalary"`
		TotalDeducation *models.Numeric `json:"totalDeducation"`
		NetSalary       *models.Numeric `json:"netSalary"`
		EmployeNumber   *models.Numeric `json:"employeNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All provided fields must be numbers"})
		return
	}

	updates := map[string]interface{}{}
	if input.GlossSalary != nil {
		updates["gloss_salary"] = input.GlossSalary.Float64()
	}
	if input.TotalDeducation != nil {
		updates["total_deducation"] = input.TotalDeducation.Float64()
	}
	if input.NetSalary != nil {
		updates["net_salary"] = input.NetSalary.Float64()
	}
	if input.EmployeNumber != nil {
		updates["employe_number"] = input.EmployeNumber.Int()
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field (glossSalary, totalDeducation, netSalary, employeNumber) is required for update"})
		return
	}

	res := sc.db.Model(&models.Salary{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Salary record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Salary record updated successfully", "affectedRows": res.RowsAffected})
}

func (sc *SalaryController) DeleteSalary(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Salary id must be a number"})
		return
	}

	res := sc.db.Delete(&models.Salary{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Salary record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Salary record deleted successfully"})
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

type DepartmentController struct {
	db *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{db: db}
}

func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	// GlossSalary is a pointer so an explicit 0 still counts as present.
	var input struct {
		DepartmentCode models.Numeric  `json:"departmentCode" binding:"required"`
		DepartmentName string          `json:"departmentName" binding:"required"`
		GlossSalary    *models.Numeric `json:"glossSalary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "departmentCode, departmentName and glossSalary are required and the numeric fields must be numbers"})
		return
	}

	department := models.Department{
		DepartmentCode: input.DepartmentCode.Int(),
		DepartmentName: input.DepartmentName,
		GlossSalary:    input.GlossSalary.Float64(),
	}
	if err := dc.db.Create(&department).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Department code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Department added successfully", "data": department})
}

func (dc *DepartmentController) ListDepartments(c *gin.Context) {
	var departments []models.Department
	if err := dc.db.Order("department_name").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(departments), "data": departments})
}

func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	departmentCode, err := strconv.Atoi(c.Param("departmentCode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Department code must be a number"})
		return
	}

	var input struct {
		DepartmentName *string         `json:"departmentName"`
		GlossSalary    *models.Numeric `json:"glossSalary"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "glossSalary must be a number"})
		return
	}

	updates := map[string]interface{}{}
	if input.DepartmentName != nil {
		updates["department_name"] = *input.DepartmentName
	}
	if input.GlossSalary != nil {
		updates["gloss_salary"] = input.GlossSalary.Float64()
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field (departmentName or glossSalary) must be provided for update"})
		return
	}

	res := dc.db.Model(&models.Department{}).Where("department_code = ?", departmentCode).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Department not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Department updated successfully", "affectedRows": res.RowsAffected})
}

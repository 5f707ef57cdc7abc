package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

type EmployeeController struct {
	db *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{db: db}
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var input struct {
		EmployeeNumber models.Numeric `json:"employeeNumber" binding:"required"`
		FirstNames     string         `json:"FirstNames" binding:"required"`
		LastName       string         `json:"LastName" binding:"required"`
		Position       string         `json:"position" binding:"required"`
		Gender         string         `json:"gender" binding:"required"`
		Telephone      string         `json:"telephone" binding:"required"`
		Address        string         `json:"address" binding:"required"`
		HiredDate      string         `json:"hiredDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required and employeeNumber must be a number"})
		return
	}

	employee := models.Employee{
		EmployeeNumber: input.EmployeeNumber.Int(),
		FirstNames:     input.FirstNames,
		LastName:       input.LastName,
		Position:       input.Position,
		Gender:         input.Gender,
		Telephone:      input.Telephone,
		Address:        input.Address,
		HiredDate:      input.HiredDate,
	}
	if err := ec.db.Create(&employee).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Employee number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Employee added successfully", "data": employee})
}

func (ec *EmployeeController) ListEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := ec.db.Order("last_name, first_names").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(employees), "data": employees})
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	employeeNumber, err := strconv.Atoi(c.Param("employeeNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Employee number must be a number"})
		return
	}

	var input struct {
		FirstNames *string `json:"FirstNames"`
		LastName   *string `json:"LastName"`
		Position   *string `json:"position"`
		Gender     *string `json:"gender"`
		Telephone  *string `json:"telephone"`
		Address    *string `json:"address"`
		HiredDate  *string `json:"hiredDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid update body"})
		return
	}

	updates := map[string]interface{}{}
	if input.FirstNames != nil {
		updates["first_names"] = *input.FirstNames
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}
	if input.Gender != nil {
		updates["gender"] = *input.Gender
	}
	if input.Telephone != nil {
		updates["telephone"] = *input.Telephone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.HiredDate != nil {
		updates["hired_date"] = *input.HiredDate
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field must be provided for update"})
		return
	}

	res := ec.db.Model(&models.Employee{}).Where("employee_number = ?", employeeNumber).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee updated successfully", "affectedRows": res.RowsAffected})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/models"
)

// PackageController only reads; packages are maintained directly in the
// database.
type PackageController struct {
	db *gorm.DB
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{db: db}
}

func (pc *PackageController) ListPackages(c *gin.Context) {
	var packages []models.Package
	if err := pc.db.Find(&packages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching packages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(packages), "data": packages})
}

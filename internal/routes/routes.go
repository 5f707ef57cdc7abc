package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crpms/internal/controllers"
)

// SetupRouter builds the engine and registers every route group. The
// database handle is injected into each controller here; nothing holds it
// as package state.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())

	AuthRoutes(r, controllers.NewAuthController(db))
	CarRoutes(r, controllers.NewCarController(db))
	ServiceRoutes(r, controllers.NewServiceController(db))
	ServiceRecordRoutes(r, controllers.NewServiceRecordController(db))
	ServicePackageRoutes(r, controllers.NewServicePackageController(db))
	PackageRoutes(r, controllers.NewPackageController(db))
	PaymentRoutes(r, controllers.NewPaymentController(db))
	ReportRoutes(r, controllers.NewReportController(db), controllers.NewStatsController(db))
	EmployeeRoutes(r, controllers.NewEmployeeController(db))
	DepartmentRoutes(r, controllers.NewDepartmentController(db))
	SalaryRoutes(r, controllers.NewSalaryController(db))

	return r
}

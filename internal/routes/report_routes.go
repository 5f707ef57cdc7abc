package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func ReportRoutes(r *gin.Engine, reports *controllers.ReportController, stats *controllers.StatsController) {
	rep := r.Group("/api/reports")
	{
		rep.GET("/daily", reports.Daily)
		rep.GET("/service-summary", reports.ServiceSummary)
	}

	// Singular path kept for the payroll frontend.
	r.GET("/api/report/salary", reports.Salary)

	st := r.Group("/api/stats")
	{
		st.GET("/counts", stats.Counts)
		st.GET("/recent-activity", stats.RecentActivity)
	}
}

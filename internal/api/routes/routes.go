package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/api/handlers"
	"github.com/maxaizer/job-board/internal/api/middleware"
	"github.com/maxaizer/job-board/internal/metrics"
	"github.com/maxaizer/job-board/internal/services"
)

type Deps struct {
	Catalog  *handlers.CatalogHandler
	Jobs     *handlers.JobHandler
	Auth     *handlers.AuthHandler
	Sessions *services.Sessions
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Session(d.Sessions))

	api.GET("/cities", d.Catalog.Cities)
	api.GET("/companies", d.Catalog.Companies)
	api.GET("/companies/:id", d.Catalog.Company)
	api.GET("/job-categories", d.Catalog.JobCategories)
	api.GET("/qualifications", d.Catalog.Qualifications)
	api.GET("/job-types", d.Catalog.JobTypes)

	// /jobs/featured and /jobs/recent must register before /jobs/:id so the
	// router does not treat them as ids.
	api.GET("/jobs", d.Jobs.List)
	api.GET("/jobs/featured", d.Jobs.Featured)
	api.GET("/jobs/recent", d.Jobs.Recent)
	api.GET("/jobs/:id", d.Jobs.Get)
	api.POST("/jobs/:id/apply", d.Jobs.Apply)
	api.GET("/jobs/:id/applications", d.Jobs.Applications)

	api.POST("/login", d.Auth.Login)
	api.POST("/logout", d.Auth.Logout)
	api.GET("/me", d.Auth.Me)

	protected := api.Group("/")
	protected.Use(middleware.RequireAuth())
	protected.POST("hire", d.Jobs.Hire)
}

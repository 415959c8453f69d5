package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/devjobs/internal/views"
)

type RouterConfig struct {
	CORSOrigins    []string
	MaxUploadBytes int64
}

func NewRouter(cfg RouterConfig, jobs *JobHandler, health *HealthHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.SetHTMLTemplate(views.Templates())

	upload := LimitBody(cfg.MaxUploadBytes)

	r.GET("/", jobs.Index)
	r.POST("/jobs/filter", jobs.Filter)
	r.GET("/jobs/new", jobs.NewJobForm)
	r.POST("/jobs/new", upload, jobs.SubmitJob)

	api := r.Group("/api/v1")
	{
		api.GET("/health", health.HealthCheck)
		api.GET("/options", jobs.Options)

		api.GET("/jobs", jobs.ListJobs)
		api.GET("/jobs/locations", jobs.ListLocations)
		api.POST("/jobs", upload, jobs.CreateJob)
		api.POST("/jobs/extract", jobs.ExtractJob)
	}

	return r
}

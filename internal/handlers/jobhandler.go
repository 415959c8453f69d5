package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/devjobs/internal/dtos"
	"github.com/justsurfingit/devjobs/internal/models"
	"github.com/justsurfingit/devjobs/internal/services"
	"github.com/justsurfingit/devjobs/internal/validation"
	"github.com/justsurfingit/devjobs/internal/views"
)

type JobHandler struct {
	JobService *services.JobService
	// LLMService is nil when no model is configured.
	LLMService *services.LLMService
	Logger     *zap.Logger
}

func NewJobHandler(jobs *services.JobService, llm *services.LLMService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		JobService: jobs,
		LLMService: llm,
		Logger:     logger,
	}
}

// ListJobs is GET /api/v1/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter, err := validation.ValidateFilter(firstValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, h.Logger, "Invalid filter", err)
		return
	}

	jobs, err := h.JobService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.Logger, "Failed to load jobs", err)
		return
	}

	resp := dtos.JobListResponse{Jobs: make([]dtos.JobResponse, 0, len(jobs)), Count: len(jobs)}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, dtos.NewJobResponse(&jobs[i]))
	}
	if len(jobs) == 0 {
		resp.Message = views.NoJobsMessage
	}
	c.JSON(http.StatusOK, resp)
}

// ListLocations is GET /api/v1/jobs/locations
func (h *JobHandler) ListLocations(c *gin.Context) {
	locations, err := h.JobService.Locations(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, "Failed to load locations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// Options is GET /api/v1/options
func (h *JobHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.OptionsResponse{
		JobTypes:      models.JobTypes,
		LocationTypes: models.LocationTypes,
	})
}

// CreateJob is POST /api/v1/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	form, err := readPostingForm(c)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, h.Logger, "Failed to create job", err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewJobResponse(job))
}

// ExtractJob is POST /api/v1/jobs/extract
func (h *JobHandler) ExtractJob(c *gin.Context) {
	if h.LLMService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Extraction is not configured"})
		return
	}

	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	draft, err := h.LLMService.ExtractPosting(c.Request.Context(), req.RawText)
	if err != nil {
		respondError(c, h.Logger, "AI extraction failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    draft,
	})
}

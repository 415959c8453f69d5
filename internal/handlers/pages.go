package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/justsurfingit/devjobs/internal/errors"
	"github.com/justsurfingit/devjobs/internal/models"
	"github.com/justsurfingit/devjobs/internal/validation"
	"github.com/justsurfingit/devjobs/internal/views"
)

// Index is GET /, the listing filtered by the query string.
func (h *JobHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	filter, err := validation.ValidateFilter(firstValues(c.Request.URL.Query()))
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		listing := views.NewListing(nil, models.FilterQuery{}, h.locations(c), time.Now())
		listing.FilterErrors = verrs.ByField()
		c.HTML(http.StatusBadRequest, "index.html", listing)
		return
	}

	jobs, err := h.JobService.List(ctx, filter)
	if err != nil {
		h.Logger.Error("listing jobs failed", apperrors.LogFields(err)...)
		c.HTML(http.StatusInternalServerError, "index.html", views.FailedListing(filter, h.locations(c)))
		return
	}

	c.HTML(http.StatusOK, "index.html", views.NewListing(jobs, filter, h.locations(c), time.Now()))
}

// locations feeds the sidebar. A failure only empties the choice list.
func (h *JobHandler) locations(c *gin.Context) []string {
	locations, err := h.JobService.Locations(c.Request.Context())
	if err != nil {
		h.Logger.Warn("loading locations failed", zap.Error(err))
		return nil
	}
	return locations
}

// Filter is POST /jobs/filter. It moves the submitted filter into the URL so
// results can be bookmarked and navigated with back and forward.
func (h *JobHandler) Filter(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	filter, err := validation.ValidateFilter(firstValues(c.Request.PostForm))
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		listing := views.NewListing(nil, models.FilterQuery{}, h.locations(c), time.Now())
		listing.FilterErrors = verrs.ByField()
		c.HTML(http.StatusBadRequest, "index.html", listing)
		return
	}

	if filter.IsZero() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.Redirect(http.StatusSeeOther, "/?"+filter.Values().Encode())
}

// NewJobForm is GET /jobs/new
func (h *JobHandler) NewJobForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_job.html", views.NewPostingForm(nil, nil))
}

// SubmitJob is POST /jobs/new. On any failure the form is shown again with
// the submitted values.
func (h *JobHandler) SubmitJob(c *gin.Context) {
	form, err := readPostingForm(c)
	if err != nil {
		page := views.NewPostingForm(form.Values, nil)
		page.Failure = "The submitted form could not be read."
		c.HTML(statusFor(err), "new_job.html", page)
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), form)
	if err != nil {
		var verrs validation.ValidationErrors
		if errors.As(err, &verrs) {
			c.HTML(http.StatusUnprocessableEntity, "new_job.html", views.NewPostingForm(form.Values, verrs.ByField()))
			return
		}
		h.Logger.Error("creating job failed", apperrors.LogFields(err)...)
		page := views.NewPostingForm(form.Values, nil)
		page.Failure = views.FailedMessage
		c.HTML(statusFor(err), "new_job.html", page)
		return
	}

	c.HTML(http.StatusCreated, "job_submitted.html", views.Submitted{Title: job.Title, CompanyName: job.CompanyName})
}

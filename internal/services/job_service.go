package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/justsurfingit/devjobs/internal/cache"
	"github.com/justsurfingit/devjobs/internal/events"
	"github.com/justsurfingit/devjobs/internal/models"
	"github.com/justsurfingit/devjobs/internal/query"
	"github.com/justsurfingit/devjobs/internal/telemetry"
	"github.com/justsurfingit/devjobs/internal/validation"
)

const locationsCacheKey = "jobs:locations"

var tracer = telemetry.Tracer("devjobs/services")

// JobStore is the persistence collaborator. Its errors are returned to
// callers unchanged.
type JobStore interface {
	FindMany(ctx context.Context, p query.Predicate) ([]models.Job, error)
	DistinctValues(ctx context.Context, field string, p query.Predicate) ([]string, error)
	Create(ctx context.Context, job *models.Job) error
}

type JobService struct {
	Store     JobStore
	Cache     cache.Cache
	Publisher events.Publisher
	Logger    *zap.Logger
	CacheTTL  time.Duration
}

// NewJobService wires the service. c may be nil to disable caching and pub
// may be nil when no broker is configured.
func NewJobService(store JobStore, c cache.Cache, pub events.Publisher, logger *zap.Logger, cacheTTL time.Duration) *JobService {
	if pub == nil {
		pub = events.Discard{}
	}
	return &JobService{
		Store:     store,
		Cache:     c,
		Publisher: pub,
		Logger:    logger,
		CacheTTL:  cacheTTL,
	}
}

// List returns the approved jobs matching filter, newest first.
func (s *JobService) List(ctx context.Context, filter models.FilterQuery) ([]models.Job, error) {
	ctx, span := tracer.Start(ctx, "JobService.List")
	defer span.End()

	p := query.Build(filter)
	span.SetAttributes(telemetry.Int("query.clauses", len(p.Clauses)))

	jobs, err := s.Store.FindMany(ctx, p)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return jobs, nil
}

// Locations lists the distinct locations of approved jobs for the filter
// choice list.
func (s *JobService) Locations(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "JobService.Locations")
	defer span.End()

	if cached, ok := s.cachedLocations(ctx); ok {
		span.SetAttributes(telemetry.Bool("cache.hit", true))
		return cached, nil
	}

	locations, err := s.Store.DistinctValues(ctx, query.FieldLocation, query.Approved())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if s.Cache != nil {
		if err := cache.SetJSON(ctx, s.Cache, locationsCacheKey, locations, s.CacheTTL); err != nil {
			s.Logger.Warn("caching locations failed", zap.Error(err))
		}
	}
	return locations, nil
}

func (s *JobService) cachedLocations(ctx context.Context) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	var locations []string
	if err := cache.GetJSON(ctx, s.Cache, locationsCacheKey, &locations); err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			s.Logger.Warn("reading cached locations failed", zap.Error(err))
		}
		return nil, false
	}
	return locations, true
}

// Create validates a submission and stores it unapproved, exactly as
// validated. Invalid input is returned as validation.ValidationErrors and
// never reaches the store.
func (s *JobService) Create(ctx context.Context, form validation.Form) (*models.Job, error) {
	ctx, span := tracer.Start(ctx, "JobService.Create")
	defer span.End()

	job, err := validation.ValidatePosting(form)
	if err != nil {
		return nil, err
	}
	job.Approved = false

	if err := s.Store.Create(ctx, job); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(telemetry.String("job.id", job.ID.String()))

	if err := s.Publisher.PublishJobSubmitted(ctx, job); err != nil {
		s.Logger.Warn("announcing job submission failed",
			zap.String("id", job.ID.String()),
			zap.Error(err))
	}

	s.Logger.Info("job submitted",
		zap.String("id", job.ID.String()),
		zap.String("company", job.CompanyName))
	return job, nil
}

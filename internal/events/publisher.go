package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	apperrors "github.com/justsurfingit/devjobs/internal/errors"
	"github.com/justsurfingit/devjobs/internal/models"
	"github.com/justsurfingit/devjobs/internal/telemetry"
)

var tracer = telemetry.Tracer("devjobs/events")

// JobSubmittedSubject carries every newly stored posting so the moderation
// process can review it.
const JobSubmittedSubject = "jobs.submitted"

type Publisher interface {
	PublishJobSubmitted(ctx context.Context, job *models.Job) error
	Close()
}

// JobSubmitted is the message body. The logo is not included.
type JobSubmitted struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CompanyName  string    `json:"company_name"`
	Type         string    `json:"type"`
	LocationType string    `json:"location_type"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewJobSubmitted(job *models.Job) JobSubmitted {
	return JobSubmitted{
		ID:           job.ID.String(),
		Title:        job.Title,
		CompanyName:  job.CompanyName,
		Type:         job.Type,
		LocationType: job.LocationType,
		Location:     job.Location,
		CreatedAt:    job.CreatedAt,
	}
}

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger, url string, timeout time.Duration) (Publisher, error) {
	opts := []nats.Option{
		nats.Name("devjobs"),
		nats.Timeout(timeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, apperrors.Internal("connecting to NATS", err)
	}

	return &natsPublisher{
		conn:   conn,
		logger: logger,
	}, nil
}

func (p *natsPublisher) PublishJobSubmitted(ctx context.Context, job *models.Job) error {
	_, span := tracer.Start(ctx, "PublishJobSubmitted")
	defer span.End()

	data, err := json.Marshal(NewJobSubmitted(job))
	if err != nil {
		telemetry.RecordError(span, err)
		return apperrors.Internal("marshaling job", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", JobSubmittedSubject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.conn.Publish(JobSubmittedSubject, data); err != nil {
		telemetry.RecordError(span, err)
		return apperrors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published job submission",
		zap.String("id", job.ID.String()),
		zap.String("subject", JobSubmittedSubject))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Drain()
	}
}

// Discard is used when no broker is configured.
type Discard struct{}

func (Discard) PublishJobSubmitted(context.Context, *models.Job) error { return nil }

func (Discard) Close() {}

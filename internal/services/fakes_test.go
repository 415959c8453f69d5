package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"github.com/justsurfingit/devjobs/internal/cache"
	"github.com/justsurfingit/devjobs/internal/models"
	"github.com/justsurfingit/devjobs/internal/query"
)

type fakeStore struct {
	jobs      []models.Job
	locations []string
	err       error

	predicates    []query.Predicate
	distinctCalls int
	created       []*models.Job
}

func (f *fakeStore) FindMany(_ context.Context, p query.Predicate) ([]models.Job, error) {
	f.predicates = append(f.predicates, p)
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func (f *fakeStore) DistinctValues(_ context.Context, _ string, p query.Predicate) ([]string, error) {
	f.distinctCalls++
	f.predicates = append(f.predicates, p)
	if f.err != nil {
		return nil, f.err
	}
	return f.locations, nil
}

func (f *fakeStore) Create(_ context.Context, job *models.Job) error {
	if f.err != nil {
		return f.err
	}
	job.ID = uuid.New()
	job.CreatedAt = time.Now()
	f.created = append(f.created, job)
	return nil
}

type memoryCache struct {
	values map[string][]byte
	err    error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	v, ok := c.values[key]
	if !ok {
		return nil, cache.ErrNotFound
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.values[key] = value
	return nil
}

func (c *memoryCache) Close() error { return nil }

type recordingPublisher struct {
	published []*models.Job
	err       error
}

func (p *recordingPublisher) PublishJobSubmitted(_ context.Context, job *models.Job) error {
	p.published = append(p.published, job)
	return p.err
}

func (p *recordingPublisher) Close() {}

type fakeModel struct {
	response string
	err      error
	prompts  []string
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.response}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

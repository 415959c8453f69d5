package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	apperrors "github.com/justsurfingit/devjobs/internal/errors"
	"github.com/justsurfingit/devjobs/internal/models"
	"github.com/justsurfingit/devjobs/internal/validation"
)

const maxAdvertLength = 20000

const postingExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to read a job advert and draft the fields of a job posting form.

### INSTRUCTIONS:
1. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
2. **Extract** only the fields below.
3. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Senior Backend Engineer)",
    "type": "One of: %s",
    "companyName": "Name of the company",
    "description": "A clean summary of responsibilities and requirements. No HTML.",
    "salary": "Yearly salary as digits only, e.g. 90000",
    "applicationEmail": "Email address to apply to",
    "applicationUrl": "URL to apply at",
    "locationType": "One of: %s",
    "location": "City or region for on-site and hybrid jobs"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

type LLMService struct {
	Client llms.Model
}

func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

// ExtractPosting drafts posting form values from a raw job advert. Only
// known form fields are returned, and type and locationType only when the
// model picked an allowed value. The draft still has to pass validation
// when submitted.
func (s *LLMService) ExtractPosting(ctx context.Context, advert string) (map[string]string, error) {
	advert = truncateUTF8(advert, maxAdvertLength)

	prompt := fmt.Sprintf(postingExtractionPrompt,
		strings.Join(models.JobTypes, ", "),
		strings.Join(models.LocationTypes, ", "),
		advert)

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return nil, apperrors.Unavailable("extracting posting", err)
	}
	return parseDraft(resp)
}

func parseDraft(resp string) (map[string]string, error) {
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp)), &raw); err != nil {
		return nil, apperrors.Internal("parsing model output", err)
	}

	draft := make(map[string]string)
	for _, field := range validation.PostingFields {
		var value string
		switch v := raw[field].(type) {
		case string:
			value = strings.TrimSpace(v)
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if value == "" {
			continue
		}
		draft[field] = value
	}

	if t, ok := draft[validation.FieldType]; ok && !models.IsJobType(t) {
		delete(draft, validation.FieldType)
	}
	if t, ok := draft[validation.FieldLocationType]; ok && !models.IsLocationType(t) {
		delete(draft, validation.FieldLocationType)
	}
	return draft, nil
}

// truncateUTF8 cuts s to at most max bytes without splitting a character.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

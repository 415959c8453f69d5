package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/devjobs/internal/models"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func sampleJob() models.Job {
	return models.Job{
		ID:               uuid.MustParse("3f0e1a52-5c1b-4f39-8a43-0d0b9f1e2c77"),
		CreatedAt:        now.Add(-72 * time.Hour),
		Title:            "Backend Dev",
		CompanyName:      "Acme",
		Type:             "Full-time",
		Salary:           "90000",
		ApplicationEmail: "hr@acme.com",
		LocationType:     "Remote",
	}
}

func TestNewListingEmpty(t *testing.T) {
	l := NewListing(nil, models.FilterQuery{Remote: true}, []string{"Berlin"}, now)

	assert.True(t, l.Empty)
	assert.Equal(t, NoJobsMessage, l.Message)
	assert.Empty(t, l.Items)
	assert.Empty(t, l.Failure)
	assert.Equal(t, models.JobTypes, l.JobTypes)
}

func TestNewListingItems(t *testing.T) {
	onsite := sampleJob()
	onsite.Location = "Berlin"
	onsite.LocationType = "Hybrid"
	onsite.ApplicationURL = "https://acme.com/apply"

	l := NewListing([]models.Job{sampleJob(), onsite}, models.FilterQuery{}, nil, now)
	require.Len(t, l.Items, 2)
	assert.False(t, l.Empty)
	assert.Empty(t, l.Message)

	first := l.Items[0]
	assert.Equal(t, "3f0e1a52-5c1b-4f39-8a43-0d0b9f1e2c77", first.ID)
	assert.Equal(t, "Worldwide (Remote)", first.Location)
	assert.Equal(t, "$90,000", first.Salary)
	assert.Equal(t, "3 days ago", first.Posted)
	assert.Equal(t, "mailto:hr@acme.com", first.Apply)

	assert.Equal(t, "Berlin (Hybrid)", l.Items[1].Location)
	assert.Equal(t, "https://acme.com/apply", l.Items[1].Apply)
}

func TestDescriptionHTML(t *testing.T) {
	assert.Equal(t, "R&amp;D &gt; 90k", string(DescriptionHTML("R&D > 90k")))
	assert.Equal(t, "<p>Build APIs</p>", string(DescriptionHTML("<p>Build APIs</p><script>alert(1)</script>")))
	assert.Empty(t, string(DescriptionHTML("")))
}

func TestIndexTemplateEscapesDescriptionOnce(t *testing.T) {
	job := sampleJob()
	job.Description = "R&D team <script>alert(1)</script>"

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, "index.html", NewListing([]models.Job{job}, models.FilterQuery{}, nil, now)))

	html := buf.String()
	assert.Contains(t, html, "R&amp;D team")
	assert.NotContains(t, html, "&amp;amp;")
	assert.NotContains(t, html, "<script>")
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "$1,234,567", FormatSalary("1234567"))
	assert.Equal(t, "$500", FormatSalary("0500"))
	assert.Equal(t, "n/a", FormatSalary("n/a"))
}

func TestIndexTemplate(t *testing.T) {
	tmpl := Templates()

	var buf bytes.Buffer
	filter := models.FilterQuery{Q: "go", Type: "Contract", Location: "Oslo", Remote: true}
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", NewListing(nil, filter, []string{"Berlin", "Oslo"}, now)))

	html := buf.String()
	assert.Contains(t, html, NoJobsMessage)
	assert.Contains(t, html, `value="Contract" selected`)
	assert.Contains(t, html, `value="Oslo" selected`)
	assert.Contains(t, html, `type="checkbox" checked`)
	assert.Contains(t, html, `value="go"`)
}

func TestIndexTemplateRendersItemsAndFailure(t *testing.T) {
	tmpl := Templates()

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", NewListing([]models.Job{sampleJob()}, models.FilterQuery{}, nil, now)))
	assert.Contains(t, buf.String(), "Backend Dev")
	assert.NotContains(t, buf.String(), NoJobsMessage)

	buf.Reset()
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", FailedListing(models.FilterQuery{}, nil)))
	assert.Contains(t, buf.String(), FailedMessage)
	assert.NotContains(t, buf.String(), NoJobsMessage)
}

func TestNewJobTemplateKeepsValuesAndErrors(t *testing.T) {
	tmpl := Templates()

	form := NewPostingForm(
		map[string]string{"title": "Backend <Dev>", "locationType": "On-site"},
		map[string][]string{"location": {"Location is required for on-site jobs"}},
	)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "new_job.html", form))

	html := buf.String()
	assert.Contains(t, html, `value="Backend &lt;Dev&gt;"`)
	assert.Contains(t, html, `value="On-site" selected`)
	assert.Contains(t, html, "Location is required for on-site jobs")
}

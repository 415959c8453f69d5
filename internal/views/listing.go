package views

import (
	"html/template"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/justsurfingit/devjobs/internal/models"
)

const (
	NoJobsMessage = "No jobs found. Try adjusting your search filters."
	FailedMessage = "Something went wrong. Please try again."
)

var printer = message.NewPrinter(language.English)

var descriptionPolicy = bluemonday.UGCPolicy()

// ListingItem is the summary of one job in the results list.
type ListingItem struct {
	ID          string
	Title       string
	CompanyName string
	Type        string
	Location    string
	Salary      string
	Posted      string
	Apply       string
	Description template.HTML
}

// Listing is everything the index page shows: the filter sidebar and either
// results, the no-results message, or a failure notice.
type Listing struct {
	Items   []ListingItem
	Empty   bool
	Message string
	Failure string

	Filter       models.FilterQuery
	FilterErrors map[string][]string
	Locations    []string
	JobTypes     []string
}

func NewListing(jobs []models.Job, filter models.FilterQuery, locations []string, now time.Time) Listing {
	l := Listing{
		Items:     make([]ListingItem, 0, len(jobs)),
		Filter:    filter,
		Locations: locations,
		JobTypes:  models.JobTypes,
	}
	for _, job := range jobs {
		l.Items = append(l.Items, NewListingItem(job, now))
	}
	if len(l.Items) == 0 {
		l.Empty = true
		l.Message = NoJobsMessage
	}
	return l
}

// FailedListing keeps the sidebar usable when results could not be loaded.
func FailedListing(filter models.FilterQuery, locations []string) Listing {
	return Listing{
		Failure:   FailedMessage,
		Filter:    filter,
		Locations: locations,
		JobTypes:  models.JobTypes,
	}
}

func NewListingItem(job models.Job, now time.Time) ListingItem {
	apply := job.ApplicationURL
	if apply == "" && job.ApplicationEmail != "" {
		apply = "mailto:" + job.ApplicationEmail
	}
	return ListingItem{
		ID:          job.ID.String(),
		Title:       job.Title,
		CompanyName: job.CompanyName,
		Type:        job.Type,
		Location:    LocationLabel(job),
		Salary:      FormatSalary(job.Salary),
		Posted:      humanize.RelTime(job.CreatedAt, now, "ago", "from now"),
		Apply:       apply,
		Description: DescriptionHTML(job.Description),
	}
}

// DescriptionHTML renders a stored description for a page. Stored text is
// never rewritten; unsafe markup is stripped here, at output.
func DescriptionHTML(description string) template.HTML {
	return template.HTML(descriptionPolicy.Sanitize(description))
}

// LocationLabel reads "Berlin (Hybrid)", or "Worldwide (Remote)" when a
// remote job names no region.
func LocationLabel(job models.Job) string {
	location := job.Location
	if location == "" {
		location = "Worldwide"
	}
	return location + " (" + job.LocationType + ")"
}

// FormatSalary renders a digit string as whole dollars with grouping.
func FormatSalary(salary string) string {
	n, err := strconv.ParseInt(salary, 10, 64)
	if err != nil {
		return salary
	}
	return printer.Sprintf("$%d", n)
}

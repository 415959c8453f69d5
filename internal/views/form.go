package views

import (
	"github.com/justsurfingit/devjobs/internal/models"
)

// PostingForm is the new-job page. Values are echoed back after a failed
// submission so nothing the user typed is lost.
type PostingForm struct {
	Values        map[string]string
	Errors        map[string][]string
	Failure       string
	JobTypes      []string
	LocationTypes []string
}

func NewPostingForm(values map[string]string, errs map[string][]string) PostingForm {
	if values == nil {
		values = map[string]string{}
	}
	if errs == nil {
		errs = map[string][]string{}
	}
	return PostingForm{
		Values:        values,
		Errors:        errs,
		JobTypes:      models.JobTypes,
		LocationTypes: models.LocationTypes,
	}
}

// Submitted is the confirmation shown after a posting was stored.
type Submitted struct {
	Title       string
	CompanyName string
}

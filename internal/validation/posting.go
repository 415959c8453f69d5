package validation

import (
	"strings"

	"github.com/justsurfingit/devjobs/internal/models"
)

// Form field names shared by the HTML form, the JSON API and error output.
const (
	FieldTitle            = "title"
	FieldType             = "type"
	FieldCompanyName      = "companyName"
	FieldCompanyLogo      = "companyLogo"
	FieldDescription      = "description"
	FieldSalary           = "salary"
	FieldApplicationEmail = "applicationEmail"
	FieldApplicationURL   = "applicationUrl"
	FieldLocationType     = "locationType"
	FieldLocation         = "location"
)

// PostingFields lists the text fields of the posting form in display order.
var PostingFields = []string{
	FieldTitle,
	FieldType,
	FieldCompanyName,
	FieldDescription,
	FieldSalary,
	FieldApplicationEmail,
	FieldApplicationURL,
	FieldLocationType,
	FieldLocation,
}

const (
	MsgEmailOrURLRequired = "Email or url is required"
	MsgLocationRequired   = "Location is required for on-site jobs"
)

// Form is raw, untyped input from a posting submission. It only becomes a
// models.Job through ValidatePosting.
type Form struct {
	Values map[string]string
	Files  map[string][]File
}

func (f Form) Value(field string) string {
	return strings.TrimSpace(f.Values[field])
}

type postingInput struct {
	Title            string `form:"title" validate:"required,max=100"`
	Type             string `form:"type" validate:"required,job_type"`
	CompanyName      string `form:"companyName" validate:"required,max=100"`
	Description      string `form:"description" validate:"max=5000"`
	Salary           string `form:"salary" validate:"required,digits,max=9"`
	ApplicationEmail string `form:"applicationEmail" validate:"omitempty,max=100,email"`
	ApplicationURL   string `form:"applicationUrl" validate:"omitempty,max=100,url"`
	LocationType     string `form:"locationType" validate:"required,location_type"`
	Location         string `form:"location" validate:"max=100"`
}

// ValidatePosting turns a raw submission into a Job ready to be stored, or
// returns ValidationErrors listing every problem found.
//
// Field rules are all evaluated. Each refinement runs once the fields it
// looks at have passed their own rules, so a missing contact is reported
// even when unrelated fields are also wrong.
func ValidatePosting(form Form) (*models.Job, error) {
	in := postingInput{
		Title:            form.Value(FieldTitle),
		Type:             form.Value(FieldType),
		CompanyName:      form.Value(FieldCompanyName),
		Description:      form.Value(FieldDescription),
		Salary:           form.Value(FieldSalary),
		ApplicationEmail: form.Value(FieldApplicationEmail),
		ApplicationURL:   form.Value(FieldApplicationURL),
		LocationType:     form.Value(FieldLocationType),
		Location:         form.Value(FieldLocation),
	}

	var errs ValidationErrors
	if err := validateStruct(in, &errs); err != nil {
		return nil, err
	}
	logo := form.Files[FieldCompanyLogo]
	validateImages(FieldCompanyLogo, logo, &errs)

	if !errs.Has(FieldApplicationEmail) && !errs.Has(FieldApplicationURL) &&
		in.ApplicationEmail == "" && in.ApplicationURL == "" {
		errs.add(FieldApplicationEmail, MsgEmailOrURLRequired, KindCrossField)
	}
	if !errs.Has(FieldLocationType) && !errs.Has(FieldLocation) &&
		in.LocationType != models.LocationRemote && in.Location == "" {
		errs.add(FieldLocation, MsgLocationRequired, KindCrossField)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Job{
		Title:            in.Title,
		Type:             in.Type,
		CompanyName:      in.CompanyName,
		CompanyLogo:      logo[0].Data,
		CompanyLogoType:  logo[0].MIMEType,
		Description:      in.Description,
		Salary:           in.Salary,
		ApplicationEmail: in.ApplicationEmail,
		ApplicationURL:   in.ApplicationURL,
		LocationType:     in.LocationType,
		Location:         in.Location,
	}, nil
}

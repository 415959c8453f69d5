package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/justsurfingit/devjobs/internal/models"
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// getValidator returns the shared validator with the job-board rules
// registered. Field names in errors are taken from the `form` tag so they
// match what clients submit.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		validatorInst.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validatorInst.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
			return digitsPattern.MatchString(fl.Field().String())
		})
		_ = validatorInst.RegisterValidation("job_type", func(fl validator.FieldLevel) bool {
			return models.IsJobType(fl.Field().String())
		})
		_ = validatorInst.RegisterValidation("location_type", func(fl validator.FieldLevel) bool {
			return models.IsLocationType(fl.Field().String())
		})
	})
	return validatorInst
}

// validateStruct runs the tag rules on s and appends one error per failing
// field to errs. Any other validator failure is a programming error.
func validateStruct(s interface{}, errs *ValidationErrors) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fe := range fieldErrs {
		errs.add(fe.Field(), formatMessage(fe), KindField)
	}
	return nil
}

func formatMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "max":
		if fe.Field() == FieldSalary {
			return fmt.Sprintf("Number can't be longer than %s digits", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "digits":
		return "Must be a number"
	case "job_type":
		return "Invalid job type"
	case "location_type":
		return "Invalid location type"
	case "email":
		return "Invalid email address"
	case "url":
		return "Invalid url"
	default:
		return fe.Error()
	}
}

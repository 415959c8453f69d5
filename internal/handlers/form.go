package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/devjobs/internal/validation"
)

// firstValues flattens query or form values, keeping the first value of
// each key.
func firstValues(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// readPostingForm collects a posting submission. Multipart bodies may carry
// logo files; url-encoded bodies only text fields.
func readPostingForm(c *gin.Context) (validation.Form, error) {
	form := validation.Form{
		Values: map[string]string{},
		Files:  map[string][]validation.File{},
	}

	mf, err := c.MultipartForm()
	if err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return form, err
		}
		form.Values = firstValues(c.Request.PostForm)
		return form, nil
	}

	form.Values = firstValues(mf.Value)
	for _, fh := range mf.File[validation.FieldCompanyLogo] {
		// An untouched file input is still submitted, as an empty part.
		if fh.Filename == "" && fh.Size == 0 {
			continue
		}
		f, err := validation.FileFromMultipart(fh)
		if err != nil {
			return form, err
		}
		form.Files[validation.FieldCompanyLogo] = append(form.Files[validation.FieldCompanyLogo], f)
	}
	return form, nil
}

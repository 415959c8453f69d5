package models

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job is a posting on the board. Rows are only ever created from a validated
// submission; Approved is flipped by moderation outside this service.
type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title           string `gorm:"size:100;not null" json:"title"`
	Type            string `gorm:"size:32;not null;index" json:"type"`
	CompanyName     string `gorm:"size:100;not null" json:"company_name"`
	CompanyLogo     []byte `gorm:"type:bytea" json:"-"`
	CompanyLogoType string `gorm:"size:32" json:"company_logo_type"`
	Description     string `gorm:"type:text" json:"description,omitempty"`
	Salary          string `gorm:"size:9;not null" json:"salary"`

	ApplicationEmail string `gorm:"size:100" json:"application_email,omitempty"`
	ApplicationURL   string `gorm:"size:100" json:"application_url,omitempty"`

	LocationType string `gorm:"size:32;not null;index" json:"location_type"`
	Location     string `gorm:"size:100;index" json:"location,omitempty"`

	Approved bool `gorm:"default:false;not null;index" json:"approved"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// FilterQuery is a validated set of listing filters. Zero values mean
// "no restriction".
type FilterQuery struct {
	Q        string `json:"q,omitempty"`
	Type     string `json:"type,omitempty"`
	Location string `json:"location,omitempty"`
	Remote   bool   `json:"remote,omitempty"`
}

// Values encodes the filter as query parameters so a filtered listing can be
// bookmarked and shared.
func (f FilterQuery) Values() url.Values {
	v := url.Values{}
	if q := strings.TrimSpace(f.Q); q != "" {
		v.Set("q", q)
	}
	if f.Type != "" {
		v.Set("type", f.Type)
	}
	if f.Location != "" {
		v.Set("location", f.Location)
	}
	if f.Remote {
		v.Set("remote", "true")
	}
	return v
}

// IsZero reports whether f restricts nothing. A blank search counts as no
// search.
func (f FilterQuery) IsZero() bool {
	return len(f.Values()) == 0
}

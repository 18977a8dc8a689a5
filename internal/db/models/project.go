// Package models defines the domain entities persisted by the portfolio backend
// together with the row-level encodings used at the storage boundary: array
// fields are stored as JSON text and is_featured as a 0/1 integer, and both
// must round-trip exactly through the typed domain shape.
package models

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusInDevelopment      ProjectStatus = "in_development"
	StatusCompleted          ProjectStatus = "completed"
	StatusActivelyMaintained ProjectStatus = "actively_maintained"
	StatusDeprecated         ProjectStatus = "deprecated"
	StatusArchived           ProjectStatus = "archived"
)

// ValidStatuses lists the accepted status values in declaration order.
var ValidStatuses = []ProjectStatus{
	StatusInDevelopment,
	StatusCompleted,
	StatusActivelyMaintained,
	StatusDeprecated,
	StatusArchived,
}

// Valid reports whether s is one of the recognised lifecycle states.
func (s ProjectStatus) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Project represents a portfolio project as returned by the API.
// Optional link fields are nil when absent; Images is nil (not empty)
// when the stored column is NULL.
type Project struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	ShortDescription string        `json:"short_description"`
	LongDescription  string        `json:"long_description"`
	URL              *string       `json:"url"`
	GithubURL        *string       `json:"github_url"`
	CaseStudyURL     *string       `json:"case_study_url"`
	Thumbnail        *string       `json:"thumbnail"`
	Images           []string      `json:"images"`
	Tags             []string      `json:"tags"`
	Status           ProjectStatus `json:"status"`
	IsFeatured       bool          `json:"is_featured"`
	DisplayOrder     int           `json:"display_order"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// ProjectRow mirrors the projects table column-for-column, in the fixed
// column order used by every statement the repository generates. Arrays are
// raw JSON text and IsFeatured is the stored 0/1 integer.
type ProjectRow struct {
	ID               int64
	Name             string
	ShortDescription string
	LongDescription  string
	URL              sql.NullString
	GithubURL        sql.NullString
	CaseStudyURL     sql.NullString
	Thumbnail        sql.NullString
	Images           sql.NullString
	Tags             string
	Status           string
	IsFeatured       int
	DisplayOrder     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Decode converts a stored row into the domain shape. A NULL images column
// decodes to a nil slice, distinct from an empty array; the 0/1 featured
// flag decodes to a genuine bool.
func (r *ProjectRow) Decode() (*Project, error) {
	var tags []string
	if err := json.Unmarshal([]byte(r.Tags), &tags); err != nil {
		return nil, fmt.Errorf("project %d: malformed tags column: %w", r.ID, err)
	}

	var images []string
	if r.Images.Valid {
		if err := json.Unmarshal([]byte(r.Images.String), &images); err != nil {
			return nil, fmt.Errorf("project %d: malformed images column: %w", r.ID, err)
		}
	}

	return &Project{
		ID:               r.ID,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		URL:              nullableString(r.URL),
		GithubURL:        nullableString(r.GithubURL),
		CaseStudyURL:     nullableString(r.CaseStudyURL),
		Thumbnail:        nullableString(r.Thumbnail),
		Images:           images,
		Tags:             tags,
		Status:           ProjectStatus(r.Status),
		IsFeatured:       r.IsFeatured != 0,
		DisplayOrder:     r.DisplayOrder,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}, nil
}

// EncodeStrings serialises a string slice to the JSON text stored in array
// columns. A nil slice encodes to an invalid (NULL) value.
func EncodeStrings(values []string) (sql.NullString, error) {
	if values == nil {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

// BoolToInt encodes a bool as the 0/1 integer stored in is_featured.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// CreateProjectInput is a fully validated, defaults-resolved create payload.
// Optional link fields are nil when absent (an empty string never reaches
// this type; the validator coerces it to absent). Images is nil when the
// caller supplied none.
type CreateProjectInput struct {
	Name             string
	ShortDescription string
	LongDescription  string
	Tags             []string
	URL              *string
	GithubURL        *string
	CaseStudyURL     *string
	Thumbnail        *string
	Images           []string
	Status           ProjectStatus
	IsFeatured       bool
	DisplayOrder     int
}

// ProjectPatch is a validated partial update. A nil field means "leave
// unchanged"; a non-nil field generates an assignment even when it points at
// an empty string (URL-like fields coerce empty to NULL at the store).
// No defaults are ever applied to a patch.
type ProjectPatch struct {
	Name             *string
	ShortDescription *string
	LongDescription  *string
	URL              *string
	GithubURL        *string
	CaseStudyURL     *string
	Thumbnail        *string
	Images           *[]string
	Tags             *[]string
	Status           *ProjectStatus
	IsFeatured       *bool
	DisplayOrder     *int
}

// IsEmpty reports whether the patch carries no recognised fields, in which
// case the store performs no mutation at all.
func (p *ProjectPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.ShortDescription == nil &&
		p.LongDescription == nil &&
		p.URL == nil &&
		p.GithubURL == nil &&
		p.CaseStudyURL == nil &&
		p.Thumbnail == nil &&
		p.Images == nil &&
		p.Tags == nil &&
		p.Status == nil &&
		p.IsFeatured == nil &&
		p.DisplayOrder == nil
}

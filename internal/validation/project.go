package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/portfolio-cms/portfolio-cms/internal/db/models"
)

var (
	urlPattern       = regexp.MustCompile(`^https?://.+\..+`)
	repoURLPattern   = regexp.MustCompile(`^https://(github|gitlab|bitbucket)\.(com|org)/.+`)
	imagePathPattern = regexp.MustCompile(`^uploads/projects/[\w-]+\.(webp|jpg|jpeg|png|gif)$`)
)

// ProjectPayload is the raw decoded body of a create or update request.
// Pointer fields distinguish "omitted" from "present but zero".
type ProjectPayload struct {
	Name             *string   `json:"name"`
	ShortDescription *string   `json:"short_description"`
	LongDescription  *string   `json:"long_description"`
	Tags             *[]string `json:"tags"`
	URL              *string   `json:"url"`
	GithubURL        *string   `json:"github_url"`
	CaseStudyURL     *string   `json:"case_study_url"`
	Thumbnail        *string   `json:"thumbnail"`
	Images           *[]string `json:"images"`
	Status           *string   `json:"status"`
	IsFeatured       *bool     `json:"is_featured"`
	DisplayOrder     *float64  `json:"display_order"`
}

// ValidateCreateProject checks a create payload and, when it is admissible,
// returns the normalized input with defaults applied (status in_development,
// is_featured false, display_order 0). Empty strings in optional URL fields
// count as absent. On failure it returns every violation, ordered by field.
func ValidateCreateProject(p *ProjectPayload) (*models.CreateProjectInput, []FieldError) {
	var errs errorList

	name := checkRequiredString(&errs, "name", p.Name, "Name", 2, 255)
	short := checkRequiredString(&errs, "short_description", p.ShortDescription, "Short description", 20, 500)
	long := checkRequiredString(&errs, "long_description", p.LongDescription, "Long description", 50, 10000)

	var tags []string
	if p.Tags == nil {
		errs.add("tags", "At least one tag is required")
	} else {
		tags = checkTags(&errs, *p.Tags)
	}

	url := checkOptionalURL(&errs, "url", p.URL, urlPattern, "Must be a valid URL")
	githubURL := checkOptionalURL(&errs, "github_url", p.GithubURL, repoURLPattern, "Must be a GitHub, GitLab, or Bitbucket URL")
	caseStudyURL := checkOptionalURL(&errs, "case_study_url", p.CaseStudyURL, urlPattern, "Must be a valid URL")
	thumbnail := checkImagePath(&errs, "thumbnail", p.Thumbnail)
	images := checkImages(&errs, p.Images)

	status := models.StatusInDevelopment
	if p.Status != nil {
		status = checkStatus(&errs, *p.Status)
	}
	isFeatured := false
	if p.IsFeatured != nil {
		isFeatured = *p.IsFeatured
	}
	displayOrder := 0
	if p.DisplayOrder != nil {
		displayOrder = checkDisplayOrder(&errs, *p.DisplayOrder)
	}

	if len(errs.errs) > 0 {
		return nil, errs.errs
	}
	return &models.CreateProjectInput{
		Name:             name,
		ShortDescription: short,
		LongDescription:  long,
		Tags:             tags,
		URL:              url,
		GithubURL:        githubURL,
		CaseStudyURL:     caseStudyURL,
		Thumbnail:        thumbnail,
		Images:           images,
		Status:           status,
		IsFeatured:       isFeatured,
		DisplayOrder:     displayOrder,
	}, nil
}

// ValidateUpdateProject checks a partial update. Every field is optional and
// no defaults are applied; an empty body validates to an empty patch. Unlike
// create, a present-but-empty URL field stays present in the patch so the
// store can null the column out.
func ValidateUpdateProject(p *ProjectPayload) (*models.ProjectPatch, []FieldError) {
	var errs errorList
	patch := &models.ProjectPatch{}

	if p.Name != nil {
		v := checkStringLength(&errs, "name", *p.Name, "Name", 2, 255)
		patch.Name = &v
	}
	if p.ShortDescription != nil {
		v := checkStringLength(&errs, "short_description", *p.ShortDescription, "Short description", 20, 500)
		patch.ShortDescription = &v
	}
	if p.LongDescription != nil {
		v := checkStringLength(&errs, "long_description", *p.LongDescription, "Long description", 50, 10000)
		patch.LongDescription = &v
	}
	if p.Tags != nil {
		v := checkTags(&errs, *p.Tags)
		patch.Tags = &v
	}
	if p.URL != nil {
		checkPatchURL(&errs, "url", *p.URL, urlPattern, "Must be a valid URL")
		patch.URL = p.URL
	}
	if p.GithubURL != nil {
		checkPatchURL(&errs, "github_url", *p.GithubURL, repoURLPattern, "Must be a GitHub, GitLab, or Bitbucket URL")
		patch.GithubURL = p.GithubURL
	}
	if p.CaseStudyURL != nil {
		checkPatchURL(&errs, "case_study_url", *p.CaseStudyURL, urlPattern, "Must be a valid URL")
		patch.CaseStudyURL = p.CaseStudyURL
	}
	if p.Thumbnail != nil {
		if !imagePathPattern.MatchString(*p.Thumbnail) {
			errs.add("thumbnail", "Invalid image path format")
		}
		patch.Thumbnail = p.Thumbnail
	}
	if p.Images != nil {
		v := checkImagesList(&errs, *p.Images)
		patch.Images = &v
	}
	if p.Status != nil {
		v := checkStatus(&errs, *p.Status)
		patch.Status = &v
	}
	if p.IsFeatured != nil {
		patch.IsFeatured = p.IsFeatured
	}
	if p.DisplayOrder != nil {
		v := checkDisplayOrder(&errs, *p.DisplayOrder)
		patch.DisplayOrder = &v
	}

	if len(errs.errs) > 0 {
		return nil, errs.errs
	}
	return patch, nil
}

func checkRequiredString(errs *errorList, field string, value *string, label string, min, max int) string {
	if value == nil {
		errs.add(field, "Required")
		return ""
	}
	return checkStringLength(errs, field, *value, label, min, max)
}

// Length limits count characters, not bytes, so multibyte input is
// measured the way users see it.
func checkStringLength(errs *errorList, field, value, label string, min, max int) string {
	trimmed := strings.TrimSpace(value)
	if n := utf8.RuneCountInString(trimmed); n < min {
		errs.add(field, label+" must be at least "+strconv.Itoa(min)+" characters")
	} else if n > max {
		errs.add(field, label+" must not exceed "+formatLimit(max)+" characters")
	}
	return trimmed
}

// checkTags applies the failure conditions in priority order: empty,
// then count, then duplicates, then per-element length. Only the highest
// priority collection-level violation is reported; per-element errors use
// a dotted index path.
func checkTags(errs *errorList, raw []string) []string {
	tags := make([]string, len(raw))
	for i, t := range raw {
		tags[i] = strings.TrimSpace(t)
	}
	switch {
	case len(tags) == 0:
		errs.add("tags", "At least one tag is required")
	case len(tags) > 20:
		errs.add("tags", "Maximum 20 tags allowed")
	case hasDuplicates(tags):
		errs.add("tags", "Duplicate tags are not allowed")
	default:
		for i, t := range tags {
			if n := utf8.RuneCountInString(t); n < 2 {
				errs.add("tags."+strconv.Itoa(i), "Tag must be at least 2 characters")
			} else if n > 50 {
				errs.add("tags."+strconv.Itoa(i), "Tag must not exceed 50 characters")
			}
		}
	}
	return tags
}

func hasDuplicates(tags []string) bool {
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			return true
		}
		seen[t] = struct{}{}
	}
	return false
}

// checkOptionalURL implements the create-shape rule: empty string means the
// field is absent, anything else must match the pattern and the length cap.
func checkOptionalURL(errs *errorList, field string, value *string, pattern *regexp.Regexp, message string) *string {
	if value == nil || *value == "" {
		return nil
	}
	checkPatchURL(errs, field, *value, pattern, message)
	return value
}

func checkPatchURL(errs *errorList, field, value string, pattern *regexp.Regexp, message string) {
	if value == "" {
		return
	}
	if !pattern.MatchString(value) {
		errs.add(field, message)
		return
	}
	if utf8.RuneCountInString(value) > 500 {
		errs.add(field, "Must not exceed 500 characters")
	}
}

func checkImagePath(errs *errorList, field string, value *string) *string {
	if value == nil {
		return nil
	}
	if !imagePathPattern.MatchString(*value) {
		errs.add(field, "Invalid image path format")
	}
	return value
}

func checkImages(errs *errorList, value *[]string) []string {
	if value == nil {
		return nil
	}
	return checkImagesList(errs, *value)
}

func checkImagesList(errs *errorList, images []string) []string {
	if len(images) > 10 {
		errs.add("images", "Maximum 10 images allowed")
		return images
	}
	for i, img := range images {
		if !imagePathPattern.MatchString(img) {
			errs.add("images."+strconv.Itoa(i), "Invalid image path format")
		}
	}
	return images
}

func checkStatus(errs *errorList, value string) models.ProjectStatus {
	s := models.ProjectStatus(value)
	if !s.Valid() {
		errs.add("status", "Status must be one of: in_development, completed, actively_maintained, deprecated, archived")
	}
	return s
}

func checkDisplayOrder(errs *errorList, value float64) int {
	n := int(value)
	if float64(n) != value {
		errs.add("display_order", "Display order must be an integer")
		return 0
	}
	if n < 0 || n > 9999 {
		errs.add("display_order", "Display order must be between 0 and 9999")
	}
	return n
}

// formatLimit renders large limits with a thousands separator, matching the
// wording of the long description message.
func formatLimit(n int) string {
	s := strconv.Itoa(n)
	if n < 10000 {
		return s
	}
	return s[:len(s)-3] + "," + s[len(s)-3:]
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/portfolio-cms/portfolio-cms/internal/db/models"
)

// projectColumns is the fixed column order used by every statement this
// repository generates. Mutations list assignments in this same order so
// generated SQL and parameter lists are deterministic.
const projectColumns = `id, name, short_description, long_description, url, github_url, case_study_url, thumbnail, images, tags, status, is_featured, display_order, created_at, updated_at`

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(s rowScanner) (*models.Project, error) {
	row := &models.ProjectRow{}
	err := s.Scan(
		&row.ID,
		&row.Name,
		&row.ShortDescription,
		&row.LongDescription,
		&row.URL,
		&row.GithubURL,
		&row.CaseStudyURL,
		&row.Thumbnail,
		&row.Images,
		&row.Tags,
		&row.Status,
		&row.IsFeatured,
		&row.DisplayOrder,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return row.Decode()
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// FindAll retrieves every project, ordered by display order then recency.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY display_order ASC, created_at DESC
	`
	return r.queryProjects(ctx, query)
}

// FindFeatured retrieves featured projects. Featuring alone is not enough:
// the project must also be completed or actively maintained, so an archived
// project never surfaces here even with the flag still set.
func (r *ProjectRepository) FindFeatured(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE is_featured = 1 AND status IN ($1, $2)
		ORDER BY display_order ASC, created_at DESC
	`
	return r.queryProjects(ctx, query,
		string(models.StatusCompleted),
		string(models.StatusActivelyMaintained),
	)
}

// FindByID retrieves a project by ID. Returns (nil, nil) when no row matches.
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1
	`

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a validated project and returns the stored record, re-read
// by its assigned ID so the caller sees exactly what persisted.
func (r *ProjectRepository) Create(ctx context.Context, input *models.CreateProjectInput) (*models.Project, error) {
	tags, err := models.EncodeStrings(input.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	images, err := models.EncodeStrings(input.Images)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}

	now := time.Now()
	query := `
		INSERT INTO projects (name, short_description, long_description, url, github_url, case_study_url, thumbnail, images, tags, status, is_featured, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		input.Name,
		input.ShortDescription,
		input.LongDescription,
		nullIfEmpty(input.URL),
		nullIfEmpty(input.GithubURL),
		nullIfEmpty(input.CaseStudyURL),
		nullIfEmpty(input.Thumbnail),
		images,
		tags.String,
		string(input.Status),
		models.BoolToInt(input.IsFeatured),
		input.DisplayOrder,
		now,
		now,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// Update applies a partial update. Only fields present in the patch generate
// assignments, in the fixed column order; an empty patch performs no write at
// all and returns the record untouched, timestamp included. Returns (nil, nil)
// when the ID does not exist.
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch *models.ProjectPatch) (*models.Project, error) {
	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.ShortDescription != nil {
		set("short_description", *patch.ShortDescription)
	}
	if patch.LongDescription != nil {
		set("long_description", *patch.LongDescription)
	}
	if patch.URL != nil {
		set("url", nullIfEmpty(patch.URL))
	}
	if patch.GithubURL != nil {
		set("github_url", nullIfEmpty(patch.GithubURL))
	}
	if patch.CaseStudyURL != nil {
		set("case_study_url", nullIfEmpty(patch.CaseStudyURL))
	}
	if patch.Thumbnail != nil {
		set("thumbnail", nullIfEmpty(patch.Thumbnail))
	}
	if patch.Images != nil {
		images, err := models.EncodeStrings(*patch.Images)
		if err != nil {
			return nil, fmt.Errorf("encode images: %w", err)
		}
		set("images", images)
	}
	if patch.Tags != nil {
		tags, err := models.EncodeStrings(*patch.Tags)
		if err != nil {
			return nil, fmt.Errorf("encode tags: %w", err)
		}
		set("tags", tags.String)
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.IsFeatured != nil {
		set("is_featured", models.BoolToInt(*patch.IsFeatured))
	}
	if patch.DisplayOrder != nil {
		set("display_order", *patch.DisplayOrder)
	}

	set("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Delete removes a project by ID. Idempotent: the bool reports whether a row
// actually existed.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// nullIfEmpty maps an absent or empty optional string to SQL NULL. An empty
// string in a patch means "clear this column", never "store empty text".
func nullIfEmpty(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

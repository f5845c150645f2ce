package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/redmonkez12/courses-api/internal/database"
	"github.com/redmonkez12/courses-api/internal/user"
)

var ErrNotFound = errors.New("course not found")

// Repository handles course data persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func withOwner(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Relation("Owner")
}

// List returns every course with its owner, ordered by id.
func (r *Repository) List(ctx context.Context) ([]*Course, error) {
	var rows []database.Course
	err := r.db.NewSelect().
		Model(&rows).
		Apply(withOwner).
		Order("c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]*Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, mapDBCourseToModel(&rows[i]))
	}
	return courses, nil
}

// GetByID retrieves a course and its owner
func (r *Repository) GetByID(ctx context.Context, id int64) (*Course, error) {
	row := new(database.Course)
	err := r.db.NewSelect().
		Model(row).
		Apply(withOwner).
		Where("c.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return mapDBCourseToModel(row), nil
}

// Create inserts a course owned by ownerID.
func (r *Repository) Create(ctx context.Context, ownerID int64, title, description string, estimatedTime, materialsNeeded *string) (*Course, error) {
	row := &database.Course{
		Title:           title,
		Description:     description,
		EstimatedTime:   estimatedTime,
		MaterialsNeeded: materialsNeeded,
		UserID:          ownerID,
	}

	_, err := r.db.NewInsert().
		Model(row).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return mapDBCourseToModel(row), nil
}

// Update writes the mutable columns of c. The owner is never changed.
func (r *Repository) Update(ctx context.Context, c *Course) error {
	row := &database.Course{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UpdatedAt:       time.Now().UTC(),
	}

	res, err := r.db.NewUpdate().
		Model(row).
		Column("title", "description", "estimated_time", "materials_needed", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	return expectRow(res)
}

// Delete removes the course with the given id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model(&database.Course{ID: id}).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	return expectRow(res)
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func mapDBCourseToModel(row *database.Course) *Course {
	c := &Course{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		EstimatedTime:   row.EstimatedTime,
		MaterialsNeeded: row.MaterialsNeeded,
		UserID:          row.UserID,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.Owner != nil {
		c.Owner = &user.Profile{
			ID:           row.Owner.ID,
			FirstName:    row.Owner.FirstName,
			LastName:     row.Owner.LastName,
			EmailAddress: row.Owner.EmailAddress,
		}
	}
	return c
}

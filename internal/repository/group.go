package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/plumeworks/plume/internal/database"
	"github.com/plumeworks/plume/internal/model"
)

// GroupRepository handles group data access
type GroupRepository struct {
	db database.Database
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db database.Database) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group. Slug uniqueness is enforced by the unique
// index on post_group.slug, so concurrent creates with the same slug cannot
// both succeed.
func (r *GroupRepository) Create(ctx context.Context, group *model.Group) error {
	query := `
		CREATE post_group CONTENT {
			title: $title,
			slug: $slug,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"title":       group.Title,
		"slug":        group.Slug,
		"description": nilIfEmpty(group.Description),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: group slug already exists", database.ErrDuplicate)
		}
		return err
	}

	records := rows(result)
	if len(records) == 0 {
		return fmt.Errorf("%w: create returned no record", database.ErrQuery)
	}

	created := parseGroup(records[0])
	group.ID = created.ID
	group.CreatedOn = created.CreatedOn
	return nil
}

// GetBySlug retrieves a group by its slug. Returns (nil, nil) when no group
// carries the slug.
func (r *GroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	query := `SELECT * FROM post_group WHERE slug = $slug LIMIT 1`
	vars := map[string]interface{}{"slug": slug}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data := row(result)
	if data == nil {
		return nil, nil
	}
	return parseGroup(data), nil
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*model.Group, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data := row(result)
	if data == nil {
		return nil, nil
	}
	return parseGroup(data), nil
}

// Delete removes a group. Posts filed under it survive with their group
// reference cleared; both statements run in one atomic batch so no reader
// sees a post pointing at a vanished group.
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`UPDATE post SET group = NONE WHERE group = type::record($group_id)`, map[string]interface{}{
		"group_id": id,
	})
	batch.Add(`DELETE type::record($group_id)`, nil)
	return batch.Execute(ctx, r.db)
}

func parseGroup(data map[string]interface{}) *model.Group {
	return &model.Group{
		ID:          recordID(data["id"]),
		Title:       getString(data, "title"),
		Slug:        getString(data, "slug"),
		Description: getString(data, "description"),
		CreatedOn:   getTime(data, "created_on"),
	}
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

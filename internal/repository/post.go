package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/plumeworks/plume/internal/database"
	"github.com/plumeworks/plume/internal/model"
)

// PostRepository handles post data access
type PostRepository struct {
	db database.Database
}

// NewPostRepository creates a new post repository
func NewPostRepository(db database.Database) *PostRepository {
	return &PostRepository{db: db}
}

// Create persists a new post. The publication date is assigned by the
// database at write time; author and group are stored as record links.
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		CREATE post CONTENT {
			text: $text,
			author: type::record($author_id),
			group: IF $group_id IS NOT NULL THEN type::record($group_id) ELSE NONE END,
			pub_date: time::now()
		}
	`
	vars := map[string]interface{}{
		"text":      post.Text,
		"author_id": post.AuthorID,
		"group_id":  nilIfEmptyPtr(post.GroupID),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := rows(result)
	if len(records) == 0 {
		return fmt.Errorf("%w: create returned no record", database.ErrQuery)
	}

	created := parsePost(records[0])
	post.ID = created.ID
	post.PubDate = created.PubDate
	return nil
}

// GetByID retrieves a post by ID. Returns (nil, nil) when the post does not
// exist.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
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
	return parsePost(data), nil
}

// Update overwrites a post's text and group assignment. Author and
// publication date are deliberately not part of the statement. Returns
// (nil, nil) when the post does not exist.
func (r *PostRepository) Update(ctx context.Context, id string, text string, groupID *string) (*model.Post, error) {
	query := `
		UPDATE type::record($id) SET
			text = $text,
			group = IF $group_id IS NOT NULL THEN type::record($group_id) ELSE NONE END
	`
	vars := map[string]interface{}{
		"id":       id,
		"text":     text,
		"group_id": nilIfEmptyPtr(groupID),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := rows(result)
	if len(records) == 0 {
		return nil, nil
	}
	return parsePost(records[0]), nil
}

// List returns one window of posts matching the scope, in the given order.
// The newest-first order is the store-wide default; ties on pub_date break
// on id so consecutive pages never shuffle.
func (r *PostRepository) List(ctx context.Context, scope model.PostScope, order model.PostOrder, offset, limit int) ([]*model.Post, error) {
	where, vars := scopeClause(scope)
	vars["limit"] = limit
	vars["start"] = offset

	orderBy := "ORDER BY pub_date DESC, id DESC"
	if order != "" && order != model.OrderNewestFirst {
		return nil, fmt.Errorf("%w: unknown post order %q", database.ErrQuery, order)
	}

	query := fmt.Sprintf(`SELECT * FROM post %s %s LIMIT $limit START $start`, where, orderBy)

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := rows(result)
	posts := make([]*model.Post, 0, len(records))
	for _, data := range records {
		posts = append(posts, parsePost(data))
	}
	return posts, nil
}

// Count returns the total number of posts matching the scope, independent
// of any page window.
func (r *PostRepository) Count(ctx context.Context, scope model.PostScope) (int, error) {
	where, vars := scopeClause(scope)
	query := fmt.Sprintf(`SELECT count() AS count FROM post %s GROUP ALL`, where)

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	data := row(result)
	if data == nil {
		return 0, nil
	}
	return countValue(data["count"]), nil
}

// scopeClause builds the WHERE clause for a post scope
func scopeClause(scope model.PostScope) (string, map[string]interface{}) {
	vars := make(map[string]interface{})
	switch {
	case scope.GroupID != "":
		vars["scope_group"] = scope.GroupID
		return "WHERE group = type::record($scope_group)", vars
	case scope.AuthorID != "":
		vars["scope_author"] = scope.AuthorID
		return "WHERE author = type::record($scope_author)", vars
	default:
		return "", vars
	}
}

func parsePost(data map[string]interface{}) *model.Post {
	post := &model.Post{
		ID:       recordID(data["id"]),
		Text:     getString(data, "text"),
		PubDate:  getTime(data, "pub_date"),
		AuthorID: recordID(data["author"]),
	}
	if group := recordID(data["group"]); group != "" {
		post.GroupID = &group
	}
	return post
}

func nilIfEmptyPtr(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/plumeworks/plume/internal/database"
	"github.com/plumeworks/plume/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user account. Username and email carry unique
// indexes; a collision on either surfaces as database.ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	role := user.Role
	if role == "" {
		role = model.UserRoleUser
	}

	query := `
		CREATE user CONTENT {
			username: $username,
			email: $email,
			hash: $hash,
			firstname: IF $firstname IS NOT NULL THEN $firstname ELSE NONE END,
			lastname: IF $lastname IS NOT NULL THEN $lastname ELSE NONE END,
			role: $role,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"username":  user.Username,
		"email":     user.Email,
		"hash":      derefOrNil(user.Hash),
		"firstname": derefOrNil(user.Firstname),
		"lastname":  derefOrNil(user.Lastname),
		"role":      string(role),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username or email already taken", database.ErrDuplicate)
		}
		return err
	}

	records := rows(result)
	if len(records) == 0 {
		return fmt.Errorf("%w: create returned no record", database.ErrQuery)
	}

	created := parseUser(records[0])
	user.ID = created.ID
	user.Role = role
	user.CreatedOn = created.CreatedOn
	user.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when no such user
// exists.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
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
	return parseUser(data), nil
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when no
// such user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

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
	return parseUser(data), nil
}

func parseUser(data map[string]interface{}) *model.User {
	return &model.User{
		ID:        recordID(data["id"]),
		Username:  getString(data, "username"),
		Email:     getString(data, "email"),
		Hash:      getStringPtr(data, "hash"),
		Firstname: getStringPtr(data, "firstname"),
		Lastname:  getStringPtr(data, "lastname"),
		Role:      model.UserRole(getString(data, "role")),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
}

func derefOrNil(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

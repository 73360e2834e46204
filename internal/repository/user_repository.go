package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"postboard/internal/models"
)

var userColumns = []string{"id", "name", "mobile_number", "address", "post_count"}

type userRepository struct {
	db  sqlx.ExtContext
	sb  sq.StatementBuilderType
	obs *telemetry
}

// NewUserRepository accepts either *sqlx.DB or *sqlx.Tx.
func NewUserRepository(db sqlx.ExtContext, opts ...Option) UserRepository {
	return newUserRepository(db, newTelemetry(opts))
}

func newUserRepository(db sqlx.ExtContext, obs *telemetry) *userRepository {
	return &userRepository{db: db, sb: statementBuilder(db.DriverName()), obs: obs}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (err error) {
	ctx, done := r.obs.observe(ctx, "users.create")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Insert("users").
		Columns("name", "mobile_number", "address").
		Values(user.Name, user.MobileNumber, user.Address).
		Suffix("RETURNING id, post_count").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user insert: %w", err)
	}

	err = r.db.QueryRowxContext(ctx, query, args...).Scan(&user.ID, &user.PostCount)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", models.ErrDuplicateMobile, user.MobileNumber)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (_ *models.User, err error) {
	ctx, done := r.obs.observe(ctx, "users.get")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	var user models.User
	err = sqlx.GetContext(ctx, r.db, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", models.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUsers(ctx context.Context) (_ []models.User, err error) {
	ctx, done := r.obs.observe(ctx, "users.list")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Select(userColumns...).
		From("users").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build users query: %w", err)
	}

	users := []models.User{}
	if err = sqlx.SelectContext(ctx, r.db, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// DeleteUser removes the user; its posts go with it through ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) (err error) {
	ctx, done := r.obs.observe(ctx, "users.delete")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Delete("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user delete: %w", err)
	}

	rowsAffected, err := execAffected(ctx, r.db, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", models.ErrUserNotFound, userID)
	}

	return nil
}

func (r *userRepository) IncrementPostCount(ctx context.Context, userID int64) (err error) {
	ctx, done := r.obs.observe(ctx, "users.increment_post_count")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Update("users").
		Set("post_count", sq.Expr("post_count + 1")).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post count update: %w", err)
	}

	rowsAffected, err := execAffected(ctx, r.db, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment post count: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", models.ErrUserNotFound, userID)
	}

	return nil
}

// DecrementPostCount never takes the counter below zero. Zero affected rows
// means the user is gone and is reported as ErrPostCountUpdate.
func (r *userRepository) DecrementPostCount(ctx context.Context, userID int64) (err error) {
	ctx, done := r.obs.observe(ctx, "users.decrement_post_count")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Update("users").
		Set("post_count", sq.Expr("CASE WHEN post_count > 0 THEN post_count - 1 ELSE 0 END")).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post count update: %w", err)
	}

	rowsAffected, err := execAffected(ctx, r.db, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement post count: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", models.ErrPostCountUpdate, userID)
	}

	return nil
}

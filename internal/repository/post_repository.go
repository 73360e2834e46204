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

var postColumns = []string{"id", "title", "description", "user_id", "images"}

type PostRepositoryImpl struct {
	DB  sqlx.ExtContext
	sb  sq.StatementBuilderType
	obs *telemetry
}

// NewPostRepository accepts either *sqlx.DB or *sqlx.Tx.
func NewPostRepository(db sqlx.ExtContext, opts ...Option) *PostRepositoryImpl {
	return newPostRepository(db, newTelemetry(opts))
}

func newPostRepository(db sqlx.ExtContext, obs *telemetry) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db, sb: statementBuilder(db.DriverName()), obs: obs}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) (err error) {
	ctx, done := r.obs.observe(ctx, "posts.create")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Insert("posts").
		Columns("title", "description", "user_id", "images").
		Values(post.Title, post.Description, post.UserID, post.Images).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post insert: %w", err)
	}

	if err = r.DB.QueryRowxContext(ctx, query, args...).Scan(&post.ID); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetByIDForUser only finds the post when it belongs to userID.
func (r *PostRepositoryImpl) GetByIDForUser(ctx context.Context, postID, userID int64) (_ *models.Post, err error) {
	ctx, done := r.obs.observe(ctx, "posts.get")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"id": postID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build post query: %w", err)
	}

	var post models.Post
	err = sqlx.GetContext(ctx, r.DB, &post, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: post %d of user %d", models.ErrPostNotFound, postID, userID)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (_ []models.Post, err error) {
	ctx, done := r.obs.observe(ctx, "posts.list_by_user")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build posts query: %w", err)
	}

	posts := []models.Post{}
	if err = sqlx.SelectContext(ctx, r.DB, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get posts of user %d: %w", userID, err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) (_ []models.Post, err error) {
	ctx, done := r.obs.observe(ctx, "posts.list")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Select(postColumns...).
		From("posts").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build posts query: %w", err)
	}

	posts := []models.Post{}
	if err = sqlx.SelectContext(ctx, r.DB, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) (err error) {
	ctx, done := r.obs.observe(ctx, "posts.update")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Update("posts").
		Set("title", post.Title).
		Set("description", post.Description).
		Set("images", post.Images).
		Where(sq.Eq{"id": post.ID}).
		Where(sq.Eq{"user_id": post.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post update: %w", err)
	}

	rowsAffected, err := execAffected(ctx, r.DB, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: post %d of user %d", models.ErrPostNotFound, post.ID, post.UserID)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID, userID int64) (err error) {
	ctx, done := r.obs.observe(ctx, "posts.delete")
	defer func() { done(err) }()

	query, args, err := r.sb.
		Delete("posts").
		Where(sq.Eq{"id": postID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post delete: %w", err)
	}

	rowsAffected, err := execAffected(ctx, r.DB, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: post %d of user %d", models.ErrPostNotFound, postID, userID)
	}

	return nil
}

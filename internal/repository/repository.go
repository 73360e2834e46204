package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"postboard/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	IncrementPostCount(ctx context.Context, userID int64) error
	DecrementPostCount(ctx context.Context, userID int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByIDForUser(ctx context.Context, postID, userID int64) (*models.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID, userID int64) error
}

// TxManager runs fn with repositories bound to a single transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(users UserRepository, posts PostRepository) error) error
}

type Repository struct {
	User UserRepository
	Post PostRepository
	Tx   TxManager
}

func NewRepository(db *sqlx.DB, opts ...Option) *Repository {
	obs := newTelemetry(opts)

	return &Repository{
		User: newUserRepository(db, obs),
		Post: newPostRepository(db, obs),
		Tx:   &txManager{db: db, obs: obs},
	}
}

type CreateUserRequest struct {
	Name         string  `json:"name"`
	MobileNumber string  `json:"mobile_number"`
	Address      *string `json:"address"`
}

type CreatePostRequest struct {
	UserID      int64    `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// UpdatePostRequest is a full replacement of the editable post fields.
// Nil Title or Description means the client sent null or omitted it.
type UpdatePostRequest struct {
	UserID      int64         `json:"user_id"`
	PostID      int64         `json:"post_id"`
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Images      models.Images `json:"images"`
}

// statementBuilder picks the placeholder format of the driver behind db.
func statementBuilder(driverName string) sq.StatementBuilderType {
	switch driverName {
	case "postgres", "pgx":
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	default:
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
}

type txManager struct {
	db  *sqlx.DB
	obs *telemetry
}

func NewTxManager(db *sqlx.DB, opts ...Option) TxManager {
	return &txManager{db: db, obs: newTelemetry(opts)}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(users UserRepository, posts PostRepository) error) (err error) {
	ctx, done := m.obs.observe(ctx, "tx")
	defer func() { done(err) }()

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(newUserRepository(tx, m.obs), newPostRepository(tx, m.obs)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// execAffected runs a mutation and reports how many rows it touched.
func execAffected(ctx context.Context, db sqlx.ExecerContext, query string, args ...any) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}

	return rowsAffected, nil
}

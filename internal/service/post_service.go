package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type PostService interface {
	GetPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error
	DeletePost(ctx context.Context, userID, postID int64) error
}

type postService struct {
	postRepo repository.PostRepository
	tx       repository.TxManager
	log      *zap.Logger
}

func NewPostService(postRepo repository.PostRepository, tx repository.TxManager, log *zap.Logger) PostService {
	return &postService{
		postRepo: postRepo,
		tx:       tx,
		log:      log,
	}
}

// GetPosts reports an empty table as ErrNoPosts.
func (p *postService) GetPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return nil, models.ErrNoPosts
	}

	return posts, nil
}

// CreatePost inserts the post and bumps the owner's post_count in one transaction.
func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, models.ErrInvalidPost
	}

	images, err := normalizeImages(req.Images)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Images:      images,
	}

	err = p.tx.WithinTx(ctx, func(users repository.UserRepository, posts repository.PostRepository) error {
		if _, err := users.GetUserByID(ctx, req.UserID); err != nil {
			return err
		}

		if err := posts.Create(ctx, post); err != nil {
			return err
		}

		return users.IncrementPostCount(ctx, req.UserID)
	})
	if err != nil {
		return nil, err
	}

	p.log.Info("post created",
		zap.Int64("post_id", post.ID),
		zap.Int64("user_id", post.UserID))

	return post, nil
}

// UpdatePost replaces title, description and images of a post owned by
// req.UserID. A null title or description fails with ErrUpdateFailed and
// leaves the row untouched.
func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error {
	post, err := p.postRepo.GetByIDForUser(ctx, req.PostID, req.UserID)
	if err != nil {
		return err
	}

	if req.Title == nil || req.Description == nil {
		return fmt.Errorf("%w: title and description must not be null", models.ErrUpdateFailed)
	}

	post.Title = *req.Title
	post.Description = *req.Description
	post.Images = models.ParseImages(req.Images.String())

	if err := p.postRepo.Update(ctx, post); err != nil {
		return fmt.Errorf("%w: %w", models.ErrUpdateFailed, err)
	}

	p.log.Info("post updated",
		zap.Int64("post_id", post.ID),
		zap.Int64("user_id", post.UserID))

	return nil
}

// DeletePost removes the post and decrements the owner's post_count in one transaction.
func (p *postService) DeletePost(ctx context.Context, userID, postID int64) error {
	err := p.tx.WithinTx(ctx, func(users repository.UserRepository, posts repository.PostRepository) error {
		if _, err := posts.GetByIDForUser(ctx, postID, userID); err != nil {
			return err
		}

		if err := posts.Delete(ctx, postID, userID); err != nil {
			return err
		}

		return users.DecrementPostCount(ctx, userID)
	})
	if err != nil {
		return err
	}

	p.log.Info("post deleted",
		zap.Int64("post_id", postID),
		zap.Int64("user_id", userID))

	return nil
}

// normalizeImages trims every entry. Blank entries and entries holding the
// column separator are rejected since they would not read back unchanged.
func normalizeImages(images []string) (models.Images, error) {
	if len(images) == 0 {
		return nil, models.ErrInvalidPost
	}

	out := make(models.Images, 0, len(images))
	for _, image := range images {
		image = strings.TrimSpace(image)
		if image == "" || strings.Contains(image, ",") {
			return nil, models.ErrInvalidPost
		}
		out = append(out, image)
	}

	return out, nil
}

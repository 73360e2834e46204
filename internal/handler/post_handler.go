package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"postboard/internal/models"
	"postboard/internal/repository"
)

const invalidPostData = "Invalid post data. Title, description, and images are required."

type createPostBody struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Description string   `json:"description" validate:"required,notblank"`
	Images      []string `json:"images" validate:"required,min=1,dive,required,notblank,excludesall=0x2C"`
}

// editPostBody keeps pointers so that an explicit null is distinguishable.
type editPostBody struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Images      models.Images `json:"images"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetPosts(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrNoPosts) {
			WriteMessage(w, "No posts found.", http.StatusNotFound)
			return
		}
		h.Log.Error("failed to retrieve posts", zap.Error(err))
		WriteError(w, "An error occurred while retrieving posts.", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		WriteError(w, "User not found", http.StatusNotFound)
		return
	}

	var req createPostBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, invalidPostData, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, invalidPostData, http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreatePostRequest{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	}

	if _, err := h.PostService.CreatePost(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			WriteError(w, "User not found", http.StatusNotFound)
		case errors.Is(err, models.ErrInvalidPost):
			WriteError(w, invalidPostData, http.StatusBadRequest)
		default:
			h.Log.Error("failed to create post", zap.Int64("user_id", userID), zap.Error(err))
			WriteError(w, "Failed to create post", http.StatusInternalServerError)
		}
		return
	}

	WriteMessage(w, "Post created successfully", http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, errUser := pathID(r, "userId")
	postID, errPost := pathID(r, "postId")
	if errUser != nil || errPost != nil {
		WriteError(w, "Post not found for this user", http.StatusNotFound)
		return
	}

	var req editPostBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdatePostRequest{
		UserID:      userID,
		PostID:      postID,
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	}

	if err := h.PostService.UpdatePost(r.Context(), serviceReq); err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			WriteError(w, "Post not found for this user", http.StatusNotFound)
			return
		}
		h.Log.Error("failed to update post",
			zap.Int64("user_id", userID),
			zap.Int64("post_id", postID),
			zap.Error(err))
		WriteError(w, "Failed to update the post", http.StatusInternalServerError)
		return
	}

	WriteMessage(w, "Post updated successfully!", http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, errUser := pathID(r, "userId")
	postID, errPost := pathID(r, "postId")
	if errUser != nil || errPost != nil {
		WriteError(w, "Post not found or does not belong to the user.", http.StatusNotFound)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, models.ErrPostNotFound):
			WriteError(w, "Post not found or does not belong to the user.", http.StatusNotFound)
		case errors.Is(err, models.ErrPostCountUpdate):
			h.Log.Error("post count out of sync", zap.Int64("user_id", userID), zap.Error(err))
			WriteError(w, "Failed to update user post count.", http.StatusInternalServerError)
		default:
			h.Log.Error("failed to delete post",
				zap.Int64("user_id", userID),
				zap.Int64("post_id", postID),
				zap.Error(err))
			WriteError(w, "An error occurred while deleting the post.", http.StatusInternalServerError)
		}
		return
	}

	WriteMessage(w, "Post deleted successfully.", http.StatusOK)
}

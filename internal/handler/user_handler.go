package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"postboard/internal/models"
)

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.GetUsers(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrNoUsers) {
			WriteMessage(w, "No users found.", http.StatusNotFound)
			return
		}
		h.Log.Error("failed to retrieve users", zap.Error(err))
		WriteError(w, "An error occurred while retrieving users.", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}

// GetUserPosts answers an empty JSON array when the user has no posts.
func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		WriteMessage(w, "User not found", http.StatusNotFound)
		return
	}

	result, err := h.UserService.GetUserPosts(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			WriteMessage(w, "User not found", http.StatusNotFound)
			return
		}
		h.Log.Error("failed to fetch user posts", zap.Int64("user_id", userID), zap.Error(err))
		WriteMessage(w, "An error occurred while fetching posts.", http.StatusInternalServerError)
		return
	}

	if len(result.Posts) == 0 {
		WriteJSON(w, []models.Post{}, http.StatusOK)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		WriteError(w, "User not found", http.StatusNotFound)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			WriteError(w, "User not found", http.StatusNotFound)
			return
		}
		h.Log.Error("failed to delete user", zap.Int64("user_id", userID), zap.Error(err))
		WriteError(w, "An error occurred while deleting the user.", http.StatusInternalServerError)
		return
	}

	WriteMessage(w, "User deleted successfully.", http.StatusOK)
}

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func (h *Handlers) Routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/users", h.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/users-posts/{id}", h.GetUserPosts).Methods(http.MethodGet)
	router.HandleFunc("/delete-user/{userId}", h.DeleteUser).Methods(http.MethodDelete)

	router.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/create-post/{userId}", h.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/edit-post/{userId}/{postId}", h.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/delete-post/{userId}/{postId}", h.DeletePost).Methods(http.MethodDelete)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Route not found", http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return router
}

type HealthResponse struct {
	Status      string `json:"status"`
	CountTables int    `json:"countTables"`
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		h.Log.Error("health check failed", zap.Error(err))
		WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	count, err := h.DB.CountTables(r.Context())
	if err != nil {
		h.Log.Error("failed to count tables", zap.Error(err))
		WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok", CountTables: count}, http.StatusOK)
}

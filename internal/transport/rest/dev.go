package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/circulation-backend/internal/service/user"
)

type devUserService interface {
	SeedDevUsers(ctx context.Context) ([]user.SeedResult, error)
}

// DevHandler serves development-only endpoints. Mounted only when
// server.dev_endpoints is enabled.
type DevHandler struct {
	svc devUserService
	log *slog.Logger
}

// NewDevHandler creates a DevHandler.
func NewDevHandler(svc devUserService, logger *slog.Logger) *DevHandler {
	return &DevHandler{svc: svc, log: logger.With("handler", "dev")}
}

type devUserResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Created bool   `json:"created"`
}

// CreateUsers handles POST /dev/create-user.
func (h *DevHandler) CreateUsers(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.SeedDevUsers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	users := make([]devUserResponse, 0, len(results))
	for _, res := range results {
		users = append(users, devUserResponse{
			ID:      res.User.ID,
			Email:   res.User.Email,
			Role:    res.User.Role.String(),
			Created: res.Created,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Users created!", "users": users})
}

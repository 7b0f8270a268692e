package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"rest-user-service/internal/usecase/user"
	apperrors "rest-user-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "rest-user-service/internal/domain/user"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user.
// A client-supplied id is ignored; the store assigns one.
type CreateUserRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Details *string `json:"details"`
}

// UpdateUserRequest represents the HTTP request body for updating a user
type UpdateUserRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Details *string `json:"details"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Details *string `json:"details"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Details: u.Details,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create user request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, "Invalid request body.")
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:    req.Name,
		Email:   req.Email,
		Details: req.Details,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/users/%d", resp.ID))
	c.JSON(http.StatusCreated, toUserResponse(resp))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(resp))
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update user request body", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, "Invalid request body.")
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Details: req.Details,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(resp))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id}); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := parseQueryInt(c, "page", domain.DefaultPage)
	pageSize := parseQueryInt(c, "pageSize", domain.DefaultPageSize)

	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	users := make([]UserResponse, len(resp))
	for i := range resp {
		users[i] = toUserResponse(&resp[i])
	}

	c.JSON(http.StatusOK, users)
}

// userID parses the :id path parameter. The external contract exposes only
// numeric ids, so an unparsable segment is reported as not-found rather
// than bad-request.
func (h *UserHandler) userID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("non-numeric user id", zap.String("id", idStr))
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// respondError translates usecase errors into HTTP responses. Validation
// failures surface their message verbatim as a 400, not-found becomes a bare
// 404, and anything else becomes a 500 carrying the message. The recovery
// middleware provides a second, outer boundary for panics that never reach
// this point.
func (h *UserHandler) respondError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, ve.Message)
		return
	}

	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		c.Status(http.StatusNotFound)
		return
	}

	h.log.Error("unexpected handler error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %s", err.Error()))
}

func parseQueryInt(c *gin.Context, name string, fallback int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

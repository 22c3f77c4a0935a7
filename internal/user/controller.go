package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "vendora/internal/errors"
	"vendora/internal/user/service"
)

type Controller struct {
	users  *service.UsersService
	logger *zap.Logger
}

func NewController(users *service.UsersService, logger *zap.Logger) *Controller {
	return &Controller{users: users, logger: logger}
}

func (c *Controller) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", c.HandleList)
	r.Post("/", c.HandleCreate)
	r.Get("/{id}", c.HandleGet)
	r.Put("/{id}", c.HandleUpdate)
	return r
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive *bool  `json:"isActive"`
}

func (req userRequest) toInput() service.UserInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return service.UserInput{Name: req.Name, Email: req.Email, Role: req.Role, IsActive: active}
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}

	user, err := c.users.Create(r.Context(), req.toInput())
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, toUserDTO(*user))
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := c.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toUserDTO(*user))
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.List(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toUserDTOs(users))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}

	user, err := c.users.Update(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toUserDTO(*user))
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "VALIDATION_ERROR", Message: ve.Message, Details: ve.Details,
		})
		return
	}
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: nf.Message})
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: "CONFLICT", Message: ce.Message})
		return
	}
	c.logger.Error("user request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: "INTERNAL_ERROR", Message: "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

package shop

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "vendora/internal/errors"
	"vendora/internal/shop/service"
)

type Controller struct {
	shops  *service.ShopsService
	logger *zap.Logger
}

func NewController(shops *service.ShopsService, logger *zap.Logger) *Controller {
	return &Controller{shops: shops, logger: logger}
}

func (c *Controller) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", c.HandleList)
	r.Post("/", c.HandleCreate)
	r.Get("/{id}", c.HandleGet)
	r.Put("/{id}", c.HandleUpdate)
	return r
}

type shopRequest struct {
	Name     string `json:"name"`
	OwnerID  string `json:"ownerId"`
	IsActive *bool  `json:"isActive"`
}

func (req shopRequest) toInput() service.ShopInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return service.ShopInput{Name: req.Name, OwnerID: req.OwnerID, IsActive: active}
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req shopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}

	shop, err := c.shops.Create(r.Context(), req.toInput())
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, toShopDTO(*shop))
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	shop, err := c.shops.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toShopDTO(*shop))
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	var ownerID *string
	if raw := r.URL.Query().Get("ownerId"); raw != "" {
		ownerID = &raw
	}

	shops, err := c.shops.List(r.Context(), ownerID)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toShopDTOs(shops))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req shopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}

	shop, err := c.shops.Update(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toShopDTO(*shop))
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
	c.logger.Error("shop request failed", zap.Error(err))
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

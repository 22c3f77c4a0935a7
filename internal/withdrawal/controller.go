package withdrawal

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"vendora/internal/domain"
	apperrors "vendora/internal/errors"
	"vendora/internal/withdrawal/service"
)

type Controller struct {
	withdrawals *service.WithdrawalService
	logger      *zap.Logger
}

func NewController(withdrawals *service.WithdrawalService, logger *zap.Logger) *Controller {
	return &Controller{withdrawals: withdrawals, logger: logger}
}

func (c *Controller) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", c.HandleList)
	r.Post("/", c.HandleRequest)
	r.Get("/{id}", c.HandleGet)
	r.Post("/{id}/status", c.HandleSettle)
	return r
}

type requestBody struct {
	ShopID string  `json:"shopId"`
	Amount float64 `json:"amount"`
	Note   *string `json:"note"`
}

func (c *Controller) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req requestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}

	withdrawal, err := c.withdrawals.Request(r.Context(), service.RequestInput{
		ShopID: req.ShopID,
		Amount: req.Amount,
		Note:   req.Note,
	})
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, toWithdrawalDTO(*withdrawal))
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	withdrawal, err := c.withdrawals.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toWithdrawalDTO(*withdrawal))
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	var shopID *string
	if raw := r.URL.Query().Get("shopId"); raw != "" {
		shopID = &raw
	}

	withdrawals, err := c.withdrawals.List(r.Context(), shopID)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toWithdrawalDTOs(withdrawals))
}

type settleBody struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

func (c *Controller) HandleSettle(w http.ResponseWriter, r *http.Request) {
	var req settleBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}

	status, ok := domain.ParseWithdrawalStatus(req.Status)
	if !ok {
		c.writeError(w, apperrors.NewValidationError("unknown withdrawal status"))
		return
	}

	withdrawal, err := c.withdrawals.Settle(r.Context(), chi.URLParam(r, "id"), status, req.Note)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toWithdrawalDTO(*withdrawal))
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
	c.logger.Error("withdrawal request failed", zap.Error(err))
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

package board

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"vendora/internal/domain"
	apperrors "vendora/internal/errors"
)

const dateLayout = "2006-01-02"

type Controller struct {
	service BoardService
	logger  *zap.Logger
}

// BoardService is what the HTTP layer needs from the board.
type BoardService interface {
	View(view domain.View, status domain.Status, filter FilterState, page, size int) (*Snapshot, error)
	ChangeStatus(ctx context.Context, view domain.View, id string, to domain.Status) (domain.Order, error)
}

func NewController(service BoardService, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

func (c *Controller) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{view}/orders/board", c.HandleBoard)
	r.Post("/{view}/orders/{id}/status", c.HandleChangeStatus)
	return r
}

type orderDTO struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customerName"`
	Origin       string        `json:"origin"`
	TotalAmount  float64       `json:"totalAmount"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	LineItems    []lineItemDTO `json:"lineItems,omitempty"`
}

type lineItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

type boardResponse struct {
	View     string         `json:"view"`
	Status   string         `json:"status"`
	Orders   []orderDTO     `json:"orders"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Total    int            `json:"total"`
	Pages    int            `json:"pages"`
	Counts   map[string]int `json:"counts"`
}

func (c *Controller) HandleBoard(w http.ResponseWriter, r *http.Request) {
	view, ok := domain.ParseView(chi.URLParam(r, "view"))
	if !ok {
		c.writeError(w, apperrors.NewValidationError("unknown board view"))
		return
	}

	q := r.URL.Query()

	status := domain.DefaultStatus
	if raw := q.Get("status"); raw != "" {
		status = domain.ParseStatus(raw)
	}

	filter := FilterState{
		Query:  q.Get("q"),
		Origin: OriginFilter(q.Get("origin")),
	}
	if filter.Origin != OriginAll && filter.Origin != OriginSalesRep && filter.Origin != OriginCustomer {
		c.writeError(w, apperrors.NewValidationError("origin must be sales-representative or customer"))
		return
	}

	for name, dst := range map[string]*time.Time{"from": &filter.From, "to": &filter.To} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.writeError(w, apperrors.NewValidationError(name+" must be a YYYY-MM-DD date"))
			return
		}
		*dst = t
	}

	page := 1
	if raw := q.Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			c.writeError(w, apperrors.NewValidationError("page must be a positive integer"))
			return
		}
		page = p
	}

	snap, err := c.service.View(view, status, filter, page, DefaultPageSize)
	if err != nil {
		c.writeError(w, err)
		return
	}

	resp := boardResponse{
		View:     string(snap.View),
		Status:   string(snap.Status),
		Orders:   make([]orderDTO, 0, len(snap.Orders)),
		Page:     snap.Page,
		PageSize: snap.PageSize,
		Total:    snap.Total,
		Pages:    snap.Pages,
		Counts:   make(map[string]int, len(snap.Counts)),
	}
	for _, o := range snap.Orders {
		resp.Orders = append(resp.Orders, toOrderDTO(o))
	}
	for st, n := range snap.Counts {
		resp.Counts[string(st)] = n
	}

	c.writeJSON(w, http.StatusOK, resp)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

func (c *Controller) HandleChangeStatus(w http.ResponseWriter, r *http.Request) {
	view, ok := domain.ParseView(chi.URLParam(r, "view"))
	if !ok {
		c.writeError(w, apperrors.NewValidationError("unknown board view"))
		return
	}
	id := chi.URLParam(r, "id")

	var req changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}
	if req.Status == "" {
		c.writeError(w, apperrors.NewValidationError("status is required"))
		return
	}
	target := domain.Status(req.Status)
	if !view.Contains(target) {
		c.writeError(w, apperrors.NewValidationError("unknown target status"))
		return
	}

	order, err := c.service.ChangeStatus(r.Context(), view, id, target)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderDTO(order))
}

func toOrderDTO(o domain.Order) orderDTO {
	dto := orderDTO{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Origin:       string(o.Origin),
		TotalAmount:  o.TotalAmount,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
	for _, item := range o.LineItems {
		dto.LineItems = append(dto.LineItems, lineItemDTO(item))
	}
	return dto
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
	if re, ok := apperrors.IsRemoteError(err); ok {
		c.writeJSON(w, http.StatusBadGateway, errorResponse{Error: "REMOTE_ERROR", Message: re.Message})
		return
	}
	c.logger.Error("board request failed", zap.Error(err))
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

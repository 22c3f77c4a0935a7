package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"vendora/internal/catalog/service"
	apperrors "vendora/internal/errors"
)

type Controller struct {
	products *service.ProductsService
	taxonomy *service.TaxonomyService
	logger   *zap.Logger
}

func NewController(products *service.ProductsService, taxonomy *service.TaxonomyService, logger *zap.Logger) *Controller {
	return &Controller{products: products, taxonomy: taxonomy, logger: logger}
}

func (c *Controller) ProductRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", c.HandleListProducts)
	r.Post("/", c.HandleCreateProduct)
	r.Get("/{id}", c.HandleGetProduct)
	r.Put("/{id}", c.HandleUpdateProduct)
	r.Delete("/{id}", c.HandleDeleteProduct)
	return r
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice"`
	Quantity    int      `json:"quantity"`
	ShopID      string   `json:"shopId"`
	CategoryID  *string  `json:"categoryId"`
	BrandID     *string  `json:"brandId"`
	TagIDs      []string `json:"tagIds"`
	IsActive    *bool    `json:"isActive"`
}

func (req productRequest) toInput() service.ProductInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		Quantity:    req.Quantity,
		ShopID:      req.ShopID,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		TagIDs:      req.TagIDs,
		IsActive:    active,
	}
}

type productListResponse struct {
	Products []ProductDTO `json:"products"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	Size     int          `json:"size"`
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}

	product, err := c.products.Create(r.Context(), req.toInput())
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, toProductDTO(*product))
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toProductDTO(*product))
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := service.ListProductsInput{Search: q.Get("q")}
	if shopID := q.Get("shopId"); shopID != "" {
		input.ShopID = &shopID
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.writeError(w, apperrors.NewValidationError("page must be a positive integer"))
			return
		}
		input.Page = page
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			c.writeError(w, apperrors.NewValidationError("size must be a positive integer"))
			return
		}
		input.Size = size
	}

	products, total, err := c.products.List(r.Context(), input)
	if err != nil {
		c.writeError(w, err)
		return
	}
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Size < 1 {
		input.Size = 15
	}

	c.writeJSON(w, http.StatusOK, productListResponse{
		Products: toProductDTOs(products),
		Total:    total,
		Page:     input.Page,
		Size:     input.Size,
	})
}

func (c *Controller) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return
	}

	product, err := c.products.Update(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toProductDTO(*product))
}

func (c *Controller) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := c.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
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
	c.logger.Error("catalog request failed", zap.Error(err))
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

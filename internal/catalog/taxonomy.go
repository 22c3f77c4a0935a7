package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vendora/internal/catalog/service"
	apperrors "vendora/internal/errors"
)

type termRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type categoryRequest struct {
	termRequest
	ParentID *string `json:"parentId"`
}

type attributeRequest struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func (c *Controller) CategoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		categories, err := c.taxonomy.ListCategories(r.Context())
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toCategoryDTOs(categories))
	})
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
			return
		}
		category, err := c.taxonomy.CreateCategory(r.Context(), service.CategoryInput{
			TermInput: service.TermInput{Name: req.Name, Slug: req.Slug},
			ParentID:  req.ParentID,
		})
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusCreated, toCategoryDTO(*category))
	})
	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		category, err := c.taxonomy.GetCategory(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toCategoryDTO(*category))
	})
	r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
			return
		}
		category, err := c.taxonomy.UpdateCategory(r.Context(), chi.URLParam(r, "id"), service.CategoryInput{
			TermInput: service.TermInput{Name: req.Name, Slug: req.Slug},
			ParentID:  req.ParentID,
		})
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toCategoryDTO(*category))
	})
	r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := c.taxonomy.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
			c.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func (c *Controller) TagRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		tags, err := c.taxonomy.ListTags(r.Context())
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toTagDTOs(tags))
	})
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		req, ok := c.decodeTerm(w, r)
		if !ok {
			return
		}
		tag, err := c.taxonomy.CreateTag(r.Context(), service.TermInput{Name: req.Name, Slug: req.Slug})
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusCreated, toTagDTO(*tag))
	})
	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		tag, err := c.taxonomy.GetTag(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toTagDTO(*tag))
	})
	r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		req, ok := c.decodeTerm(w, r)
		if !ok {
			return
		}
		tag, err := c.taxonomy.UpdateTag(r.Context(), chi.URLParam(r, "id"), service.TermInput{Name: req.Name, Slug: req.Slug})
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toTagDTO(*tag))
	})
	r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := c.taxonomy.DeleteTag(r.Context(), chi.URLParam(r, "id")); err != nil {
			c.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func (c *Controller) BrandRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		brands, err := c.taxonomy.ListBrands(r.Context())
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toBrandDTOs(brands))
	})
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		req, ok := c.decodeTerm(w, r)
		if !ok {
			return
		}
		brand, err := c.taxonomy.CreateBrand(r.Context(), service.TermInput{Name: req.Name, Slug: req.Slug})
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusCreated, toBrandDTO(*brand))
	})
	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		brand, err := c.taxonomy.GetBrand(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toBrandDTO(*brand))
	})
	r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		req, ok := c.decodeTerm(w, r)
		if !ok {
			return
		}
		brand, err := c.taxonomy.UpdateBrand(r.Context(), chi.URLParam(r, "id"), service.TermInput{Name: req.Name, Slug: req.Slug})
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toBrandDTO(*brand))
	})
	r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := c.taxonomy.DeleteBrand(r.Context(), chi.URLParam(r, "id")); err != nil {
			c.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func (c *Controller) AttributeRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		attributes, err := c.taxonomy.ListAttributes(r.Context())
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toAttributeDTOs(attributes))
	})
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req attributeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
			return
		}
		attribute, err := c.taxonomy.CreateAttribute(r.Context(), service.AttributeInput(req))
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusCreated, toAttributeDTO(*attribute))
	})
	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		attribute, err := c.taxonomy.GetAttribute(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toAttributeDTO(*attribute))
	})
	r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req attributeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
			return
		}
		attribute, err := c.taxonomy.UpdateAttribute(r.Context(), chi.URLParam(r, "id"), service.AttributeInput(req))
		if err != nil {
			c.writeError(w, err)
			return
		}
		c.writeJSON(w, http.StatusOK, toAttributeDTO(*attribute))
	})
	r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := c.taxonomy.DeleteAttribute(r.Context(), chi.URLParam(r, "id")); err != nil {
			c.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func (c *Controller) decodeTerm(w http.ResponseWriter, r *http.Request) (termRequest, bool) {
	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, apperrors.NewValidationError("request body must be valid JSON"))
		return termRequest{}, false
	}
	return req, true
}

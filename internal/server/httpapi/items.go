package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/gatormarket/internal/logging"
	"github.com/dmitrijs2005/gatormarket/internal/server/items"
	"github.com/dmitrijs2005/gatormarket/internal/server/users"
	"github.com/dmitrijs2005/gatormarket/internal/server/validation"
)

type ItemsHandler struct {
	items  *items.Service
	users  *users.Service
	logger logging.Logger
}

func NewItemsHandler(is *items.Service, us *users.Service, logger logging.Logger) *ItemsHandler {
	return &ItemsHandler{items: is, users: us, logger: logger}
}

func (h *ItemsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/active", h.ListActive)

	r.Group(func(r chi.Router) {
		r.Use(RequireUser(h.users))
		r.Post("/", h.Create)
		r.Put("/{itemID}/mark-sold", h.MarkSold)
		r.Delete("/{itemID}", h.Delete)
	})
	return r
}

func (h *ItemsHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	list, err := h.items.ListActive(r.Context())
	if err != nil {
		h.internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in items.CreateInput
	if verr := decodeJSON(r, &in); verr != nil {
		writeValidation(w, "body", verr)
		return
	}

	u, _ := UserFromContext(r.Context())
	it, err := h.items.Create(r.Context(), u, in)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			writeValidation(w, "body", verr)
		case errors.Is(err, items.ErrInvalidPrice):
			writeDetail(w, http.StatusBadRequest, "Price must be a positive number.")
		default:
			h.internal(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *ItemsHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.items.MarkSold, "Item marked as sold")
}

func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.items.Delete, "Item deleted successfully")
}

func (h *ItemsHandler) modify(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, actor *users.User, id int64) error, done string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		writeValidation(w, "path", validation.Single("item_id", "Input should be a valid integer", "int_parsing"))
		return
	}

	u, _ := UserFromContext(r.Context())
	switch err := op(r.Context(), u, id); {
	case err == nil:
		writeJSON(w, http.StatusOK, messageResponse{Message: done})
	case errors.Is(err, items.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, items.ErrForbidden):
		writeDetail(w, http.StatusForbidden, "You do not have permission to modify this item")
	default:
		h.internal(w, r, err)
	}
}

func (h *ItemsHandler) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeDetail(w, http.StatusInternalServerError, "Internal server error")
}

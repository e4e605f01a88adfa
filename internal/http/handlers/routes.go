package handlers

import (
	"net/http"
	"strconv"
	"time"

	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/http/middleware"
	"route-service-fleetsync/internal/logx"
)

// RouteHandler serves HTTP endpoints for route resources.
type RouteHandler struct {
	usecase routeUsecase
	logger  logx.Logger
	present presenter
}

// NewRouteHandler creates a RouteHandler. displayOffset shifts created_at
// and updated_at in responses.
func NewRouteHandler(logger logx.Logger, uc routeUsecase, displayOffset time.Duration) *RouteHandler {
	return &RouteHandler{usecase: uc, logger: logger, present: presenter{offset: displayOffset}}
}

// List handles GET /api/routes.
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.List(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to fetch routes")
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "", h.present.routes(list))
}

// ListActive handles GET /api/routes/active.
func (h *RouteHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.ListActive(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to fetch active routes")
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "", h.present.routes(list))
}

// Create handles POST /api/routes.
func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRouteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	in, err := req.toModel()
	if err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to create route")
		return
	}

	created, err := h.usecase.Create(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to create route")
		return
	}
	w.Header().Set("Location", "/api/routes/"+strconv.FormatInt(created.ID, 10))
	writeSuccess(h.logger, w, r, http.StatusCreated, "Route created successfully", h.present.route(*created))
}

// GetByID handles GET /api/routes/{id}.
func (h *RouteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	got, err := h.usecase.Get(r.Context(), id, middleware.PrincipalFrom(r.Context()))
	if err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to fetch route")
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "", h.present.route(*got))
}

// Update handles PUT /api/routes/{id}.
func (h *RouteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateRouteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	u, err := req.toModel(id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to update route")
		return
	}

	updated, err := h.usecase.Update(r.Context(), u)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to update route")
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "Route updated successfully", h.present.route(*updated))
}

// UpdateStatus handles PUT and POST /api/routes/{id}/status.
func (h *RouteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	updated, err := h.usecase.UpdateStatus(r.Context(), id, domain.RouteStatus(req.Status))
	if err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to update route status")
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "Route status updated successfully", h.present.route(*updated))
}

// Delete handles DELETE /api/routes/{id}.
func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.usecase.Delete(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err, "Failed to delete route")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

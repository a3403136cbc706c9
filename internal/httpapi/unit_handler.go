package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/beesaferoot/estate-catalog/internal/catalog"
	"github.com/beesaferoot/estate-catalog/internal/models"
)

type UnitHandler struct {
	svc      *catalog.Service
	validate *validator.Validate
	logger   *zap.Logger
}

func NewUnitHandler(svc *catalog.Service, validate *validator.Validate, logger *zap.Logger) *UnitHandler {
	return &UnitHandler{svc: svc, validate: validate, logger: logger}
}

func (h *UnitHandler) Register(r *mux.Router) {
	// Creation is addressed to the parent property.
	r.HandleFunc("/unit/{id}", h.create).Methods(http.MethodPost)
	r.HandleFunc("/unit", h.list).Methods(http.MethodGet)
	r.HandleFunc("/unit/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/unit/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/unit/{id}", h.delete).Methods(http.MethodDelete)
}

func (h *UnitHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createUnitRequest
	if !decodeBody(w, r, &req) || !validateRequest(w, h.validate, &req) {
		return
	}

	u, err := h.svc.CreateUnit(r.Context(), catalog.CreateUnitInput{
		Kind:          models.UnitKind(req.Type),
		URL:           req.URL,
		IsReady:       req.IsReady,
		DeliveryDate:  req.DeliveryDate,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFootage: req.SquareFootage,
		TotalPrice:    req.TotalPrice,
		PropertyID:    mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, h.logger, err, "property")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UnitHandler) list(w http.ResponseWriter, r *http.Request) {
	units, err := h.svc.ListUnits(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "unit")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": units})
}

func (h *UnitHandler) get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUnitWithParents(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, err, "unit")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": u})
}

func (h *UnitHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateUnitRequest
	if !decodeBody(w, r, &req) || !validateRequest(w, h.validate, &req) {
		return
	}

	var kind *models.UnitKind
	if req.Type != nil {
		k := models.UnitKind(*req.Type)
		kind = &k
	}

	u, err := h.svc.UpdateUnit(r.Context(), mux.Vars(r)["id"], catalog.UpdateUnitInput{
		Kind:          kind,
		URL:           req.URL,
		IsReady:       req.IsReady,
		DeliveryDate:  req.DeliveryDate,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFootage: req.SquareFootage,
		TotalPrice:    req.TotalPrice,
	})
	if err != nil {
		writeError(w, h.logger, err, "unit")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UnitHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteUnit(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, h.logger, err, "unit")
		return
	}
	writeMessage(w, http.StatusOK, "unit is deleted!")
}

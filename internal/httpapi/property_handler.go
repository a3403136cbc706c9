package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/beesaferoot/estate-catalog/internal/catalog"
)

type PropertyHandler struct {
	svc      *catalog.Service
	validate *validator.Validate
	logger   *zap.Logger
}

func NewPropertyHandler(svc *catalog.Service, validate *validator.Validate, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{svc: svc, validate: validate, logger: logger}
}

func (h *PropertyHandler) Register(r *mux.Router) {
	// Creation is addressed to the parent working area.
	r.HandleFunc("/property/{id}", h.create).Methods(http.MethodPost)
	r.HandleFunc("/property", h.list).Methods(http.MethodGet)
	r.HandleFunc("/property/{name}", h.getByName).Methods(http.MethodGet)
	r.HandleFunc("/property/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/property/{id}", h.delete).Methods(http.MethodDelete)
}

func (h *PropertyHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if !decodeBody(w, r, &req) || !validateRequest(w, h.validate, &req) {
		return
	}

	p, err := h.svc.CreateProperty(r.Context(), catalog.CreatePropertyInput{
		Name:                  req.Name,
		Owner:                 req.Owner,
		CoverURL:              req.CoverURL,
		DownPaymentPercentage: req.DownPaymentPercentage,
		NumberOfYears:         req.NumberOfYear,
		WorkingAreaID:         mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, h.logger, err, "workingArea")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PropertyHandler) list(w http.ResponseWriter, r *http.Request) {
	properties, err := h.svc.ListProperties(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "property")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": properties})
}

func (h *PropertyHandler) getByName(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPropertyByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, h.logger, err, "property")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": p})
}

func (h *PropertyHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updatePropertyRequest
	if !decodeBody(w, r, &req) || !validateRequest(w, h.validate, &req) {
		return
	}

	p, err := h.svc.UpdateProperty(r.Context(), mux.Vars(r)["id"], catalog.UpdatePropertyInput{
		Name:                  req.Name,
		Owner:                 req.Owner,
		CoverURL:              req.CoverURL,
		DownPaymentPercentage: req.DownPaymentPercentage,
		NumberOfYears:         req.NumberOfYear,
	})
	if err != nil {
		writeError(w, h.logger, err, "property")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PropertyHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProperty(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, h.logger, err, "property")
		return
	}
	writeMessage(w, http.StatusOK, "property is deleted!")
}

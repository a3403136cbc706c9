package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/beesaferoot/estate-catalog/internal/catalog"
)

type SupportHandler struct {
	svc      *catalog.Service
	validate *validator.Validate
	logger   *zap.Logger
}

func NewSupportHandler(svc *catalog.Service, validate *validator.Validate, logger *zap.Logger) *SupportHandler {
	return &SupportHandler{svc: svc, validate: validate, logger: logger}
}

// Support has no delete route: support records are never retired.
func (h *SupportHandler) Register(r *mux.Router) {
	r.HandleFunc("/support", h.create).Methods(http.MethodPost)
	r.HandleFunc("/support", h.list).Methods(http.MethodGet)
	r.HandleFunc("/support/{id}", h.update).Methods(http.MethodPut)
}

func (h *SupportHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createSupportRequest
	if !decodeBody(w, r, &req) || !validateRequest(w, h.validate, &req) {
		return
	}

	sup, err := h.svc.CreateSupport(r.Context(), catalog.CreateSupportInput{
		WhatsAppPhone: req.WhatsAppPhone,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
	})
	if err != nil {
		writeError(w, h.logger, err, "support")
		return
	}
	writeJSON(w, http.StatusCreated, sup)
}

func (h *SupportHandler) list(w http.ResponseWriter, r *http.Request) {
	supports, err := h.svc.ListSupports(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "support")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": supports})
}

func (h *SupportHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateSupportRequest
	if !decodeBody(w, r, &req) || !validateRequest(w, h.validate, &req) {
		return
	}

	sup, err := h.svc.UpdateSupport(r.Context(), mux.Vars(r)["id"], catalog.UpdateSupportInput{
		WhatsAppPhone: req.WhatsAppPhone,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
	})
	if err != nil {
		writeError(w, h.logger, err, "support")
		return
	}
	writeJSON(w, http.StatusOK, sup)
}

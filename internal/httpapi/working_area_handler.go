package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/beesaferoot/estate-catalog/internal/catalog"
)

type WorkingAreaHandler struct {
	svc      *catalog.Service
	validate *validator.Validate
	logger   *zap.Logger
}

func NewWorkingAreaHandler(svc *catalog.Service, validate *validator.Validate, logger *zap.Logger) *WorkingAreaHandler {
	return &WorkingAreaHandler{svc: svc, validate: validate, logger: logger}
}

func (h *WorkingAreaHandler) Register(r *mux.Router) {
	r.HandleFunc("/workingarea", h.create).Methods(http.MethodPost)
	r.HandleFunc("/workingarea", h.list).Methods(http.MethodGet)
	r.HandleFunc("/workingarea/{name}", h.getByName).Methods(http.MethodGet)
	r.HandleFunc("/workingarea/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/workingarea/{id}", h.delete).Methods(http.MethodDelete)
}

func (h *WorkingAreaHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createWorkingAreaRequest
	if !decodeBody(w, r, &req) || !validateRequest(w, h.validate, &req) {
		return
	}

	wa, err := h.svc.CreateWorkingArea(r.Context(), catalog.CreateWorkingAreaInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		writeError(w, h.logger, err, "workingArea")
		return
	}
	writeJSON(w, http.StatusCreated, wa)
}

func (h *WorkingAreaHandler) list(w http.ResponseWriter, r *http.Request) {
	areas, err := h.svc.ListWorkingAreas(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "workingArea")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": areas})
}

func (h *WorkingAreaHandler) getByName(w http.ResponseWriter, r *http.Request) {
	wa, err := h.svc.GetWorkingAreaByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, h.logger, err, "workingArea")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": wa})
}

func (h *WorkingAreaHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateWorkingAreaRequest
	if !decodeBody(w, r, &req) || !validateRequest(w, h.validate, &req) {
		return
	}

	wa, err := h.svc.UpdateWorkingArea(r.Context(), mux.Vars(r)["id"], catalog.UpdateWorkingAreaInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		writeError(w, h.logger, err, "workingArea")
		return
	}
	writeJSON(w, http.StatusOK, wa)
}

func (h *WorkingAreaHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteWorkingArea(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, h.logger, err, "workingArea")
		return
	}
	writeMessage(w, http.StatusOK, "workingArea is deleted!")
}

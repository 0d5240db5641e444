package http

import (
	"encoding/json"
	"net/http"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

// CatalogHandler exposes motorcycle, driver and plan lookups
type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type registerMotorcycleRequest struct {
	Year  int    `json:"year"`
	Model string `json:"model"`
	Plate string `json:"plate"`
}

func (h *CatalogHandler) RegisterMotorcycle(w http.ResponseWriter, r *http.Request) {
	var req registerMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Model == "" || req.Plate == "" {
		writeBadRequest(w, "model and plate are required")
		return
	}

	moto := &domain.Motorcycle{Year: req.Year, Model: req.Model, Plate: req.Plate}
	if err := h.svc.RegisterMotorcycle(r.Context(), moto); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, moto)
}

func (h *CatalogHandler) ListMotorcycles(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"
	motos, err := h.svc.ListMotorcycles(r.Context(), onlyAvailable)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, motos)
}

type registerDriverRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	LicenseNumber string `json:"license_number"`
	LicenseType   string `json:"license_type"`
}

func (h *CatalogHandler) RegisterDriver(w http.ResponseWriter, r *http.Request) {
	var req registerDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.LicenseNumber == "" {
		writeBadRequest(w, "name and license_number are required")
		return
	}

	driver := &domain.DeliveryDriver{
		Name:          req.Name,
		Email:         req.Email,
		LicenseNumber: req.LicenseNumber,
		LicenseType:   domain.LicenseType(req.LicenseType),
	}
	if err := h.svc.RegisterDriver(r.Context(), driver); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, driver)
}

func (h *CatalogHandler) GetDriver(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	driver, err := h.svc.GetDriver(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

func (h *CatalogHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.ListPlans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (h *CatalogHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	plan, err := h.svc.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

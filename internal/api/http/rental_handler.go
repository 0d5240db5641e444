package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/service"
)

const dateLayout = "2006-01-02"

var errInvalidDateRange = errors.New("start date must be in the future and end date after start date")

// RentalHandler exposes the rental lifecycle over HTTP
type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type createRentalRequest struct {
	DriverID     string `json:"driver_id"`
	MotorcycleID string `json:"motorcycle_id"`
	PlanID       string `json:"plan_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		writeBadRequest(w, "invalid driver_id")
		return
	}
	motoID, err := uuid.Parse(req.MotorcycleID)
	if err != nil {
		writeBadRequest(w, "invalid motorcycle_id")
		return
	}
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		writeBadRequest(w, "invalid plan_id")
		return
	}

	start, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
	if err != nil {
		writeBadRequest(w, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
	if err != nil {
		writeBadRequest(w, "invalid end_date, expected YYYY-MM-DD")
		return
	}

	// Date-range validation is this layer's responsibility; the engine
	// trusts its caller here.
	if !start.After(time.Now().UTC()) || !end.After(start) {
		writeError(w, errInvalidDateRange)
		return
	}

	rental, err := h.svc.CreateRental(r.Context(), driverID, motoID, planID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rental, err := h.svc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) GetRentalHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.GetRentalHistory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *RentalHandler) CompleteRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rental, err := h.svc.MarkCompleted(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) CancelRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rental, err := h.svc.CancelRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// QuoteRental returns the settlement for a hypothetical return date without
// touching the rental.
func (h *RentalHandler) QuoteRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	returnDateStr := r.URL.Query().Get("return_date")
	returnDate, err := time.ParseInLocation(dateLayout, returnDateStr, time.UTC)
	if err != nil {
		writeBadRequest(w, "invalid return_date, expected YYYY-MM-DD")
		return
	}

	settlement, err := h.svc.SimulateFinalPrice(r.Context(), id, returnDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settlement)
}

func (h *RentalHandler) DeleteDriverRentals(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteRentalsByDriver(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

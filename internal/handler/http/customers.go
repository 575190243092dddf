package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/utils"
	"github.com/apexglitch/crm/models"
)

// pathID parses the {id} route parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	customers, err := h.services.CustomerService.List(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing customers")
		writeError(w, "failed to fetch customers", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Msg("invalid customer id")
		writeError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	customer, err := h.services.CustomerService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Msg("error fetching customer")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var fields models.CustomerFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	customer, err := h.services.CustomerService.Create(r.Context(), fields)
	if err != nil {
		log.Err(err).Msg("error creating customer")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, customer, http.StatusCreated)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Msg("invalid customer id")
		writeError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	var fields models.CustomerFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	customer, err := h.services.CustomerService.Update(r.Context(), id, fields)
	if err != nil {
		log.Err(err).Msg("error updating customer")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Msg("invalid customer id")
		writeError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	if err := h.services.CustomerService.Delete(r.Context(), id); err != nil {
		log.Err(err).Msg("error deleting customer")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Customer deleted successfully"}, http.StatusOK)
}

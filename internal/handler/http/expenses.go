package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/internal/app"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var document models.ExpenseDocument
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		log.Err(err).Str("func", "*Handler.createExpense").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	clientID, _ := utils.GetClientIDFromContext(r.Context())

	if err := h.services.DocumentService.Insert(r.Context(), clientID, document); err != nil {
		log.Err(err).Str("func", "*Handler.createExpense").Str("id", document.ID).Msg("error inserting document")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var document models.ExpenseDocument
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		log.Err(err).Str("func", "*Handler.updateExpense").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	clientID, _ := utils.GetClientIDFromContext(r.Context())

	if err := h.services.DocumentService.Update(r.Context(), clientID, id, document); err != nil {
		log.Err(err).Str("func", "*Handler.updateExpense").Str("id", id).Msg("error updating document")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.DocumentService.Remove(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteExpense").Str("id", id).Msg("error removing document")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	document, err := h.services.DocumentService.FindByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getExpense").Str("id", id).Msg("error finding document")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, document, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getExpense").Msg("error writing response")
	}
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := filterFromQuery(r)
	documents, err := h.services.DocumentService.FindAll(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listExpenses").Msg("error listing documents")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	// an empty collection serializes as [], never null
	if documents == nil {
		documents = []models.ExpenseDocument{}
	}

	if _, err := utils.WriteJSON(w, documents, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listExpenses").Msg("error writing response")
	}
}

// filterFromQuery builds the listing filter from request query parameters:
// "category" narrows by category, "ids" is a comma-separated id list.
func filterFromQuery(r *http.Request) models.DocumentFilter {
	filter := models.DocumentFilter{
		Category: r.URL.Query().Get("category"),
	}

	if raw := r.URL.Query().Get("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				filter.IDs = append(filter.IDs, id)
			}
		}
	}

	return filter
}

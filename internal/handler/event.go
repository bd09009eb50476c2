package handler

import (
	"encoding/json"
	"net/http"

	"github.com/eventdeck/eventdeck-go/internal/model"
	"github.com/eventdeck/eventdeck-go/internal/service"
	"github.com/go-chi/chi/v5"
)

// EventHandler handles HTTP requests for the event store.
type EventHandler struct {
	events *service.EventStore
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events *service.EventStore) *EventHandler {
	return &EventHandler{events: events}
}

// HandleList handles GET /api/v1/events requests. The optional q, date and
// location query parameters narrow the result the way the browse view
// does.
func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := service.Filter{
		Text:     r.URL.Query().Get("q"),
		Date:     r.URL.Query().Get("date"),
		Location: r.URL.Query().Get("location"),
	}

	writeJSON(w, http.StatusOK, h.events.Search(filter))
}

// HandleMine handles GET /api/v1/events/mine requests, returning the
// current user's events.
func (h *EventHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.events.UserEvents())
}

// HandleGet handles GET /api/v1/events/{event_id} requests.
func (h *EventHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	event, ok := h.events.GetByID(eventID)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("event not found"))
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// HandleCreate handles POST /api/v1/events requests.
func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var input model.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	event, err := h.events.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// HandleUpdate handles PUT /api/v1/events/{event_id} requests. The body is
// a partial event; absent fields keep their stored values.
func (h *EventHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")
	if eventID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid event id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var patch model.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	event, err := h.events.Update(r.Context(), eventID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// HandleDelete handles DELETE /api/v1/events/{event_id} requests.
func (h *EventHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")
	if eventID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid event id"))
		return
	}

	if err := h.events.Delete(r.Context(), eventID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

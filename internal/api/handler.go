// Package api provides the HTTP API for the pet.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/rogers-f/moodpet/internal/domain"
	"github.com/rogers-f/moodpet/internal/pet"
)

// Handler holds all dependencies for the HTTP handlers.
type Handler struct {
	Pet *pet.Pet
}

// ActionRequest is the body for POST /api/pet/action.
type ActionRequest struct {
	Action string `json:"action"`
}

// StatusResponse is the body returned by both pet endpoints.
type StatusResponse struct {
	Status     domain.Status `json:"status"`
	Emotion    EmotionBody   `json:"emotion"`
	Action     IndexedState  `json:"action"`
	LastUpdate float64       `json:"last_update"`
}

// ActionResponse extends StatusResponse with the pet's reaction. The extra
// fields are omitted when the action has no response code.
type ActionResponse struct {
	StatusResponse
	Success  *bool         `json:"success,omitempty"`
	Response *IndexedState `json:"response,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// EmotionBody describes the dominant emotion.
type EmotionBody struct {
	State string       `json:"state"`
	Level domain.Level `json:"level"`
	Index int          `json:"index"`
}

// IndexedState is a named state with its numeric index.
type IndexedState struct {
	State string `json:"state"`
	Index int    `json:"index"`
}

// APIError is a structured error response.
type APIError struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetStatus handles GET /api/pet/status.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	view, err := h.Pet.Status(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewStatusResponse(view))
}

// PerformAction handles POST /api/pet/action.
func (h *Handler) PerformAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidAction(w)
		return
	}
	action, err := domain.ParseAction(req.Action)
	if err != nil {
		writeInvalidAction(w)
		return
	}

	out, err := h.Pet.Perform(r.Context(), action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewActionResponse(out))
}

// NewStatusResponse renders a view in wire form.
func NewStatusResponse(v pet.View) StatusResponse {
	return StatusResponse{
		Status: v.Status,
		Emotion: EmotionBody{
			State: string(v.Emotion),
			Level: v.Level,
			Index: v.Emotion.Index(),
		},
		Action: IndexedState{
			State: string(v.Display),
			Index: v.Display.Index(),
		},
		LastUpdate: float64(v.LastUpdate.UnixNano()) / 1e9,
	}
}

// NewActionResponse renders an action outcome in wire form.
func NewActionResponse(out pet.Outcome) ActionResponse {
	resp := ActionResponse{StatusResponse: NewStatusResponse(out.View)}
	if !out.HasResponse() {
		return resp
	}

	success := !out.Refused()
	resp.Success = &success
	resp.Response = &IndexedState{
		State: string(out.Response),
		Index: out.Response.Index(),
	}
	if success {
		resp.Message = fmt.Sprintf("Successfully performed %s", out.Action)
	} else {
		resp.Message = fmt.Sprintf("Pet refuses to perform %s", out.Action)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeInvalidAction(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, APIError{Error: "Invalid action"})
}

func writeError(w http.ResponseWriter, err error) {
	log.Printf("request failed: %v", err)

	var petErr *domain.PetError
	if errors.As(err, &petErr) {
		status := http.StatusInternalServerError
		if petErr.Code == domain.ErrInvalidAction.Code {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, APIError{Error: petErr.Message, Code: petErr.Code})
		return
	}
	writeJSON(w, http.StatusInternalServerError, APIError{Error: err.Error(), Code: -1})
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"phillymounting/internal/entities"
	"phillymounting/internal/service"
)

type MessageHandler struct {
	Service *service.MessageService
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

func (h *MessageHandler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	message, err := h.Service.SubmitContactMessage(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": message,
	})
}

func (h *MessageHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.ListContactMessages()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

func (h *MessageHandler) UpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	message, err := h.Service.ChangeMessageStatus(id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}

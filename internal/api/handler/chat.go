package handler

import (
	"encoding/json"
	"net/http"

	"github.com/platewise/platewise/internal/api/middleware"
	"github.com/platewise/platewise/internal/api/response"
	"github.com/platewise/platewise/internal/domain"
	"github.com/platewise/platewise/internal/service"
)

// ChatHandler handles nutrition assistant chat endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send forwards a user message to the assistant and returns the reply
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	msg, err := h.chatService.Send(r.Context(), userID, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, msg)
}

// History returns the current user's recent chat messages
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	messages, err := h.chatService.History(r.Context(), userID)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, messages)
}

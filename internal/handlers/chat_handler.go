package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/apperrors"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/middleware"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/services/dto"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chats := rg.Group("/chats")
	chats.Use(middleware.AuthMiddleware())
	{
		chats.POST("", h.CreateOrGetChat)
		chats.GET("/user/:uid", h.ListChats)
		chats.GET("/:id", h.GetChat)
		chats.POST("/:id/messages", h.SendMessage)
		chats.PATCH("/:id/read", h.MarkRead)
		chats.DELETE("/:id", h.DeleteChat)
	}
}

// CreateOrGetChat resolves the channel for a participant pair. Calling it
// twice with the pair in either order returns the same chat.
func (h *ChatHandler) CreateOrGetChat(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.CreateChatRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	chat, err := h.chatService.CreateOrGet(c.Request.Context(), uid, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"chat": dto.ToChatResponse(chat)})
}

func (h *ChatHandler) ListChats(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}
	if c.Param("uid") != uid {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	chats, err := h.chatService.ListForUser(uid)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	out := make([]dto.ChatResponse, 0, len(chats))
	for i := range chats {
		out = append(out, dto.ToChatResponse(&chats[i]))
	}
	h.OK(c, gin.H{"chats": out})
}

// GetChat returns the full message history of one chat. The polling
// clients call this every few seconds and replace their local copy with
// the response wholesale.
func (h *ChatHandler) GetChat(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	messages, err := h.chatService.GetMessages(uid, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"messages": dto.ToMessageResponses(messages)})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.SenderID != "" && req.SenderID != uid {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), uid, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, gin.H{"message": dto.ToMessageResponse(message)})
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	// The body is optional; clients may just hit the endpoint bare.
	var req dto.MarkReadRequest
	if c.Request.ContentLength > 0 && !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.FirebaseUID != "" && req.FirebaseUID != uid {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	if err := h.chatService.MarkRead(uid, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Messages marked read"})
}

func (h *ChatHandler) DeleteChat(c *gin.Context) {
	uid, ok := h.CallerUID(c)
	if !ok {
		return
	}

	if err := h.chatService.Delete(uid, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Chat deleted"})
}

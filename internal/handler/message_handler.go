package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kbryant/sendlater/internal/service"
	"github.com/kbryant/sendlater/pkg/logger"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

type CreateMessageRequest struct {
	Message       string `json:"message"`
	Owner         string `json:"owner"`
	DisplayName   string `json:"display_name"`
	OutgoingPhone string `json:"outgoing_phone"`
	SendTime      string `json:"send_time"`
}

type UpdateMessageRequest struct {
	ID            string `json:"id"`
	Message       string `json:"message"`
	DisplayName   string `json:"display_name"`
	OutgoingPhone string `json:"outgoing_phone"`
	SendTime      string `json:"send_time"`
}

type DeleteMessageRequest struct {
	ID string `json:"id"`
}

// POST /messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	_, err := h.messageService.Create(service.CreateMessageInput{
		Message:       req.Message,
		Owner:         req.Owner,
		DisplayName:   req.DisplayName,
		OutgoingPhone: req.OutgoingPhone,
		SendTime:      req.SendTime,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Log.Info("message created",
		zap.String("owner", req.Owner),
		zap.String("send_time", req.SendTime),
	)

	// 201 echoes the submitted body
	c.JSON(http.StatusCreated, req)
}

// PUT /messages
func (h *MessageHandler) Update(c *gin.Context) {
	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	err := h.messageService.Update(service.UpdateMessageInput{
		ID:            req.ID,
		Message:       req.Message,
		DisplayName:   req.DisplayName,
		OutgoingPhone: req.OutgoingPhone,
		SendTime:      req.SendTime,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Message updated"})
}

// DELETE /messages
func (h *MessageHandler) Delete(c *gin.Context) {
	var req DeleteMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	if err := h.messageService.Delete(req.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Message deleted"})
}

// GET /messages
func (h *MessageHandler) ListAll(c *gin.Context) {
	messages, err := h.messageService.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GET /messages/:owner
func (h *MessageHandler) ListByOwner(c *gin.Context) {
	owner := c.Param("owner")

	messages, err := h.messageService.ListByOwner(owner)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

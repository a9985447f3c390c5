package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/httpresp"
	"github.com/aupetservices/petcare-scheduler/internal/infra/repository"
	"github.com/aupetservices/petcare-scheduler/internal/middleware"
	ucChat "github.com/aupetservices/petcare-scheduler/internal/usecase/chat"
	"github.com/google/uuid"
)

// ======================================================
// HANDLER
// ======================================================

type ChatHandler struct {
	repo *repository.ChatGormRepository

	createRoomUC      *ucChat.CreateRoom
	getOrCreateUC     *ucChat.GetOrCreateRoom
	startWithProvider *ucChat.GetOrCreateRoomForTutorAndProvider
	sendMessageUC     *ucChat.SendMessage
	listMessagesUC    *ucChat.ListMessages
	listRoomsUC       *ucChat.ListRoomsByUser
}

func NewChatHandler(
	repo *repository.ChatGormRepository,
	createRoomUC *ucChat.CreateRoom,
	getOrCreateUC *ucChat.GetOrCreateRoom,
	startWithProvider *ucChat.GetOrCreateRoomForTutorAndProvider,
	sendMessageUC *ucChat.SendMessage,
	listMessagesUC *ucChat.ListMessages,
	listRoomsUC *ucChat.ListRoomsByUser,
) *ChatHandler {
	return &ChatHandler{
		repo:              repo,
		createRoomUC:      createRoomUC,
		getOrCreateUC:     getOrCreateUC,
		startWithProvider: startWithProvider,
		sendMessageUC:     sendMessageUC,
		listMessagesUC:    listMessagesUC,
		listRoomsUC:       listRoomsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRoomRequest struct {
	ParticipantIDs []string `json:"participant_ids" binding:"required"`
	Name           string   `json:"name"`
}

type StartChatRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
}

type SendMessageRequest struct {
	RoomID  string `json:"room_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ======================================================
// ROOMS
// ======================================================

func (h *ChatHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	room, err := h.createRoomUC.Execute(c.Request.Context(), req.ParticipantIDs, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// StartChat resolve (ou cria) a sala entre o usuário autenticado
// e o prestador informado.
func (h *ChatHandler) StartChat(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req StartChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	room, err := h.startWithProvider.Execute(c.Request.Context(), userID, req.ProviderID)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, room)
}

func (h *ChatHandler) ListRooms(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	rooms, err := h.listRoomsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, rooms)
}

func (h *ChatHandler) GetRoom(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		httperr.NotFound(c, "room_not_found", messageFor("room_not_found"))
		return
	}

	room, err := h.repo.GetRoomByID(c.Request.Context(), id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			httperr.NotFound(c, "room_not_found", messageFor("room_not_found"))
			return
		}
		respondError(c, err)
		return
	}
	httpresp.OK(c, room)
}

// ======================================================
// MESSAGES
// ======================================================

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	msg, err := h.sendMessageUC.Execute(c.Request.Context(), userID, ucChat.SendMessageInput{
		RoomID:  req.RoomID,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	msgs, err := h.listMessagesUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, msgs)
}

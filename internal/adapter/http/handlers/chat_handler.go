package handlers

import (
	"errors"
	"log"
	"net/http"

	"mcbot/internal/adapter/http/dto/request"
	"mcbot/internal/adapter/http/dto/response"
	"mcbot/internal/usecase"
	"mcbot/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/chat_usecase.go -destination=mocks/chat_usecase_mock.go -package=mocks

var (
	errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "message is required", http.StatusBadRequest)
)

// ChatHandler handles the conversational ordering endpoints.
type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// Chat godoc
// @Summary      Send a message to the ordering assistant
// @Description  Runs one dialogue turn. An empty session_id starts a new session.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChatRequest  true  "Customer message"
// @Success      200   {object}  response.ChatResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	message := payload.ResolveMessage()
	if message == "" {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Handle(c.Request.Context(), payload.ResolveSessionID(), message)
	if err != nil {
		log.Printf("[chat][handler] turn failed session_id=%s err=%v", payload.ResolveSessionID(), err)
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChatResult(result))
}

// GetSession godoc
// @Summary      Inspect a session
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.SessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [get]
func (h *ChatHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	view, err := h.usecase.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

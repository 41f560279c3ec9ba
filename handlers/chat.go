package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nabeelsyed11/Kimia-Reality/chat"
	"github.com/nabeelsyed11/Kimia-Reality/metrics"
	"github.com/nabeelsyed11/Kimia-Reality/models"
)

type ChatController struct {
	responder chat.Responder
}

func NewChatController(responder chat.Responder) *ChatController {
	return &ChatController{responder: responder}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat answers a visitor message. The responder degrades to the keyword
// fallback internally, so this endpoint always returns a reply.
func (cc *ChatController) Chat(c echo.Context) error {
	metrics.ChatRequestsTotal.Inc()

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	reply, err := cc.responder.Respond(c.Request().Context(), req.Message)
	if err != nil {
		// The keyword fallback never errors, so this is unreachable with
		// the default responder wiring; answer with the greeting anyway.
		reply, _ = chat.NewKeywordResponder().Respond(c.Request().Context(), "")
	}

	return c.JSON(http.StatusOK, models.ChatResponse{Success: true, Message: reply})
}

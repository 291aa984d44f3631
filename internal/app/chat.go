package app

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srmist/campus-chat-go/internal/bot"
	domerrors "github.com/srmist/campus-chat-go/internal/errors"
)

// maxChatBodyBytes caps the JSON body of POST /chat.
const maxChatBodyBytes = 64 << 10

// RateLimitedReply answers a client that exceeded its chat budget.
const RateLimitedReply = "⚠️ You're sending messages too quickly. Please wait a moment and try again."

// chatRequest is the POST /chat body. Message is untyped so that a
// non-string value is treated like a missing one instead of a bind error.
type chatRequest struct {
	Message any `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// chat handles POST /chat. Every outcome carries a reply the page can
// show: blank, missing, non-string and malformed messages get the fixed
// prompt with 200, over-limit clients get 429.
func (a *Application) chat(c *gin.Context) {
	ip := c.ClientIP()
	if !a.chatLimiter.Allow(ip) {
		retry := int(math.Ceil(a.chatLimiter.RetryAfter(ip).Seconds()))
		c.Header("Retry-After", strconv.Itoa(max(retry, 1)))
		c.JSON(http.StatusTooManyRequests, chatResponse{Reply: RateLimitedReply})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxChatBodyBytes)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.WithError(err).DebugContext(c.Request.Context(), "Chat body did not decode")
	}
	message, _ := req.Message.(string)

	resp, err := a.processor.ProcessMessage(c.Request.Context(), message)
	var verr *domerrors.ValidationError
	switch {
	case err == nil, errors.Is(err, domerrors.ErrEmptyMessage):
		c.JSON(http.StatusOK, chatResponse{Reply: resp.Reply})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, chatResponse{Reply: resp.Reply})
	default:
		a.logger.WithError(err).ErrorContext(c.Request.Context(), "Chat processing failed")
		c.JSON(http.StatusInternalServerError, chatResponse{Reply: bot.ServerErrorReply})
	}
}

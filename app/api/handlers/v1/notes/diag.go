package notes

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Test godoc
// @Summary Diagnostic
// @Tags Diagnostic
// @Produce plain
// @Success 200 {string} string
// @Router /api/notes/test [get]
func (h Handlers) Test(*gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   "Notes API is working! Time: " + time.Now().Format(time.RFC3339),
	}
}

// Echo godoc
// @Summary Echo the raw request body
// @Tags Diagnostic
// @Accept plain
// @Produce plain
// @Param message body string true "Any text"
// @Success 200 {string} string
// @Router /api/notes/test [post]
func (h Handlers) Echo(ctx *gin.Context) handler.Result {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return invalidBody(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   "Received: " + string(body),
	}
}

// Health godoc
// @Summary Health of the notes API and its database
// @Tags Diagnostic
// @Produce plain
// @Success 200 {string} string
// @Router /api/notes/health [get]
func (h Handlers) Health(ctx *gin.Context) handler.Result {
	connected := "No"
	if h.Core.Healthy(ctx.Request.Context()) {
		connected = "Yes"
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   "Notes API is healthy! Database connected: " + connected,
	}
}

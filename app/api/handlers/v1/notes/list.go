package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description List every stored note
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /api/notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	ns, err := h.Core.Query(ctx.Request.Context())
	if err != nil {
		return h.failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   ns,
	}
}

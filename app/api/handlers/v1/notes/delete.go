package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete a note using its id
// @Tags Note
// @Produce plain
// @Param id path int true "Note id"
// @Success 200 {string} string "Note deleted successfully"
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	id, ok := parseID(ctx)
	if !ok {
		return invalidID
	}

	if err := h.Core.Delete(ctx.Request.Context(), id); err != nil {
		return h.failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   "Note deleted successfully",
	}
}

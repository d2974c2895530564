package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/business/v1/note"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Update godoc
// @Summary Update a note
// @Description Replace the title and/or the content of a note, absent fields are kept
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param note body note.UpdateNote true "Fields to replace"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	id, ok := parseID(ctx)
	if !ok {
		return invalidID
	}

	var un note.UpdateNote
	if err := ctx.ShouldBindJSON(&un); err != nil {
		return invalidBody(err)
	}

	n, err := h.Core.Update(ctx.Request.Context(), id, un)
	if err != nil {
		return h.failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   n,
	}
}

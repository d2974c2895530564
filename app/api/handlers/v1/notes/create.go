package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/business/v1/note"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Create a note, title and content must not be blank
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var nn note.NewNote
	if err := ctx.ShouldBindJSON(&nn); err != nil {
		return invalidBody(err)
	}

	n, err := h.Core.Create(ctx.Request.Context(), nn)
	if err != nil {
		return h.failure(err)
	}
	return handler.Result{
		Status: http.StatusCreated,
		Body:   n,
	}
}

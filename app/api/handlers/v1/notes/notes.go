// Package notes holds the handlers of the /api/notes endpoints.
package notes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/business/v1/note"
	"github.com/ribgsilva/notes-app/platform/web/handler"
	"go.uber.org/zap"
)

// Handlers serves the note endpoints using the given Core
type Handlers struct {
	Log  *zap.SugaredLogger
	Core *note.Core
}

// parseID accepts ids up to math.MaxInt64, the range of the stores
func parseID(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 63)
	return id, err == nil
}

var invalidID = handler.Result{
	Status: http.StatusBadRequest,
	Body:   handler.Error{Message: "invalid id"},
}

func invalidBody(err error) handler.Result {
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   handler.Error{Message: "invalid request body: " + err.Error()},
	}
}

// failure maps the note error kinds to their status codes
func (h Handlers) failure(err error) handler.Result {
	var (
		ve *note.ValidationError
		nf *note.NotFoundError
		se *note.StorageError
	)
	switch {
	case errors.As(err, &ve):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: ve.Error()},
		}
	case errors.As(err, &nf):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: fmt.Sprintf("Note not found with id: %d", nf.ID)},
		}
	case errors.As(err, &se):
		h.Log.Errorw("storage", "op", se.Op, "ERROR", se.Err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: fmt.Sprintf("Error %s: %s", se.Op, se.Err)},
		}
	default:
		h.Log.Errorw("unexpected", "ERROR", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}

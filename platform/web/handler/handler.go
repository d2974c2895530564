// Package handler adapts handlers that return a Result into gin handlers.
package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a Handler produces: the status code and the body to render.
// A string Body is written as text/plain, nil writes only the status, anything else is rendered as JSON.
type Result struct {
	Status int
	Body   any
}

// Error is the body returned on every failed request
type Error struct {
	Message string `json:"message" example:"Note not found with id: 1"`
}

// Handler handles a request and returns the Result to be written
type Handler func(ctx *gin.Context) Result

// Wrapper converts a Handler into a gin.HandlerFunc
func Wrapper(h Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		switch body := r.Body.(type) {
		case nil:
			ctx.Status(r.Status)
		case string:
			ctx.String(r.Status, body)
		default:
			ctx.JSON(r.Status, body)
		}
	}
}

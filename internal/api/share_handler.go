package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devcanvas/internal/sharestate"
)

// ShareHandler encodes and decodes share-link state.
type ShareHandler struct{}

// NewShareHandler constructs a ShareHandler.
func NewShareHandler() *ShareHandler {
	return &ShareHandler{}
}

// EncodeState encodes the request body into a compact share string.
func (h *ShareHandler) EncodeState(c *gin.Context) {
	var state map[string]any
	if err := c.ShouldBindJSON(&state); err != nil {
		BadRequest(c, "request body must be a JSON object")
		return
	}

	encoded := sharestate.Encode(state)
	if encoded == "" {
		BadRequest(c, "state could not be encoded")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": encoded})
}

// DecodeState decodes a share string back into state. An undecodable string
// yields an empty object, never an error, so a broken link degrades to a
// portfolio without edits.
func (h *ShareHandler) DecodeState(c *gin.Context) {
	state := sharestate.Decode(c.Query("data"))
	if state == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, state)
}

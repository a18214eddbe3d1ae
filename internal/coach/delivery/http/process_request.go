package http

import (
	"github.com/gin-gonic/gin"
)

// processTextReq binds and validates a {"text": ...} body.
func (h *handler) processTextReq(c *gin.Context) (textReq, error) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

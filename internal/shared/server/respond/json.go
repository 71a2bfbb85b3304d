package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

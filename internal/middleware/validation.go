package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chippsss/sms-backend/internal/app/models/dto"
)

// BindJSON binds and validates a JSON request body, writing the error
// response itself on failure. Binding tags on the dto structs drive the
// validation via Gin's validator engine.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.HandleValidationError(err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

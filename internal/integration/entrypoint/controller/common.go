package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/entrypoint/dto"
)

// respondUnauthenticated writes the 401 response used when no user ID is
// present in the request context.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// queryInt parses an integer query parameter, returning the fallback when the
// parameter is absent or malformed.
func queryInt(ctx *gin.Context, name string, fallback int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

package handlers

import (
	"errors"
	"net/http"

	"frontdesk/models"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	codeInvalidRequest = "InvalidRequest"
	codeInternal       = "InternalError"
)

func statusForCode(code string) int {
	switch code {
	case models.CodeRoomNotFound:
		return http.StatusNotFound
	case models.CodeNoRoomsAvailable:
		return http.StatusConflict
	case models.CodePriceNotCalculated:
		return http.StatusPreconditionFailed
	default:
		return http.StatusBadRequest
	}
}

// respondError turns a service error into a JSON error response. Domain
// errors carry their own message, anything else is reported as a 500.
func respondError(c *gin.Context, err error) {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		utils.JSONError(c, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, "")
		return
	}
	getLogger(c).Error("Front desk action failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, codeInternal, "Something went wrong. Please try again.", err.Error())
}

package utils

import (
	"errors"
	"net/http"

	"github.com/codeacademypro/contactapi/internal/api/dto/common"
	"github.com/codeacademypro/contactapi/internal/logging"
	"github.com/codeacademypro/contactapi/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-facing error messages
const (
	MsgInvalidData    = "Datos inválidos"
	MsgNotFound       = "Contacto no encontrado"
	MsgRouteNotFound  = "Ruta no encontrada"
	MsgInternalServer = "Error interno del servidor"
	MsgSaveFailed     = "Error al guardar en la base de datos"
	MsgListFailed     = "Error al obtener contactos"
	MsgGetFailed      = "Error al obtener contacto"
)

// HandleAPIError maps service errors to HTTP responses. storeMessage is used
// for persistence failures so each endpoint keeps its own wording.
func HandleAPIError(c *gin.Context, err error, storeMessage string) {
	var (
		policyErr      *service.PolicyError
		validationErr  *service.ValidationError
		persistenceErr *service.PersistenceError
	)

	switch {
	case errors.As(err, &policyErr):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodePolicy, policyErr.Message, nil))
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, MsgInvalidData, validationErr.Details))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, MsgNotFound, nil))
	case errors.As(err, &persistenceErr):
		logHTTPError(c, http.StatusInternalServerError, storeMessage, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(common.ErrCodePersistence, storeMessage, persistenceErr.Err.Error()))
	default:
		HandleInternalError(c, err)
	}
}

// HandleInternalError answers with the generic 500 body
func HandleInternalError(c *gin.Context, err error) {
	logHTTPError(c, http.StatusInternalServerError, MsgInternalServer, err)
	c.JSON(http.StatusInternalServerError, common.NewErrorResponse(common.ErrCodeInternalServer, MsgInternalServer, nil))
}

// HandleBadRequest answers with a 400 carrying details
func HandleBadRequest(c *gin.Context, details interface{}) {
	c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeBadRequest, MsgInvalidData, details))
}

func logHTTPError(c *gin.Context, status int, message string, err error) {
	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)
}

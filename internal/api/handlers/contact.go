package handlers

import (
	"context"
	"strconv"

	"github.com/codeacademypro/contactapi/internal/api/constants"
	"github.com/codeacademypro/contactapi/internal/api/dto/v1/contact"
	"github.com/codeacademypro/contactapi/internal/api/mapper"
	"github.com/codeacademypro/contactapi/internal/service"
	"github.com/codeacademypro/contactapi/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgContactSaved = "Contacto guardado exitosamente"
	msgInvalidJSON  = "El cuerpo de la solicitud no es JSON válido"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles POST /api/contacto
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBadRequest(c, []string{msgInvalidJSON})
		return
	}

	submission := mapper.ContactRequestToSubmission(&req, utils.GetRealIP(c))

	created, err := h.contactService.Submit(requestContext(c), submission)
	if err != nil {
		utils.HandleAPIError(c, err, utils.MsgSaveFailed)
		return
	}

	utils.HandleCreated(c, contact.ContactCreatedResponse{
		Message: msgContactSaved,
		ID:      created.ID,
	})
}

// List handles GET /api/contactos
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(requestContext(c))
	if err != nil {
		utils.HandleAPIError(c, err, utils.MsgListFailed)
		return
	}

	utils.HandleSuccess(c, mapper.ContactsToContactListResponse(contacts))
}

// Get handles GET /api/contacto/:id
func (h *ContactHandler) Get(c *gin.Context) {
	// Ids are bigserial, so anything that is not a positive integer cannot match.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.HandleAPIError(c, service.ErrNotFound, utils.MsgGetFailed)
		return
	}

	found, err := h.contactService.Get(requestContext(c), id)
	if err != nil {
		utils.HandleAPIError(c, err, utils.MsgGetFailed)
		return
	}

	utils.HandleSuccess(c, mapper.ContactToContactResponse(found))
}

func requestContext(c *gin.Context) context.Context {
	return service.WithRequestID(c.Request.Context(), c.GetString(constants.ContextKeyRequestID))
}

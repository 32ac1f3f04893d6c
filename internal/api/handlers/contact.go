package handlers

import (
	"net/http"

	"temple-outreach-backend/internal/auth"
	"temple-outreach-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles contact HTTP requests
type ContactHandler struct {
	service service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create godoc
// @Summary Add a contact to the caller admin's book
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body service.CreateContactRequest true "Contact"
// @Success 201 {object} service.ContactResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.CreateContact(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List contacts
// @Description Lists the caller admin's contacts, or a program's contacts when program_id is given
// @Tags contacts
// @Produce json
// @Param program_id query string false "Program ID"
// @Success 200 {array} service.ContactResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	if rawProgramID := c.Query("program_id"); rawProgramID != "" {
		programID, err := uuid.Parse(rawProgramID)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid program ID"})
			return
		}
		resp, err := h.service.ListContactsByProgram(programID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	callerID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	resp, err := h.service.ListContacts(callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contact ID"})
		return
	}

	if err := h.service.DeleteContact(callerID, contactID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

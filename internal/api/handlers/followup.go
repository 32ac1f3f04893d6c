package handlers

import (
	"net/http"

	"temple-outreach-backend/internal/auth"
	"temple-outreach-backend/internal/database/models"
	"temple-outreach-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FollowUpHandler handles follow-up list HTTP requests
type FollowUpHandler struct {
	service service.FollowUpServiceInterface
}

// NewFollowUpHandler creates a new follow-up handler
func NewFollowUpHandler(service service.FollowUpServiceInterface) *FollowUpHandler {
	return &FollowUpHandler{service: service}
}

// CreateList godoc
// @Summary Create a follow-up list
// @Description Partitions the caller admin's contacts across the given volunteers for a date
// @Tags followups
// @Accept json
// @Produce json
// @Param request body service.CreateFollowUpListRequest true "Volunteers and date"
// @Success 201 {object} service.CreateFollowUpListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /followups/assign [post]
func (h *FollowUpHandler) CreateList(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.CreateFollowUpListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.CreateList(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List follow-up assignments for a date
// @Description Lists assignments sorted by contact name. Scope is the caller admin's contacts, or a program when program_id is given.
// @Tags followups
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param program_id query string false "Program ID"
// @Param status query string false "Filter by call status"
// @Success 200 {array} service.FollowUpAssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /followups [get]
func (h *FollowUpHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date query parameter is required"})
		return
	}

	var status *models.CallStatus
	if raw := c.Query("status"); raw != "" {
		s := models.CallStatus(raw)
		status = &s
	}

	if rawProgramID := c.Query("program_id"); rawProgramID != "" {
		programID, err := uuid.Parse(rawProgramID)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid program ID"})
			return
		}
		resp, err := h.service.ListForProgram(programID, date, status)
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
	resp, err := h.service.ListForOwner(callerID, date, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordOutcome godoc
// @Summary Record a call outcome
// @Description Updates the assignment for (contact, date) with status and remarks. Never creates assignments.
// @Tags followups
// @Accept json
// @Produce json
// @Param request body service.RecordOutcomeRequest true "Outcome"
// @Success 200 {object} service.FollowUpAssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /followups/update [patch]
func (h *FollowUpHandler) RecordOutcome(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.RecordOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.RecordOutcome(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteForDate godoc
// @Summary Delete a program's follow-up list for a date
// @Description Removes the program's assignments and the derived session for the date in one transaction
// @Tags followups
// @Produce json
// @Param program_id query string true "Program ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} service.DeleteFollowUpListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /followups/delete-for-date [delete]
func (h *FollowUpHandler) DeleteForDate(c *gin.Context) {
	programID, err := uuid.Parse(c.Query("program_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid program ID"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date query parameter is required"})
		return
	}

	resp, err := h.service.DeleteListForDate(programID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"net/http"

	"temple-outreach-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceHandler handles session attendance HTTP requests
type AttendanceHandler struct {
	service service.AttendanceServiceInterface
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(service service.AttendanceServiceInterface) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// Mark godoc
// @Summary Mark attendance at a session
// @Description Marking the same (session, user) pair again overwrites the present flag
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body service.MarkAttendanceRequest true "Attendance"
// @Success 200 {object} service.AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id}/attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session ID"})
		return
	}

	var req service.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.Mark(sessionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List a session's attendance records
// @Tags attendance
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} service.AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id}/attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session ID"})
		return
	}

	resp, err := h.service.ListBySession(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

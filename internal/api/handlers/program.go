package handlers

import (
	"net/http"
	"strconv"

	"temple-outreach-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProgramHandler handles program HTTP requests
type ProgramHandler struct {
	service        service.ProgramServiceInterface
	sessionService service.SessionServiceInterface
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(service service.ProgramServiceInterface, sessionService service.SessionServiceInterface) *ProgramHandler {
	return &ProgramHandler{service: service, sessionService: sessionService}
}

// Create godoc
// @Summary Create a program
// @Tags programs
// @Accept json
// @Produce json
// @Param request body service.CreateProgramRequest true "Program"
// @Success 201 {object} service.ProgramResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /programs [post]
func (h *ProgramHandler) Create(c *gin.Context) {
	var req service.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.CreateProgram(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get a program by ID
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} service.ProgramResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /programs/{id} [get]
func (h *ProgramHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid program ID"})
		return
	}

	resp, err := h.service.GetProgram(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List programs
// @Tags programs
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Param name query string false "Look up a single program by exact name"
// @Success 200 {object} service.ProgramListResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /programs [get]
func (h *ProgramHandler) List(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		program, err := h.service.GetProgramByName(name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, service.ProgramListResponse{
			Programs: []service.ProgramResponse{*program},
			Total:    1,
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.service.ListPrograms(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Enroll godoc
// @Summary Enroll a user in a program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param request body service.EnrollRequest true "User to enroll"
// @Success 201 {object} service.EnrollmentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /programs/{id}/enrollments [post]
func (h *ProgramHandler) Enroll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid program ID"})
		return
	}

	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.Enroll(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListEnrollments godoc
// @Summary List a program's enrollments
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {array} service.EnrollmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /programs/{id}/enrollments [get]
func (h *ProgramHandler) ListEnrollments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid program ID"})
		return
	}

	resp, err := h.service.ListEnrollments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSessions godoc
// @Summary List a program's sessions
// @Description Materializes placeholder sessions for follow-up dates before listing, newest first
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {array} service.SessionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /programs/{id}/sessions [get]
func (h *ProgramHandler) ListSessions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid program ID"})
		return
	}

	resp, err := h.sessionService.ListForProgram(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

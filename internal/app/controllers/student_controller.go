package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/app/services"
	"github.com/campushire/campushire/internal/middleware"
	"github.com/campushire/campushire/internal/pkg/helpers"
)

// StudentController handles the student-facing endpoints.
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetProfile returns the caller's profile
// @Summary Get own profile
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /student/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	user, err := c.studentService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// UpdateProfile updates the caller's profile
// @Summary Update own profile
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /student/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.studentService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// UploadResume stores the caller's resume file
// @Summary Upload a resume
// @Tags student
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file"
// @Success 200 {object} dto.APIResponse{data=dto.ResumeResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing file"
// @Router /student/resume [post]
func (c *StudentController) UploadResume(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	path, err := c.studentService.UploadResume(ctx.Request.Context(), userID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ResumeResponse{Resume: path}))
}

// ListJobs returns the approved jobs of the caller's college
// @Summary List visible jobs
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Job}
// @Router /student/jobs [get]
func (c *StudentController) ListJobs(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	jobs, err := c.studentService.ListJobs(ctx.Request.Context(), userID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(jobs))
}

// Apply submits an application to a job
// @Summary Apply to a job
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job ID"
// @Success 201 {object} dto.APIResponse{data=models.Application}
// @Failure 404 {object} dto.ErrorResponse "Job not found or not visible"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /student/jobs/{jobId}/apply [post]
func (c *StudentController) Apply(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, err := parseIDParam(ctx, "jobId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	application, err := c.studentService.Apply(ctx.Request.Context(), userID, jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// ListApplications returns the caller's applications
// @Summary List own applications
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Router /student/applications [get]
func (c *StudentController) ListApplications(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	applications, err := c.studentService.ListApplications(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// WithdrawApplication deletes one of the caller's applications
// @Summary Withdraw an application
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param applicationId path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 409 {object} dto.ErrorResponse "Offer already extended"
// @Router /student/applications/{applicationId} [delete]
func (c *StudentController) WithdrawApplication(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	applicationID, err := parseIDParam(ctx, "applicationId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.WithdrawApplication(ctx.Request.Context(), userID, applicationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Application withdrawn"}))
}

// SaveJob bookmarks a job
// @Summary Save a job
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /student/jobs/{jobId}/save [post]
func (c *StudentController) SaveJob(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, err := parseIDParam(ctx, "jobId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.SaveJob(ctx.Request.Context(), userID, jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Job saved"}))
}

// UnsaveJob removes a bookmark
// @Summary Unsave a job
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Job was not saved"
// @Router /student/jobs/{jobId}/save [delete]
func (c *StudentController) UnsaveJob(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, err := parseIDParam(ctx, "jobId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.UnsaveJob(ctx.Request.Context(), userID, jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Job unsaved"}))
}

// ListSavedJobs returns the caller's bookmarks
// @Summary List saved jobs
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Job}
// @Router /student/jobs/saved [get]
func (c *StudentController) ListSavedJobs(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobs, err := c.studentService.ListSavedJobs(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(jobs))
}

// CreateProject adds a portfolio entry
// @Summary Add a project
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project information"
// @Success 201 {object} dto.APIResponse{data=models.Project}
// @Router /student/projects [post]
func (c *StudentController) CreateProject(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	project, err := c.studentService.CreateProject(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(project))
}

// ListProjects returns the caller's portfolio
// @Summary List own projects
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Project}
// @Router /student/projects [get]
func (c *StudentController) ListProjects(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	projects, err := c.studentService.ListProjects(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(projects))
}

// DeleteProject removes a portfolio entry
// @Summary Delete a project
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Router /student/projects/{projectId} [delete]
func (c *StudentController) DeleteProject(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	projectID, err := parseIDParam(ctx, "projectId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeleteProject(ctx.Request.Context(), userID, projectID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Project deleted"}))
}

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

// RecruiterController handles the recruiter-facing endpoints.
type RecruiterController struct {
	recruiterService *services.RecruiterService
	logger           zerolog.Logger
}

// NewRecruiterController creates a new RecruiterController
func NewRecruiterController(recruiterService *services.RecruiterService, logger zerolog.Logger) *RecruiterController {
	return &RecruiterController{
		recruiterService: recruiterService,
		logger:           logger,
	}
}

// CreateJob posts a job targeting a college
// @Summary Post a job
// @Description Posts a job targeting a college. The posting stays Pending until that college approves it.
// @Tags recruiter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job information"
// @Success 201 {object} dto.APIResponse{data=models.Job}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /recruiter/jobs [post]
func (c *RecruiterController) CreateJob(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.recruiterService.CreateJob(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(job))
}

// ListJobs returns the caller's postings
// @Summary List own postings
// @Tags recruiter
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Job}
// @Router /recruiter/jobs [get]
func (c *RecruiterController) ListJobs(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	jobs, err := c.recruiterService.ListJobs(ctx.Request.Context(), userID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(jobs))
}

// UpdateJob edits one of the caller's postings
// @Summary Edit a posting
// @Tags recruiter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Job content"
// @Success 200 {object} dto.APIResponse{data=models.Job}
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Router /recruiter/jobs/{jobId} [put]
func (c *RecruiterController) UpdateJob(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, err := parseIDParam(ctx, "jobId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.recruiterService.UpdateJob(ctx.Request.Context(), userID, jobID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(job))
}

// ListJobApplications returns the applications on one of the caller's postings
// @Summary List applications on a posting
// @Tags recruiter
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Router /recruiter/jobs/{jobId}/applications [get]
func (c *RecruiterController) ListJobApplications(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, err := parseIDParam(ctx, "jobId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	applications, err := c.recruiterService.ListJobApplications(ctx.Request.Context(), userID, jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// UpdateApplicationStatus advances a candidate through the pipeline
// @Summary Update an application's status
// @Tags recruiter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationId path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 403 {object} dto.ErrorResponse "Not the posting's owner"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /recruiter/applications/{applicationId}/status [put]
func (c *RecruiterController) UpdateApplicationStatus(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	applicationID, err := parseIDParam(ctx, "applicationId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.recruiterService.UpdateApplicationStatus(ctx.Request.Context(), userID, applicationID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// ListCandidates returns the distinct students in the caller's pipelines
// @Summary List candidates
// @Tags recruiter
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Router /recruiter/candidates [get]
func (c *RecruiterController) ListCandidates(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	candidates, err := c.recruiterService.ListCandidates(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(candidates))
}

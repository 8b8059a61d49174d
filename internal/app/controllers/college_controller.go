package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/app/services"
	"github.com/campushire/campushire/internal/middleware"
	"github.com/campushire/campushire/internal/pkg/helpers"
)

// CollegeController handles the placement-cell endpoints and the public
// college directory.
type CollegeController struct {
	collegeService *services.CollegeService
	logger         zerolog.Logger
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService, logger zerolog.Logger) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
		logger:         logger,
	}
}

// ListColleges returns the public college directory
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College}
// @Router /colleges [get]
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.ListColleges(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(colleges))
}

// ListJobs returns the postings targeting the caller's college
// @Summary List jobs targeting the college
// @Description Lists postings targeting the caller's college. The status query narrows the list; status=Pending is the moderation queue.
// @Tags college
// @Produce json
// @Security BearerAuth
// @Param status query string false "Job status filter" Enums(Pending, Approved, Rejected)
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Job}
// @Router /college/jobs [get]
func (c *CollegeController) ListJobs(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	status := models.JobStatus(ctx.Query("status"))

	jobs, err := c.collegeService.ListJobs(ctx.Request.Context(), userID, status, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(jobs))
}

// CreateJob posts a job on behalf of the college
// @Summary Post a college job
// @Description Posts a job on behalf of the college itself. Self-postings skip moderation.
// @Tags college
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCollegeJobRequest true "Job information"
// @Success 201 {object} dto.APIResponse{data=models.Job}
// @Router /college/jobs [post]
func (c *CollegeController) CreateJob(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCollegeJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.collegeService.CreateJob(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(job))
}

// UpdateJobStatus decides a pending posting
// @Summary Approve or reject a job
// @Tags college
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job ID"
// @Param request body dto.UpdateJobStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.Job}
// @Failure 403 {object} dto.ErrorResponse "Job targets another college"
// @Failure 409 {object} dto.ErrorResponse "Decision already made"
// @Router /college/jobs/{jobId}/status [put]
func (c *CollegeController) UpdateJobStatus(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, err := parseIDParam(ctx, "jobId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.collegeService.UpdateJobStatus(ctx.Request.Context(), userID, jobID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(job))
}

// ListStudents returns the college's student roster
// @Summary List enrolled students
// @Tags college
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /college/students [get]
func (c *CollegeController) ListStudents(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, total, err := c.collegeService.ListStudents(ctx.Request.Context(), userID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      students,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// ListRecruiters returns the recruiters targeting the college
// @Summary List recruiters
// @Tags college
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Router /college/recruiters [get]
func (c *CollegeController) ListRecruiters(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	recruiters, err := c.collegeService.ListRecruiters(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(recruiters))
}

// GetStats returns the placement dashboard counts
// @Summary Get placement stats
// @Tags college
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CollegeStatsResponse}
// @Router /college/stats [get]
func (c *CollegeController) GetStats(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	stats, err := c.collegeService.GetStats(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

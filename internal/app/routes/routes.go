package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/campushire/internal/app/controllers"
	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	collegeController *controllers.CollegeController,
	recruiterController *controllers.RecruiterController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// The college directory is public so registration forms can offer it.
	v1.GET("/colleges", collegeController.ListColleges)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	student := authenticated.Group("/student")
	student.Use(middleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/profile", studentController.GetProfile)
		student.PUT("/profile", studentController.UpdateProfile)
		student.POST("/resume", studentController.UploadResume)

		student.GET("/jobs", studentController.ListJobs)
		student.GET("/jobs/saved", studentController.ListSavedJobs)
		student.POST("/jobs/:jobId/apply", studentController.Apply)
		student.POST("/jobs/:jobId/save", studentController.SaveJob)
		student.DELETE("/jobs/:jobId/save", studentController.UnsaveJob)

		student.GET("/applications", studentController.ListApplications)
		student.DELETE("/applications/:applicationId", studentController.WithdrawApplication)

		student.GET("/projects", studentController.ListProjects)
		student.POST("/projects", studentController.CreateProject)
		student.DELETE("/projects/:projectId", studentController.DeleteProject)
	}

	college := authenticated.Group("/college")
	college.Use(middleware.RoleRequired(models.RoleCollege))
	{
		college.GET("/jobs", collegeController.ListJobs)
		college.POST("/jobs", collegeController.CreateJob)
		college.PUT("/jobs/:jobId/status", collegeController.UpdateJobStatus)

		college.GET("/students", collegeController.ListStudents)
		college.GET("/recruiters", collegeController.ListRecruiters)
		college.GET("/stats", collegeController.GetStats)
	}

	recruiter := authenticated.Group("/recruiter")
	recruiter.Use(middleware.RoleRequired(models.RoleRecruiter))
	{
		recruiter.GET("/jobs", recruiterController.ListJobs)
		recruiter.POST("/jobs", recruiterController.CreateJob)
		recruiter.PUT("/jobs/:jobId", recruiterController.UpdateJob)
		recruiter.GET("/jobs/:jobId/applications", recruiterController.ListJobApplications)

		recruiter.PUT("/applications/:applicationId/status", recruiterController.UpdateApplicationStatus)
		recruiter.GET("/candidates", recruiterController.ListCandidates)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parths301/aib-hub/internal/middleware"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/services"
	"github.com/parths301/aib-hub/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(
	base *BaseHandler,
	jobService services.JobService,
	applicationService services.ApplicationService,
) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/latest", h.Latest)
		jobs.GET("/:id", h.Get)
		// Posting a brief is open to visitors.
		jobs.POST("", h.Create)
	}

	apply := r.Group("/jobs")
	apply.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCreator, models.UserRoleAdmin))
	{
		apply.POST("/:id/applications", h.Apply)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.jobService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Latest(c *gin.Context) {
	jobs, err := h.jobService.Latest()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Apply files the caller's application to a job.
func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.ApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(userID, jobID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

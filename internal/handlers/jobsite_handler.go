package handlers

import (
	"net/http"

	"hardware_store/internal/middleware"
	"hardware_store/internal/services"
	"hardware_store/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type JobSiteHandler struct {
	jobSiteService services.JobSiteService
	validate       *validatorv10.Validate
}

func NewJobSiteHandler(jobSiteService services.JobSiteService, validate *validatorv10.Validate) *JobSiteHandler {
	return &JobSiteHandler{jobSiteService: jobSiteService, validate: validate}
}

func (h *JobSiteHandler) Create(c *gin.Context) {
	var req validation.CreateJobSiteRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	jobSite, err := h.jobSiteService.CreateJobSite(&req, middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create job site"})
		return
	}

	c.JSON(http.StatusCreated, jobSite)
}

func (h *JobSiteHandler) List(c *gin.Context) {
	jobSites, err := h.jobSiteService.ListJobSites(middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list job sites"})
		return
	}
	c.JSON(http.StatusOK, jobSites)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/domain/models"
	"github.com/maxaizer/job-board/internal/services"
	"github.com/pkg/errors"
)

type JobHandler struct {
	jobs *services.Jobs
}

func NewJobHandler(jobs *services.Jobs) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) List(c *gin.Context) {

	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}
	offset, ok := intQuery(c, "offset", 0)
	if !ok {
		return
	}

	filter := services.JobFilter{
		CityID:          c.Query("cityId"),
		CategoryID:      c.Query("categoryId"),
		QualificationID: c.Query("qualificationId"),
		JobTypeID:       c.Query("jobTypeId"),
		Search:          c.Query("search"),
		Limit:           limit,
		Offset:          offset,
	}

	page, err := h.jobs.List(c.Request.Context(), filter)
	if err != nil {
		writeInternalError(c, err, "Failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *JobHandler) Featured(c *gin.Context) {
	jobs, err := h.jobs.Featured(c.Request.Context())
	if err != nil {
		writeInternalError(c, err, "Failed to fetch featured jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Recent(c *gin.Context) {

	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}

	jobs, err := h.jobs.Recent(c.Request.Context(), limit)
	if err != nil {
		writeInternalError(c, err, "Failed to fetch recent jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {

	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeInternalError(c, err, "Failed to fetch job")
		return
	}
	if job == nil {
		writeError(c, http.StatusNotFound, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

type applyRequest struct {
	ApplicantName  string  `json:"applicantName" binding:"required"`
	ApplicantEmail string  `json:"applicantEmail" binding:"required"`
	ApplicantPhone string  `json:"applicantPhone" binding:"required"`
	Resume         *string `json:"resume"`
	CoverLetter    *string `json:"coverLetter"`
}

// Apply checks the job exists before validating the body, so applying to a
// missing job is 404 even when the payload is also malformed.
func (h *JobHandler) Apply(c *gin.Context) {

	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeInternalError(c, err, "Failed to create job application")
		return
	}
	if job == nil {
		writeError(c, http.StatusNotFound, "Job not found")
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid application data")
		return
	}

	insert := models.InsertJobApplication{
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		ApplicantPhone: req.ApplicantPhone,
		Resume:         req.Resume,
		CoverLetter:    req.CoverLetter,
	}

	application, err := h.jobs.Apply(c.Request.Context(), job.ID, insert)
	if errors.Is(err, services.ErrJobNotFound) {
		writeError(c, http.StatusNotFound, "Job not found")
		return
	}
	if err != nil {
		writeInternalError(c, err, "Failed to create job application")
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *JobHandler) Applications(c *gin.Context) {

	applications, err := h.jobs.ApplicationsForJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeInternalError(c, err, "Failed to fetch job applications")
		return
	}
	c.JSON(http.StatusOK, applications)
}

type hireCompany struct {
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
	Size        *string `json:"size"`
}

// hireRequest mirrors the posting form. requirements and benefits accept
// either an array or one string split on newlines and commas.
type hireRequest struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Location        string            `json:"location"`
	CompanyID       *string           `json:"companyId"`
	CityID          *string           `json:"cityId"`
	CategoryID      *string           `json:"categoryId"`
	QualificationID *string           `json:"qualificationId"`
	JobTypeID       *string           `json:"jobTypeId"`
	SalaryMin       *int              `json:"salaryMin"`
	SalaryMax       *int              `json:"salaryMax"`
	Experience      *string           `json:"experience"`
	IsActive        *bool             `json:"isActive"`
	IsFeatured      *bool             `json:"isFeatured"`
	ContactPhone    *string           `json:"contactPhone"`
	ContactEmail    *string           `json:"contactEmail"`
	Requirements    models.StringList `json:"requirements"`
	Benefits        models.StringList `json:"benefits"`
	Company         *hireCompany      `json:"company"`
	CompanyName     string            `json:"companyName"`
}

func (h *JobHandler) Hire(c *gin.Context) {

	var req hireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid job data")
		return
	}
	if req.Title == "" {
		writeError(c, http.StatusBadRequest, "title is required")
		return
	}

	input := services.PostJobInput{
		Job: models.InsertJob{
			Title:           req.Title,
			Description:     req.Description,
			Location:        req.Location,
			CompanyID:       req.CompanyID,
			CityID:          req.CityID,
			CategoryID:      req.CategoryID,
			QualificationID: req.QualificationID,
			JobTypeID:       req.JobTypeID,
			SalaryMin:       req.SalaryMin,
			SalaryMax:       req.SalaryMax,
			Experience:      req.Experience,
			IsActive:        req.IsActive,
			IsFeatured:      req.IsFeatured,
			ContactPhone:    req.ContactPhone,
			ContactEmail:    req.ContactEmail,
			Requirements:    req.Requirements,
			Benefits:        req.Benefits,
		},
	}

	if company := req.Company; company != nil {
		input.Company = &models.InsertCompany{
			Name:        company.Name,
			Logo:        company.Logo,
			Description: company.Description,
			Website:     company.Website,
			Industry:    company.Industry,
			Size:        company.Size,
		}
	} else if req.CompanyName != "" {
		input.Company = &models.InsertCompany{Name: req.CompanyName}
	}

	job, err := h.jobs.Post(c.Request.Context(), input)
	if err != nil {
		writeInternalError(c, err, "Failed to post job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

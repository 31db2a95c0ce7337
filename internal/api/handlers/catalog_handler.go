package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/domain/models"
)

type catalogStore interface {
	Cities(ctx context.Context) ([]models.City, error)
	Companies(ctx context.Context) ([]models.Company, error)
	Company(ctx context.Context, id string) (*models.Company, error)
	JobCategories(ctx context.Context) ([]models.JobCategory, error)
	Qualifications(ctx context.Context) ([]models.Qualification, error)
	JobTypes(ctx context.Context) ([]models.JobType, error)
}

// CatalogHandler serves the reference entities jobs link to: cities,
// companies and the three taxonomies.
type CatalogHandler struct {
	store catalogStore
}

func NewCatalogHandler(store catalogStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) Cities(c *gin.Context) {
	cities, err := h.store.Cities(c.Request.Context())
	if err != nil {
		writeInternalError(c, err, "Failed to fetch cities")
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *CatalogHandler) Companies(c *gin.Context) {
	companies, err := h.store.Companies(c.Request.Context())
	if err != nil {
		writeInternalError(c, err, "Failed to fetch companies")
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *CatalogHandler) Company(c *gin.Context) {

	company, err := h.store.Company(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeInternalError(c, err, "Failed to fetch company")
		return
	}
	if company == nil {
		writeError(c, http.StatusNotFound, "Company not found")
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CatalogHandler) JobCategories(c *gin.Context) {
	categories, err := h.store.JobCategories(c.Request.Context())
	if err != nil {
		writeInternalError(c, err, "Failed to fetch job categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) Qualifications(c *gin.Context) {
	qualifications, err := h.store.Qualifications(c.Request.Context())
	if err != nil {
		writeInternalError(c, err, "Failed to fetch qualifications")
		return
	}
	c.JSON(http.StatusOK, qualifications)
}

func (h *CatalogHandler) JobTypes(c *gin.Context) {
	jobTypes, err := h.store.JobTypes(c.Request.Context())
	if err != nil {
		writeInternalError(c, err, "Failed to fetch job types")
		return
	}
	c.JSON(http.StatusOK, jobTypes)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/app/services"
	"github.com/Chippsss/sms-backend/internal/middleware"
)

// CatalogController serves the academic reference data endpoints
type CatalogController struct {
	catalogService *services.CatalogService
	logger         zerolog.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService, logger zerolog.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// GetCatalog handles GET /catalog
func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	resp, err := c.catalogService.GetCatalog(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// CreateAcademicYear handles POST /admin/academic-years
func (c *CatalogController) CreateAcademicYear(ctx *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	year, err := c.catalogService.CreateAcademicYear(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(year))
}

// ListAcademicYears handles GET /academic-years
func (c *CatalogController) ListAcademicYears(ctx *gin.Context) {
	years, err := c.catalogService.ListAcademicYears(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(years))
}

// CreateSemester handles POST /admin/semesters
func (c *CatalogController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateSemesterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	semester, err := c.catalogService.CreateSemester(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(semester))
}

// ListSemesters handles GET /semesters with an optional academicYearId filter
func (c *CatalogController) ListSemesters(ctx *gin.Context) {
	var academicYearID *int64
	if raw := ctx.Query("academicYearId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid academicYearId parameter").
				WithField("academicYearId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		academicYearID = &id
	}

	semesters, err := c.catalogService.ListSemesters(ctx.Request.Context(), academicYearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(semesters))
}

// GetSemester handles GET /semesters/:semesterId
func (c *CatalogController) GetSemester(ctx *gin.Context) {
	semesterID, ok := pathID(ctx, "semesterId")
	if !ok {
		return
	}

	semester, err := c.catalogService.GetSemester(ctx.Request.Context(), semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(semester))
}

// CreateBranch handles POST /admin/branches
func (c *CatalogController) CreateBranch(ctx *gin.Context) {
	var req dto.CreateBranchRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	branch, err := c.catalogService.CreateBranch(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(branch))
}

// ListBranches handles GET /branches
func (c *CatalogController) ListBranches(ctx *gin.Context) {
	branches, err := c.catalogService.ListBranches(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(branches))
}

// CreateDivision handles POST /admin/divisions
func (c *CatalogController) CreateDivision(ctx *gin.Context) {
	var req dto.CreateDivisionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	division, err := c.catalogService.CreateDivision(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(division))
}

// ListDivisions handles GET /divisions
func (c *CatalogController) ListDivisions(ctx *gin.Context) {
	divisions, err := c.catalogService.ListDivisions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(divisions))
}

// GetDivision handles GET /divisions/:divisionId
func (c *CatalogController) GetDivision(ctx *gin.Context) {
	divisionID, ok := pathID(ctx, "divisionId")
	if !ok {
		return
	}

	division, err := c.catalogService.GetDivision(ctx.Request.Context(), divisionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(division))
}

// CreateCourse handles POST /admin/courses
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.catalogService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// GetCourse handles GET /courses/:courseId
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.catalogService.GetCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

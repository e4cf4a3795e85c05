package dto

import "github.com/Chippsss/sms-backend/internal/app/models"

// CreateAcademicYearRequest creates one academic year
type CreateAcademicYearRequest struct {
	YearLabel string `json:"yearLabel" binding:"required,max=20"`
}

// CreateSemesterRequest creates one semester inside an academic year
type CreateSemesterRequest struct {
	Ordinal        models.SemesterOrdinal `json:"ordinal" binding:"required"`
	AcademicYearID int64                  `json:"academicYearId" binding:"required,min=1"`
}

// CreateBranchRequest creates one branch
type CreateBranchRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Code string `json:"code" binding:"required,max=10"`
}

// CreateDivisionRequest creates one division inside a branch and year
type CreateDivisionRequest struct {
	Name           string `json:"name" binding:"required,max=10"`
	BranchID       int64  `json:"branchId" binding:"required,min=1"`
	AcademicYearID int64  `json:"academicYearId" binding:"required,min=1"`
}

// CreateCourseRequest creates one course inside the catalog hierarchy
type CreateCourseRequest struct {
	Name           string `json:"name" binding:"required,max=30"`
	Code           string `json:"code" binding:"required,max=10"`
	BranchID       int64  `json:"branchId" binding:"required,min=1"`
	AcademicYearID int64  `json:"academicYearId" binding:"required,min=1"`
	SemesterID     int64  `json:"semesterId" binding:"required,min=1"`
	TeacherID      *int64 `json:"teacherId,omitempty"`
}

// CatalogListResponse bundles the reference data a client needs to render
// selection widgets in one round trip.
type CatalogListResponse struct {
	AcademicYears []*models.AcademicYear `json:"academicYears"`
	Semesters     []*models.Semester     `json:"semesters"`
	Branches      []*models.Branch       `json:"branches"`
	Divisions     []*models.Division     `json:"divisions"`
}

// Package seed creates the default records a fresh installation needs.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Chippsss/sms-backend/internal/app/models"
	appRepos "github.com/Chippsss/sms-backend/internal/app/repositories"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
	pkgAuth "github.com/Chippsss/sms-backend/internal/pkg/auth"
)

// DefaultAdminEmail is the provisioning account created on first start.
// The password must be changed after the first login.
const (
	DefaultAdminEmail    = "admin@school.edu"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData provisions the default admin account and a starter
// catalog if they don't exist. Errors are collected so one failed item
// does not block the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	catalogRepo := appRepos.NewCatalogRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	hashed, err := pkgAuth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}
	admin := &appModels.User{
		Email:     DefaultAdminEmail,
		Password:  hashed,
		FirstName: "System",
		LastName:  "Administrator",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating default admin account")
			finalErr = errors.Join(finalErr, err)
		}
	} else {
		lgr.Info().Str("email", DefaultAdminEmail).Msg("Default admin account created, change the password")
	}

	// --- Starter catalog --- //
	year := &appModels.AcademicYear{YearLabel: "2024-25"}
	err = catalogRepo.CreateAcademicYear(ctx, year)
	if err != nil && !errors.Is(err, apperrors.ErrAcademicYearAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default academic year")
		finalErr = errors.Join(finalErr, err)
	} else if errors.Is(err, apperrors.ErrAcademicYearAlreadyExists) {
		years, errGet := catalogRepo.GetAllAcademicYears(ctx)
		if errGet != nil {
			finalErr = errors.Join(finalErr, errGet)
		} else {
			for _, y := range years {
				if y.YearLabel == year.YearLabel {
					year.ID = y.ID
					break
				}
			}
		}
	}

	branch := &appModels.Branch{Name: "Computer Science", Code: "CS"}
	err = catalogRepo.CreateBranch(ctx, branch)
	if err != nil && !errors.Is(err, apperrors.ErrBranchAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default branch")
		finalErr = errors.Join(finalErr, err)
	} else if errors.Is(err, apperrors.ErrBranchAlreadyExists) {
		branches, errGet := catalogRepo.GetAllBranches(ctx)
		if errGet != nil {
			finalErr = errors.Join(finalErr, errGet)
		} else {
			for _, b := range branches {
				if b.Code == branch.Code {
					branch.ID = b.ID
					break
				}
			}
		}
	}

	if year.ID > 0 {
		existing, errGet := catalogRepo.GetSemestersByAcademicYear(ctx, year.ID)
		if errGet != nil {
			finalErr = errors.Join(finalErr, errGet)
		} else if len(existing) == 0 {
			for _, ordinal := range []appModels.SemesterOrdinal{
				appModels.SemesterFirst, appModels.SemesterSecond,
				appModels.SemesterThird, appModels.SemesterFourth,
			} {
				semester := &appModels.Semester{Ordinal: ordinal, AcademicYearID: year.ID}
				if err := catalogRepo.CreateSemester(ctx, semester); err != nil {
					lgr.Error().Err(err).Str("ordinal", string(ordinal)).Msg("Error creating default semester")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}

	if year.ID > 0 && branch.ID > 0 {
		divisions, errGet := catalogRepo.GetAllDivisions(ctx)
		if errGet != nil {
			finalErr = errors.Join(finalErr, errGet)
		} else if len(divisions) == 0 {
			for _, name := range []string{"A", "B"} {
				division := &appModels.Division{Name: name, BranchID: branch.ID, AcademicYearID: year.ID}
				if err := catalogRepo.CreateDivision(ctx, division); err != nil {
					lgr.Error().Err(err).Str("name", name).Msg("Error creating default division")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}

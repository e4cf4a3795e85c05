// Package auth resolves authenticated users to their domain profiles and
// enforces profile-scoped access rules.
package auth

import (
	"context"
	"errors"

	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/repositories"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
	"github.com/Chippsss/sms-backend/internal/pkg/logger"
)

// ScopeKind tags what kind of profile an identity resolved to.
type ScopeKind string

const (
	ScopeTeacher  ScopeKind = "TEACHER"
	ScopeStudent  ScopeKind = "STUDENT"
	ScopeUnlinked ScopeKind = "UNLINKED"
)

// Scope is the resolved identity of an authenticated user. Exactly one of
// Teacher or Student is non-nil unless Kind is ScopeUnlinked.
type Scope struct {
	Kind    ScopeKind
	User    *models.User
	Teacher *models.Teacher
	Student *models.Student
}

// IdentityResolver maps an authenticated user id to its teacher or student
// profile. Every profile-scoped endpoint goes through it; there is no
// fallback to an arbitrary row.
type IdentityResolver struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	teacherRepo *repositories.TeacherRepository
}

// NewIdentityResolver creates a new IdentityResolver
func NewIdentityResolver(userRepo *repositories.UserRepository, studentRepo *repositories.StudentRepository, teacherRepo *repositories.TeacherRepository) *IdentityResolver {
	return &IdentityResolver{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
	}
}

// Resolve looks up the profile linked to a user id. Teacher profiles win
// when a user somehow has both. A user with neither profile resolves to an
// unlinked scope, not an error; callers that require a profile use
// ResolveTeacher or ResolveStudent.
func (r *IdentityResolver) Resolve(ctx context.Context, userID int64) (*Scope, error) {
	user, err := r.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	teacher, err := r.teacherRepo.GetTeacherByUserID(ctx, userID)
	if err == nil {
		return &Scope{Kind: ScopeTeacher, User: user, Teacher: teacher}, nil
	}
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		return nil, err
	}

	student, err := r.studentRepo.GetStudentByUserID(ctx, userID)
	if err == nil {
		return &Scope{Kind: ScopeStudent, User: user, Student: student}, nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	logger.Debug().Int64("userID", userID).Msg("User has no linked teacher or student profile")
	return &Scope{Kind: ScopeUnlinked, User: user}, nil
}

// ResolveTeacher resolves a user id to its teacher profile or fails with
// ErrNoProfile.
func (r *IdentityResolver) ResolveTeacher(ctx context.Context, userID int64) (*models.Teacher, error) {
	teacher, err := r.teacherRepo.GetTeacherByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeacherNotFound) {
			return nil, apperrors.ErrNoProfile
		}
		return nil, err
	}
	return teacher, nil
}

// ResolveStudent resolves a user id to its student profile or fails with
// ErrNoProfile.
func (r *IdentityResolver) ResolveStudent(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := r.studentRepo.GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrNoProfile
		}
		return nil, err
	}
	return student, nil
}

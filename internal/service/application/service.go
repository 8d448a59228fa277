package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/application"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/query"
	"github.com/google/uuid"
)

type ApplicationServiceImpl struct {
	applicationRepo application.ApplicationRepository
	now             func() time.Time
}

func NewApplicationService(applicationRepo application.ApplicationRepository) application.ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// ListApplications implements application.ApplicationService.
func (s *ApplicationServiceImpl) ListApplications(ctx context.Context, filter application.ApplicationFilter) (application.ListApplicationResponse, error) {
	filter.Normalize()

	applications, total, err := s.applicationRepo.List(ctx, filter)
	if err != nil {
		return application.ListApplicationResponse{}, fmt.Errorf("failed to list applications: %w", err)
	}

	items := make([]application.ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		items = append(items, app.ToResponse())
	}

	return query.NewResult(items, total, filter.Pagination), nil
}

// GetApplication implements application.ApplicationService.
func (s *ApplicationServiceImpl) GetApplication(ctx context.Context, id string) (application.ApplicationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return application.ApplicationResponse{}, application.ErrApplicationNotFound
	}

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			return application.ApplicationResponse{}, err
		}
		return application.ApplicationResponse{}, fmt.Errorf("failed to get application: %w", err)
	}
	return app.ToResponse(), nil
}

// SubmitApplication implements application.ApplicationService.
func (s *ApplicationServiceImpl) SubmitApplication(ctx context.Context, req application.CreateApplicationRequest) (application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}

	created, err := s.applicationRepo.Create(ctx, req.ToEntity(s.now()))
	if err != nil {
		return application.ApplicationResponse{}, fmt.Errorf("failed to submit application: %w", err)
	}
	return created.ToResponse(), nil
}

// UpdateStatus implements application.ApplicationService.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, id string, req application.UpdateStatusRequest, reviewer auth.Identity) (application.ApplicationResponse, error) {
	if reviewer.UserID == "" {
		return application.ApplicationResponse{}, application.ErrReviewerRequired
	}
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return application.ApplicationResponse{}, application.ErrApplicationNotFound
	}

	updated, err := s.applicationRepo.UpdateStatus(ctx, id, application.Review{
		Status:     application.Status(req.Status),
		Notes:      req.Notes,
		ReviewedBy: reviewer.UserID,
		ReviewDate: s.now(),
	})
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			return application.ApplicationResponse{}, err
		}
		return application.ApplicationResponse{}, fmt.Errorf("failed to update application status: %w", err)
	}
	return updated.ToResponse(), nil
}

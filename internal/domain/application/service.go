package application

import (
	"context"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
)

type ApplicationService interface {
	ListApplications(ctx context.Context, filter ApplicationFilter) (ListApplicationResponse, error)
	GetApplication(ctx context.Context, id string) (ApplicationResponse, error)
	// SubmitApplication is public; status always starts as pending.
	SubmitApplication(ctx context.Context, req CreateApplicationRequest) (ApplicationResponse, error)
	// UpdateStatus stamps reviewer and review date on every call.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest, reviewer auth.Identity) (ApplicationResponse, error)
}

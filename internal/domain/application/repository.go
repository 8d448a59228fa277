package application

import "context"

type ApplicationRepository interface {
	List(ctx context.Context, filter ApplicationFilter) ([]Application, int64, error)
	GetByID(ctx context.Context, id string) (Application, error)
	Create(ctx context.Context, newApplication Application) (Application, error)
	UpdateStatus(ctx context.Context, id string, review Review) (Application, error)
}

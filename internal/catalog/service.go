package catalog

import "context"

type Service interface {
	Create(ctx context.Context, req CreateTreatmentRequest) (*Treatment, error)
	GetByID(ctx context.Context, id int) (*Treatment, error)
	ListActive(ctx context.Context) ([]Treatment, error)
	ListAll(ctx context.Context) ([]Treatment, error)
	Update(ctx context.Context, id int, req UpdateTreatmentRequest) (*Treatment, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateTreatmentRequest) (*Treatment, error) {
	return s.repo.Create(ctx, &Treatment{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		ImageURL:        req.ImageURL,
	})
}

func (s *service) GetByID(ctx context.Context, id int) (*Treatment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context) ([]Treatment, error) {
	return s.repo.List(ctx, true)
}

func (s *service) ListAll(ctx context.Context) ([]Treatment, error) {
	return s.repo.List(ctx, false)
}

func (s *service) Update(ctx context.Context, id int, req UpdateTreatmentRequest) (*Treatment, error) {
	return s.repo.Update(ctx, &Treatment{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		ImageURL:        req.ImageURL,
		IsActive:        *req.IsActive,
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

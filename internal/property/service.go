package property

import "context"

type Service interface {
	Create(ctx context.Context, req CreatePropertyRequest) (*Property, error)
	GetByID(ctx context.Context, id int) (*Property, error)
	ListActive(ctx context.Context) ([]Property, error)
	ListAll(ctx context.Context) ([]Property, error)
	Update(ctx context.Context, id int, req UpdatePropertyRequest) (*Property, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePropertyRequest) (*Property, error) {
	return s.repo.Create(ctx, &Property{
		Name:               req.Name,
		Description:        req.Description,
		Location:           req.Location,
		PricePerNightCents: req.PricePerNightCents,
		Capacity:           req.Capacity,
		ImageURLs:          req.ImageURLs,
	})
}

func (s *service) GetByID(ctx context.Context, id int) (*Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context) ([]Property, error) {
	return s.repo.List(ctx, true)
}

func (s *service) ListAll(ctx context.Context) ([]Property, error) {
	return s.repo.List(ctx, false)
}

func (s *service) Update(ctx context.Context, id int, req UpdatePropertyRequest) (*Property, error) {
	return s.repo.Update(ctx, &Property{
		ID:                 id,
		Name:               req.Name,
		Description:        req.Description,
		Location:           req.Location,
		PricePerNightCents: req.PricePerNightCents,
		Capacity:           req.Capacity,
		ImageURLs:          req.ImageURLs,
		IsActive:           *req.IsActive,
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

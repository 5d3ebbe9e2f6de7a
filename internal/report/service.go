package report

import "context"

type Service interface {
	Occupancy(ctx context.Context) (*Occupancy, error)
	Revenue(ctx context.Context) (*Revenue, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Occupancy(ctx context.Context) (*Occupancy, error) {
	return s.repo.Occupancy(ctx)
}

func (s *service) Revenue(ctx context.Context) (*Revenue, error) {
	return s.repo.Revenue(ctx)
}

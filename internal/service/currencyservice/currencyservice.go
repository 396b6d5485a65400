package currencyservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/viwallet/viwallet/internal/domain"
)

type Repo interface {
	List(ctx context.Context) ([]domain.Currency, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get currencies", zap.Error(err))
		return nil, err
	}
	return currencies, nil
}

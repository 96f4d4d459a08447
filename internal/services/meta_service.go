package services

import (
	"context"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
	repo "github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository"
)

type MetaService struct{ r repo.Meta }

func NewMetaService(r repo.Meta) *MetaService { return &MetaService{r: r} }

func (s *MetaService) Periods(ctx context.Context) ([]models.Period, error) {
	return s.r.Periods(ctx)
}

// QuartersForYear falls back to all four quarters when the year has no data,
// so the dashboard selectors never render empty.
func (s *MetaService) QuartersForYear(ctx context.Context, year int) ([]int, error) {
	qs, err := s.r.QuartersForYear(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return []int{1, 2, 3, 4}, nil
	}
	return qs, nil
}

func (s *MetaService) States(ctx context.Context, year, quarter int) ([]string, error) {
	return s.r.States(ctx, year, quarter)
}

func (s *MetaService) ReferenceStates(ctx context.Context) ([]string, error) {
	return s.r.ReferenceStates(ctx)
}

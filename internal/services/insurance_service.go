package services

import (
	"context"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
	repo "github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository"
	"golang.org/x/sync/errgroup"
)

type InsuranceService struct {
	ins repo.Insurance
}

func NewInsuranceService(i repo.Insurance) *InsuranceService {
	return &InsuranceService{ins: i}
}

type InsuranceOverview struct {
	ByState   []models.StateValue    `json:"by_state"`
	TypeSplit []models.CategorySplit `json:"type_split"`
}

func (s *InsuranceService) Overview(ctx context.Context, year, quarter int) (InsuranceOverview, error) {
	var out InsuranceOverview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.ByState, err = s.ins.AmountByState(ctx, year, quarter)
		return err
	})
	g.Go(func() error {
		var err error
		out.TypeSplit, err = s.ins.TypeSplit(ctx, year, quarter)
		return err
	})
	if err := g.Wait(); err != nil {
		return InsuranceOverview{}, err
	}
	return out, nil
}

func (s *InsuranceService) AmountByState(ctx context.Context, year, quarter int) ([]models.StateValue, error) {
	return s.ins.AmountByState(ctx, year, quarter)
}

func (s *InsuranceService) TopDistricts(ctx context.Context, state string, year, quarter int) ([]models.TopGeoRow, error) {
	return s.ins.TopDistricts(ctx, state, year, quarter, topGeoLimit)
}

func (s *InsuranceService) States(ctx context.Context, year, quarter int) ([]string, error) {
	return s.ins.States(ctx, year, quarter)
}

func (s *InsuranceService) YoYByState(ctx context.Context, year, quarter int) ([]models.YoYRow, error) {
	return s.ins.YoYByState(ctx, year, quarter)
}

func (s *InsuranceService) VsTransactions(ctx context.Context, year, quarter int) ([]models.InsuranceRatio, error) {
	return s.ins.VsTransactions(ctx, year, quarter)
}

package services

import (
	"context"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
	repo "github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository"
	"golang.org/x/sync/errgroup"
)

type UserService struct {
	usr repo.Users
	rk  repo.Rankings
}

func NewUserService(u repo.Users, rk repo.Rankings) *UserService {
	return &UserService{usr: u, rk: rk}
}

type UserOverview struct {
	KPIs    models.UserKPIs     `json:"kpis"`
	ByState []models.StateValue `json:"by_state"`
}

type UserStateSummary struct {
	KPIs        models.UserKPIs        `json:"kpis"`
	Districts   []models.DistrictUsers `json:"districts"`
	TopPincodes []models.PincodeUsers  `json:"top_pincodes"`
}

func (s *UserService) Overview(ctx context.Context, year, quarter int) (UserOverview, error) {
	var out UserOverview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.KPIs, err = s.usr.IndiaKPIs(ctx, year, quarter)
		return err
	})
	g.Go(func() error {
		var err error
		out.ByState, err = s.usr.UsersByState(ctx, year, quarter)
		return err
	})
	if err := g.Wait(); err != nil {
		return UserOverview{}, err
	}
	return out, nil
}

func (s *UserService) StateSummary(ctx context.Context, state string, year, quarter int) (UserStateSummary, error) {
	var out UserStateSummary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.KPIs, err = s.usr.StateKPIs(ctx, state, year, quarter)
		return err
	})
	g.Go(func() error {
		var err error
		out.Districts, err = s.usr.DistrictUsers(ctx, state, year, quarter, topGeoLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.TopPincodes, err = s.rk.TopPincodesByUsers(ctx, state, year, quarter, topGeoLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return UserStateSummary{}, err
	}
	return out, nil
}

func (s *UserService) UsersByState(ctx context.Context, year, quarter int) ([]models.StateValue, error) {
	return s.usr.UsersByState(ctx, year, quarter)
}

func (s *UserService) Districts(ctx context.Context, state string, year, quarter int) ([]string, error) {
	return s.usr.Districts(ctx, state, year, quarter)
}

func (s *UserService) Brands(ctx context.Context, year, quarter int) ([]models.BrandUsage, error) {
	return s.usr.Brands(ctx, year, quarter)
}

func (s *UserService) BrandNames(ctx context.Context, year, quarter int) ([]string, error) {
	return s.usr.BrandNames(ctx, year, quarter)
}

func (s *UserService) TopBrandPerState(ctx context.Context, year, quarter int) ([]models.StateBrand, error) {
	return s.usr.TopBrandPerState(ctx, year, quarter)
}

func (s *UserService) BrandTrend(ctx context.Context, brand string) ([]models.TrendPoint, error) {
	return s.usr.BrandTrend(ctx, brand)
}

func (s *UserService) BrandShareByState(ctx context.Context, brand string, year, quarter int) ([]models.BrandShare, error) {
	return s.usr.BrandShareByState(ctx, brand, year, quarter)
}

func (s *UserService) Engagement(ctx context.Context, year, quarter int) ([]models.Engagement, error) {
	return s.usr.Engagement(ctx, year, quarter)
}

// LatestCommonPeriod is the newest period present in both the aggregate and
// map user tables, used as the default selection for the device-share views.
func (s *UserService) LatestCommonPeriod(ctx context.Context) (models.Period, error) {
	return s.usr.LatestCommonPeriod(ctx)
}

package services

import (
	"context"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
	repo "github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository"
)

type RankingService struct {
	rk repo.Rankings
}

func NewRankingService(rk repo.Rankings) *RankingService {
	return &RankingService{rk: rk}
}

// Top returns the leaderboard for one entity level. An empty state means the
// countrywide ranking; for states that is read from the country-level slice,
// for districts and pincodes it spans every state's slice.
func (s *RankingService) Top(ctx context.Context, state string, year, quarter int, entity models.EntityType, limit int) ([]models.TopGeoRow, error) {
	if limit <= 0 {
		limit = topGeoLimit
	}
	if state == "" {
		return s.rk.TopGeoCountrywide(ctx, year, quarter, entity, limit)
	}
	return s.rk.TopGeoInState(ctx, state, year, quarter, entity, limit)
}

func (s *RankingService) TopPincodesByUsers(ctx context.Context, state string, year, quarter, limit int) ([]models.PincodeUsers, error) {
	if limit <= 0 {
		limit = topGeoLimit
	}
	return s.rk.TopPincodesByUsers(ctx, state, year, quarter, limit)
}

func (s *RankingService) DistrictNames(ctx context.Context, state string, year, quarter int) ([]string, error) {
	return s.rk.DistrictNames(ctx, state, year, quarter)
}

func (s *RankingService) PincodeNames(ctx context.Context, state string, year, quarter int, source string) ([]string, error) {
	return s.rk.PincodeNames(ctx, state, year, quarter, source)
}

func (s *RankingService) StatesWithDistricts(ctx context.Context, year, quarter int) ([]string, error) {
	return s.rk.StatesWithDistricts(ctx, year, quarter)
}

func (s *RankingService) DistrictShare(ctx context.Context, state string, year, quarter int) ([]models.DistrictShare, error) {
	return s.rk.DistrictShare(ctx, state, year, quarter)
}

func (s *RankingService) DistrictYoY(ctx context.Context, state string, year, quarter int) ([]models.YoYRow, error) {
	return s.rk.DistrictYoY(ctx, state, year, quarter)
}

package services

import (
	"context"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
	repo "github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	topStatesLimit = 10
	topGeoLimit    = 10
)

type TransactionService struct {
	txn repo.Transactions
	rk  repo.Rankings
}

func NewTransactionService(t repo.Transactions, rk repo.Rankings) *TransactionService {
	return &TransactionService{txn: t, rk: rk}
}

// TxnOverview is the home-view payload for the Transactions lens: India
// totals, the per-state values driving the map, and the top-10 ranking.
type TxnOverview struct {
	KPIs      models.TxnKPIs      `json:"kpis"`
	ByState   []models.StateValue `json:"by_state"`
	TopStates []models.StateValue `json:"top_states"`
}

// StateSummary is the drilldown payload for one state.
type StateSummary struct {
	KPIs         models.TxnKPIs         `json:"kpis"`
	Categories   []models.CategorySplit `json:"categories"`
	TopDistricts []models.TopGeoRow     `json:"top_districts"`
	TopPincodes  []models.TopGeoRow     `json:"top_pincodes"`
}

// Overview runs the three overview queries concurrently; each interaction is
// still one synchronous request from the caller's point of view.
func (s *TransactionService) Overview(ctx context.Context, year, quarter int) (TxnOverview, error) {
	var out TxnOverview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.KPIs, err = s.txn.IndiaKPIs(ctx, year, quarter)
		return err
	})
	g.Go(func() error {
		var err error
		out.ByState, err = s.txn.AmountByState(ctx, year, quarter)
		return err
	})
	g.Go(func() error {
		var err error
		out.TopStates, err = s.txn.TopStatesByAmount(ctx, year, quarter, topStatesLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return TxnOverview{}, err
	}
	return out, nil
}

func (s *TransactionService) StateSummary(ctx context.Context, state string, year, quarter int) (StateSummary, error) {
	var out StateSummary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.KPIs, err = s.txn.StateKPIs(ctx, state, year, quarter)
		return err
	})
	g.Go(func() error {
		var err error
		out.Categories, err = s.txn.ByCategory(ctx, state, year, quarter)
		return err
	})
	g.Go(func() error {
		var err error
		out.TopDistricts, err = s.rk.TopGeoInState(ctx, state, year, quarter, models.EntityDistrict, topGeoLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.TopPincodes, err = s.rk.TopGeoInState(ctx, state, year, quarter, models.EntityPincode, topGeoLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return StateSummary{}, err
	}
	return out, nil
}

func (s *TransactionService) AmountByState(ctx context.Context, year, quarter int) ([]models.StateValue, error) {
	return s.txn.AmountByState(ctx, year, quarter)
}

func (s *TransactionService) CategoryTotals(ctx context.Context, year, quarter int) ([]models.CategorySplit, error) {
	return s.txn.CategoryTotals(ctx, year, quarter)
}

func (s *TransactionService) ByCategory(ctx context.Context, state string, year, quarter int) ([]models.CategorySplit, error) {
	return s.txn.ByCategory(ctx, state, year, quarter)
}

func (s *TransactionService) StateTrend(ctx context.Context, state string) ([]models.TrendPoint, error) {
	return s.txn.StateTrend(ctx, state)
}

func (s *TransactionService) TopStates(ctx context.Context, year, quarter, limit int) ([]models.StateValue, error) {
	return s.txn.TopStatesByAmount(ctx, year, quarter, limit)
}

func (s *TransactionService) DistrictTotals(ctx context.Context, state string, year, quarter int) ([]models.TopGeoRow, error) {
	return s.txn.DistrictTotals(ctx, state, year, quarter)
}

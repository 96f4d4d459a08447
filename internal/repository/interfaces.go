package repository

import (
	"context"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

// Meta exposes the period and geography dimensions of the loaded data.
type Meta interface {
	Periods(ctx context.Context) ([]models.Period, error)
	QuartersForYear(ctx context.Context, year int) ([]int, error)
	States(ctx context.Context, year, quarter int) ([]string, error)
	ReferenceStates(ctx context.Context) ([]string, error)
}

// Transactions covers the aggregated_transaction and map_transaction tables.
type Transactions interface {
	IndiaKPIs(ctx context.Context, year, quarter int) (models.TxnKPIs, error)
	StateKPIs(ctx context.Context, state string, year, quarter int) (models.TxnKPIs, error)
	AmountByState(ctx context.Context, year, quarter int) ([]models.StateValue, error)
	ByCategory(ctx context.Context, state string, year, quarter int) ([]models.CategorySplit, error)
	CategoryTotals(ctx context.Context, year, quarter int) ([]models.CategorySplit, error)
	StateTrend(ctx context.Context, state string) ([]models.TrendPoint, error)
	TopStatesByAmount(ctx context.Context, year, quarter, limit int) ([]models.StateValue, error)
	DistrictTotals(ctx context.Context, state string, year, quarter int) ([]models.TopGeoRow, error)
}

// Users covers the aggregated_user and map_user tables.
type Users interface {
	IndiaKPIs(ctx context.Context, year, quarter int) (models.UserKPIs, error)
	StateKPIs(ctx context.Context, state string, year, quarter int) (models.UserKPIs, error)
	UsersByState(ctx context.Context, year, quarter int) ([]models.StateValue, error)
	DistrictUsers(ctx context.Context, state string, year, quarter, limit int) ([]models.DistrictUsers, error)
	Districts(ctx context.Context, state string, year, quarter int) ([]string, error)
	Brands(ctx context.Context, year, quarter int) ([]models.BrandUsage, error)
	BrandNames(ctx context.Context, year, quarter int) ([]string, error)
	TopBrandPerState(ctx context.Context, year, quarter int) ([]models.StateBrand, error)
	BrandTrend(ctx context.Context, brand string) ([]models.TrendPoint, error)
	BrandShareByState(ctx context.Context, brand string, year, quarter int) ([]models.BrandShare, error)
	Engagement(ctx context.Context, year, quarter int) ([]models.Engagement, error)
	LatestCommonPeriod(ctx context.Context) (models.Period, error)
}

// Insurance covers the aggregated_insurance and map_insurance tables.
type Insurance interface {
	AmountByState(ctx context.Context, year, quarter int) ([]models.StateValue, error)
	TypeSplit(ctx context.Context, year, quarter int) ([]models.CategorySplit, error)
	TopDistricts(ctx context.Context, state string, year, quarter, limit int) ([]models.TopGeoRow, error)
	States(ctx context.Context, year, quarter int) ([]string, error)
	YoYByState(ctx context.Context, year, quarter int) ([]models.YoYRow, error)
	VsTransactions(ctx context.Context, year, quarter int) ([]models.InsuranceRatio, error)
}

// Rankings covers the top_map and top_user tables.
type Rankings interface {
	TopGeoInState(ctx context.Context, state string, year, quarter int, entity models.EntityType, limit int) ([]models.TopGeoRow, error)
	TopGeoCountrywide(ctx context.Context, year, quarter int, entity models.EntityType, limit int) ([]models.TopGeoRow, error)
	TopPincodesByUsers(ctx context.Context, state string, year, quarter, limit int) ([]models.PincodeUsers, error)
	DistrictNames(ctx context.Context, state string, year, quarter int) ([]string, error)
	PincodeNames(ctx context.Context, state string, year, quarter int, source string) ([]string, error)
	StatesWithDistricts(ctx context.Context, year, quarter int) ([]string, error)
	DistrictShare(ctx context.Context, state string, year, quarter int) ([]models.DistrictShare, error)
	DistrictYoY(ctx context.Context, state string, year, quarter int) ([]models.YoYRow, error)
}

// SliceKey identifies one (state, year, quarter) slice of a table. State is
// empty for country-level top rankings.
type SliceKey struct {
	State   string
	Year    int
	Quarter int
}

// Ingest is the loader's write surface. Replace* calls delete the slice and
// bulk-insert the new rows inside one transaction.
type Ingest interface {
	ValidStates(ctx context.Context) (map[string]bool, error)
	ReplaceAggTransaction(ctx context.Context, key SliceKey, rows []models.AggTransaction) error
	ReplaceAggUser(ctx context.Context, key SliceKey, rows []models.AggUser) error
	ReplaceAggInsurance(ctx context.Context, key SliceKey, rows []models.AggInsurance) error
	ReplaceMapTransaction(ctx context.Context, key SliceKey, rows []models.MapTransaction) error
	ReplaceMapUser(ctx context.Context, key SliceKey, rows []models.MapUser) error
	ReplaceMapInsurance(ctx context.Context, key SliceKey, rows []models.MapInsurance) error
	ReplaceTopMap(ctx context.Context, key SliceKey, rows []models.TopMap) error
	ReplaceTopUser(ctx context.Context, key SliceKey, rows []models.TopUser) error
}

// LoadRuns records loader invocations in the load_runs audit table.
type LoadRuns interface {
	Start(ctx context.Context, run models.LoadRun) error
	Finish(ctx context.Context, run models.LoadRun) error
}

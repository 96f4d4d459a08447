package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/config"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/geo"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/logger"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/services"
)

// Canned dataset behind the stub repositories: two states, one period.
var (
	stubPeriods = []models.Period{{Year: 2021, Quarter: 1}, {Year: 2021, Quarter: 2}}

	stubByState = []models.StateValue{
		{State: "Karnataka", Value: 5000},
		{State: "Tamil Nadu", Value: 4000},
	}

	stubCategories = map[string][]models.CategorySplit{
		"Karnataka":  {{Category: "Peer-to-peer payments", Amount: 3000, Count: 30}},
		"Tamil Nadu": {{Category: "Merchant payments", Amount: 4000, Count: 40}},
	}
)

type stubMeta struct{}

func (stubMeta) Periods(context.Context) ([]models.Period, error) { return stubPeriods, nil }
func (stubMeta) QuartersForYear(_ context.Context, year int) ([]int, error) {
	if year == 2021 {
		return []int{1, 2}, nil
	}
	return nil, nil
}
func (stubMeta) States(context.Context, int, int) ([]string, error) {
	return []string{"Karnataka", "Tamil Nadu"}, nil
}
func (stubMeta) ReferenceStates(context.Context) ([]string, error) {
	return []string{"Karnataka", "Tamil Nadu"}, nil
}

type stubTransactions struct{}

func (stubTransactions) IndiaKPIs(context.Context, int, int) (models.TxnKPIs, error) {
	return models.TxnKPIs{Amount: 9000, Count: 70, AvgValue: 128.57}, nil
}
func (stubTransactions) StateKPIs(_ context.Context, state string, _, _ int) (models.TxnKPIs, error) {
	for _, sv := range stubByState {
		if sv.State == state {
			return models.TxnKPIs{Amount: sv.Value, Count: 10, AvgValue: sv.Value / 10}, nil
		}
	}
	return models.TxnKPIs{}, nil
}
func (stubTransactions) AmountByState(context.Context, int, int) ([]models.StateValue, error) {
	return stubByState, nil
}
func (stubTransactions) ByCategory(_ context.Context, state string, _, _ int) ([]models.CategorySplit, error) {
	return stubCategories[state], nil
}
func (stubTransactions) CategoryTotals(context.Context, int, int) ([]models.CategorySplit, error) {
	return append(stubCategories["Karnataka"], stubCategories["Tamil Nadu"]...), nil
}
func (stubTransactions) StateTrend(_ context.Context, state string) ([]models.TrendPoint, error) {
	return []models.TrendPoint{{Year: 2021, Quarter: 1, Value: 100}, {Year: 2021, Quarter: 2, Value: 200}}, nil
}
func (stubTransactions) TopStatesByAmount(_ context.Context, _, _, limit int) ([]models.StateValue, error) {
	if limit < len(stubByState) {
		return stubByState[:limit], nil
	}
	return stubByState, nil
}
func (stubTransactions) DistrictTotals(_ context.Context, state string, _, _ int) ([]models.TopGeoRow, error) {
	if state != "Karnataka" {
		return nil, nil
	}
	return []models.TopGeoRow{{Name: "Bengaluru Urban", Count: 50, Amount: 2500}}, nil
}

type stubUsers struct{}

func (stubUsers) IndiaKPIs(context.Context, int, int) (models.UserKPIs, error) {
	return models.UserKPIs{RegisteredUsers: 1200, AppOpens: 6000}, nil
}
func (stubUsers) StateKPIs(_ context.Context, state string, _, _ int) (models.UserKPIs, error) {
	return models.UserKPIs{RegisteredUsers: 500, AppOpens: 2500}, nil
}
func (stubUsers) UsersByState(context.Context, int, int) ([]models.StateValue, error) {
	return []models.StateValue{{State: "Karnataka", Value: 700}, {State: "Tamil Nadu", Value: 500}}, nil
}
func (stubUsers) DistrictUsers(context.Context, string, int, int, int) ([]models.DistrictUsers, error) {
	return []models.DistrictUsers{{District: "Bengaluru Urban", RegisteredUsers: 400, AppOpens: 2000}}, nil
}
func (stubUsers) Districts(_ context.Context, state string, _, _ int) ([]string, error) {
	if state != "Karnataka" {
		return nil, nil
	}
	return []string{"Bengaluru Urban", "Mysuru"}, nil
}
func (stubUsers) Brands(context.Context, int, int) ([]models.BrandUsage, error) {
	return []models.BrandUsage{{Brand: "Xiaomi", Users: 300, AvgSharePct: 25.5}}, nil
}
func (stubUsers) BrandNames(context.Context, int, int) ([]string, error) {
	return []string{"Xiaomi"}, nil
}
func (stubUsers) TopBrandPerState(context.Context, int, int) ([]models.StateBrand, error) {
	return []models.StateBrand{{State: "Karnataka", Brand: "Xiaomi", Users: 300}}, nil
}
func (stubUsers) BrandTrend(context.Context, string) ([]models.TrendPoint, error) {
	return []models.TrendPoint{{Year: 2021, Quarter: 1, Value: 300}}, nil
}
func (stubUsers) BrandShareByState(context.Context, string, int, int) ([]models.BrandShare, error) {
	return []models.BrandShare{{State: "Karnataka", SharePct: 25.5}}, nil
}
func (stubUsers) Engagement(context.Context, int, int) ([]models.Engagement, error) {
	opens := 5.0
	return []models.Engagement{{State: "Karnataka", RegisteredUsers: 700, AppOpens: 3500, OpensPerUser: &opens}}, nil
}
func (stubUsers) LatestCommonPeriod(context.Context) (models.Period, error) {
	return models.Period{Year: 2021, Quarter: 2}, nil
}

type stubInsurance struct{}

func (stubInsurance) AmountByState(context.Context, int, int) ([]models.StateValue, error) {
	return []models.StateValue{{State: "Karnataka", Value: 100}}, nil
}
func (stubInsurance) TypeSplit(context.Context, int, int) ([]models.CategorySplit, error) {
	return []models.CategorySplit{{Category: "Insurance", Amount: 100, Count: 2}}, nil
}
func (stubInsurance) TopDistricts(context.Context, string, int, int, int) ([]models.TopGeoRow, error) {
	return []models.TopGeoRow{{Name: "Bengaluru Urban", Count: 2, Amount: 100}}, nil
}
func (stubInsurance) States(context.Context, int, int) ([]string, error) {
	return []string{"Karnataka"}, nil
}
func (stubInsurance) YoYByState(context.Context, int, int) ([]models.YoYRow, error) {
	prev, pct := 80.0, 25.0
	return []models.YoYRow{{Name: "Karnataka", CurAmount: 100, PrevAmount: &prev, Pct: &pct}}, nil
}
func (stubInsurance) VsTransactions(context.Context, int, int) ([]models.InsuranceRatio, error) {
	pct := 2.0
	return []models.InsuranceRatio{{State: "Karnataka", InsuranceAmount: 100, TransactionAmount: 5000, Pct: &pct}}, nil
}

type stubRankings struct{}

func (stubRankings) TopGeoInState(_ context.Context, state string, _, _ int, entity models.EntityType, _ int) ([]models.TopGeoRow, error) {
	if state != "Karnataka" || entity != models.EntityDistrict {
		return nil, nil
	}
	return []models.TopGeoRow{{Name: "Bengaluru Urban", Count: 50, Amount: 2500}}, nil
}
func (stubRankings) TopGeoCountrywide(_ context.Context, _, _ int, entity models.EntityType, _ int) ([]models.TopGeoRow, error) {
	if entity == models.EntityState {
		return []models.TopGeoRow{{Name: "Karnataka", Count: 70, Amount: 5000}}, nil
	}
	return []models.TopGeoRow{{Name: "Bengaluru Urban", State: "Karnataka", Count: 50, Amount: 2500}}, nil
}
func (stubRankings) TopPincodesByUsers(context.Context, string, int, int, int) ([]models.PincodeUsers, error) {
	return []models.PincodeUsers{{Pincode: "560001", RegisteredUsers: 120}}, nil
}
func (stubRankings) DistrictNames(context.Context, string, int, int) ([]string, error) {
	return []string{"Bengaluru Urban"}, nil
}
func (stubRankings) PincodeNames(context.Context, string, int, int, string) ([]string, error) {
	return []string{"560001"}, nil
}
func (stubRankings) StatesWithDistricts(context.Context, int, int) ([]string, error) {
	return []string{"Karnataka"}, nil
}
func (stubRankings) DistrictShare(context.Context, string, int, int) ([]models.DistrictShare, error) {
	share := 50.0
	return []models.DistrictShare{{District: "Bengaluru Urban", Amount: 2500, SharePct: &share}}, nil
}
func (stubRankings) DistrictYoY(context.Context, string, int, int) ([]models.YoYRow, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, geoURL string) http.Handler {
	t.Helper()
	log := logger.New("test")
	return NewRouter(RouterDeps{
		Cfg:          config.Config{RateRPS: 1000},
		MetaSvc:      services.NewMetaService(stubMeta{}),
		TxnSvc:       services.NewTransactionService(stubTransactions{}, stubRankings{}),
		UserSvc:      services.NewUserService(stubUsers{}, stubRankings{}),
		InsuranceSvc: services.NewInsuranceService(stubInsurance{}),
		RankingSvc:   services.NewRankingService(stubRankings{}),
		Geo:          geo.NewClient(geoURL, time.Second, log),
	})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(t, ""), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestTransactionsOverview(t *testing.T) {
	rec := get(t, newTestRouter(t, ""), "/api/v1/transactions/overview?year=2021&quarter=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var out services.TxnOverview
	decode(t, rec, &out)
	assert.InDelta(t, 9000, out.KPIs.Amount, 0.001)
	assert.Equal(t, int64(70), out.KPIs.Count)
	require.Len(t, out.ByState, 2)
	assert.Equal(t, "Karnataka", out.ByState[0].State)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestStateSummary_FiltersByState(t *testing.T) {
	rec := get(t, newTestRouter(t, ""), "/api/v1/transactions/states/Karnataka/summary?year=2021&quarter=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var out services.StateSummary
	decode(t, rec, &out)
	assert.InDelta(t, 5000, out.KPIs.Amount, 0.001)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "Peer-to-peer payments", out.Categories[0].Category)
	require.Len(t, out.TopDistricts, 1)
	assert.Equal(t, "Bengaluru Urban", out.TopDistricts[0].Name)
}

func TestStateCategories_OtherStateOnly(t *testing.T) {
	rec := get(t, newTestRouter(t, ""), "/api/v1/transactions/states/Tamil%20Nadu/categories?year=2021&quarter=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []models.CategorySplit
	decode(t, rec, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Merchant payments", out[0].Category)
}

func TestValidation_BadPeriod(t *testing.T) {
	h := newTestRouter(t, "")
	for _, path := range []string{
		"/api/v1/transactions/overview",
		"/api/v1/transactions/overview?year=2021&quarter=9",
		"/api/v1/transactions/overview?year=1999&quarter=1",
		"/api/v1/users/overview?year=abc&quarter=1",
	} {
		rec := get(t, h, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestRankingsTop(t *testing.T) {
	h := newTestRouter(t, "")

	rec := get(t, h, "/api/v1/rankings/top?year=2021&quarter=1&level=state")
	require.Equal(t, http.StatusOK, rec.Code)
	var states []models.TopGeoRow
	decode(t, rec, &states)
	require.Len(t, states, 1)
	assert.Equal(t, "Karnataka", states[0].Name)

	rec = get(t, h, "/api/v1/rankings/top?year=2021&quarter=1&level=district&state=Karnataka")
	require.Equal(t, http.StatusOK, rec.Code)
	var districts []models.TopGeoRow
	decode(t, rec, &districts)
	require.Len(t, districts, 1)
	assert.Equal(t, "Bengaluru Urban", districts[0].Name)

	rec = get(t, h, "/api/v1/rankings/top?year=2021&quarter=1&level=galaxy")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsersStateDistricts(t *testing.T) {
	h := newTestRouter(t, "")

	rec := get(t, h, "/api/v1/users/states/Karnataka/districts?year=2021&quarter=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	decode(t, rec, &names)
	assert.Equal(t, []string{"Bengaluru Urban", "Mysuru"}, names)

	rec = get(t, h, "/api/v1/users/states/Tamil%20Nadu/districts?year=2021&quarter=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}

func TestUsersLatestPeriod(t *testing.T) {
	rec := get(t, newTestRouter(t, ""), "/api/v1/users/latest-period")
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Period
	decode(t, rec, &p)
	assert.Equal(t, 2021, p.Year)
	assert.Equal(t, 2, p.Quarter)
}

func TestMetaQuartersFallback(t *testing.T) {
	rec := get(t, newTestRouter(t, ""), "/api/v1/meta/years/2030/quarters")
	require.Equal(t, http.StatusOK, rec.Code)
	var qs []int
	decode(t, rec, &qs)
	assert.Equal(t, []int{1, 2, 3, 4}, qs)
}

func TestGeoProxy(t *testing.T) {
	const doc = `{"type":"FeatureCollection","features":[]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	rec := get(t, newTestRouter(t, srv.URL), "/api/v1/geo/india")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, doc, rec.Body.String())
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))
}

func TestGeoProxy_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := get(t, newTestRouter(t, srv.URL), "/api/v1/geo/india")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestDashboardServed(t *testing.T) {
	rec := get(t, newTestRouter(t, ""), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PhonePe Pulse Dashboard")
}

func TestInsuranceVsTransactions(t *testing.T) {
	rec := get(t, newTestRouter(t, ""), "/api/v1/insurance/vs-transactions?year=2021&quarter=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []models.InsuranceRatio
	decode(t, rec, &out)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Pct)
	assert.InDelta(t, 2.0, *out[0].Pct, 0.001)
}

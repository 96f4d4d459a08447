package api

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/handlers"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/config"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/geo"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/metrics"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/middleware"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/services"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/web"
)

type RouterDeps struct {
	Cfg          config.Config
	MetaSvc      *services.MetaService
	TxnSvc       *services.TransactionService
	UserSvc      *services.UserService
	InsuranceSvc *services.InsuranceService
	RankingSvc   *services.RankingService
	Geo          *geo.Client
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	meta := handlers.NewMetaHandler(d.MetaSvc)
	txn := handlers.NewTransactionHandler(d.TxnSvc)
	usr := handlers.NewUserHandler(d.UserSvc)
	ins := handlers.NewInsuranceHandler(d.InsuranceSvc)
	rank := handlers.NewRankingHandler(d.RankingSvc)
	geoH := handlers.NewGeoHandler(d.Geo)

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- meta ----------
		r.Get("/meta/periods", meta.Periods)
		r.Get("/meta/years/{year}/quarters", meta.Quarters)
		r.Get("/meta/states", meta.States)
		r.Get("/meta/reference-states", meta.ReferenceStates)

		// ---------- transactions ----------
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/overview", txn.Overview)
			r.Get("/by-state", txn.ByState)
			r.Get("/categories", txn.Categories)
			r.Get("/top-states", txn.TopStates)
			r.Get("/states/{state}/summary", txn.StateSummary)
			r.Get("/states/{state}/categories", txn.StateCategories)
			r.Get("/states/{state}/trend", txn.StateTrend)
			r.Get("/states/{state}/districts", txn.StateDistricts)
		})

		// ---------- users ----------
		r.Route("/users", func(r chi.Router) {
			r.Get("/overview", usr.Overview)
			r.Get("/by-state", usr.ByState)
			r.Get("/engagement", usr.Engagement)
			r.Get("/latest-period", usr.LatestPeriod)
			r.Get("/states/{state}/summary", usr.StateSummary)
			r.Get("/states/{state}/districts", usr.StateDistricts)
			r.Get("/brands", usr.Brands)
			r.Get("/brands/names", usr.BrandNames)
			r.Get("/brands/top-per-state", usr.TopBrandPerState)
			r.Get("/brands/{brand}/trend", usr.BrandTrend)
			r.Get("/brands/{brand}/share", usr.BrandShare)
		})

		// ---------- insurance ----------
		r.Route("/insurance", func(r chi.Router) {
			r.Get("/overview", ins.Overview)
			r.Get("/by-state", ins.ByState)
			r.Get("/states", ins.States)
			r.Get("/states/{state}/top-districts", ins.TopDistricts)
			r.Get("/yoy", ins.YoY)
			r.Get("/vs-transactions", ins.VsTransactions)
		})

		// ---------- rankings ----------
		r.Route("/rankings", func(r chi.Router) {
			r.Get("/top", rank.Top)
			r.Get("/pincodes-by-users", rank.TopPincodesByUsers)
			r.Get("/states-with-districts", rank.StatesWithDistricts)
			r.Get("/states/{state}/districts", rank.DistrictNames)
			r.Get("/states/{state}/pincodes", rank.PincodeNames)
			r.Get("/states/{state}/district-share", rank.DistrictShare)
			r.Get("/states/{state}/district-yoy", rank.DistrictYoY)
		})

		// ---------- geo ----------
		r.Get("/geo/india", geoH.IndiaStates)
	})

	// dashboard UI
	static, err := fs.Sub(web.Files, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/*", http.FileServer(http.FS(static)))

	return r
}

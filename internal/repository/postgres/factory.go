package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	repo "github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository"
)

type Repositories struct {
	Meta         repo.Meta
	Transactions repo.Transactions
	Users        repo.Users
	Insurance    repo.Insurance
	Rankings     repo.Rankings
	Ingest       repo.Ingest
	LoadRuns     repo.LoadRuns
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Meta:         &metaRepo{pool},
		Transactions: &transactionsRepo{pool},
		Users:        &usersRepo{pool},
		Insurance:    &insuranceRepo{pool},
		Rankings:     &rankingsRepo{pool},
		Ingest:       &ingestRepo{pool},
		LoadRuns:     &loadRunsRepo{pool},
	}
}

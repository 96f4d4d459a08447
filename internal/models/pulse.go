package models

import "time"

// EntityType is the geography level of a top_map / top_user row.
type EntityType string

const (
	EntityState    EntityType = "State"
	EntityDistrict EntityType = "District"
	EntityPincode  EntityType = "Pincode"
)

// Rows loaded by the ETL. One struct per table; created once at load time and
// read-only afterwards.

type AggTransaction struct {
	State   string  `json:"state"`
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Type    string  `json:"transaction_type"`
	Count   int64   `json:"transaction_count"`
	Amount  float64 `json:"transaction_amount"`
}

type AggUser struct {
	State      string  `json:"state"`
	Year       int     `json:"year"`
	Quarter    int     `json:"quarter"`
	Brand      string  `json:"brand"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type AggInsurance struct {
	State   string  `json:"state"`
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Type    string  `json:"insurance_type"`
	Count   int64   `json:"insurance_count"`
	Amount  float64 `json:"insurance_amount"`
}

type MapTransaction struct {
	State   string  `json:"state"`
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	Amount  float64 `json:"amount"`
}

type MapUser struct {
	State           string `json:"state"`
	Year            int    `json:"year"`
	Quarter         int    `json:"quarter"`
	Name            string `json:"name"`
	RegisteredUsers int64  `json:"registered_users"`
	AppOpens        int64  `json:"app_opens"`
}

type MapInsurance struct {
	State   string  `json:"state"`
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Name    string  `json:"name"`
	Count   int64   `json:"insurance_count"`
	Amount  float64 `json:"insurance_amount"`
}

type TopMap struct {
	State      string     `json:"state"`
	Year       int        `json:"year"`
	Quarter    int        `json:"quarter"`
	EntityType EntityType `json:"entity_type"`
	EntityName string     `json:"entity_name"`
	Count      int64      `json:"count"`
	Amount     float64    `json:"amount"`
}

type TopUser struct {
	State           string     `json:"state"`
	Year            int        `json:"year"`
	Quarter         int        `json:"quarter"`
	EntityType      EntityType `json:"entity_type"`
	EntityName      string     `json:"entity_name"`
	RegisteredUsers int64      `json:"registered_users"`
}

// LoadRun is one loader invocation, recorded in load_runs.
type LoadRun struct {
	ID           string     `json:"id"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	Status       string     `json:"status"`
	RowsLoaded   int64      `json:"rows_loaded"`
	RowsRejected int64      `json:"rows_rejected"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

const (
	RunRunning   = "running"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

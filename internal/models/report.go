package models

// Query-layer result rows. Shapes follow the dashboard's fixed SQL statements.

type Period struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// StateValue is one state with a single ranked measure (amount or users).
type StateValue struct {
	State string  `json:"state"`
	Value float64 `json:"value"`
}

type TxnKPIs struct {
	Amount   float64 `json:"amount"`
	Count    int64   `json:"count"`
	AvgValue float64 `json:"avg_value"`
}

type UserKPIs struct {
	RegisteredUsers int64 `json:"registered_users"`
	AppOpens        int64 `json:"app_opens"`
}

// CategorySplit is a transaction_type or insurance_type slice of the total.
type CategorySplit struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int64   `json:"count"`
}

type TrendPoint struct {
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Value   float64 `json:"value"`
}

// TopGeoRow is a ranked district/pincode/state entry. State is set only for
// country-wide rankings where the parent state matters.
type TopGeoRow struct {
	Name   string  `json:"name"`
	State  string  `json:"state,omitempty"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type DistrictUsers struct {
	District        string `json:"district"`
	RegisteredUsers int64  `json:"registered_users"`
	AppOpens        int64  `json:"app_opens"`
}

type PincodeUsers struct {
	Pincode         string `json:"pincode"`
	State           string `json:"state,omitempty"`
	RegisteredUsers int64  `json:"registered_users"`
}

type BrandUsage struct {
	Brand       string  `json:"brand"`
	Users       int64   `json:"users"`
	AvgSharePct float64 `json:"avg_share_pct"`
}

type StateBrand struct {
	State string `json:"state"`
	Brand string `json:"brand"`
	Users int64  `json:"users"`
}

type Engagement struct {
	State           string   `json:"state"`
	RegisteredUsers int64    `json:"registered_users"`
	AppOpens        int64    `json:"app_opens"`
	OpensPerUser    *float64 `json:"opens_per_user"`
}

type BrandShare struct {
	State        string   `json:"state"`
	SharePct     float64  `json:"brand_share_pct"`
	OpensPerUser *float64 `json:"opens_per_user"`
}

// YoYRow compares a measure against the same quarter one year earlier.
// Pct is nil when there is no prior-year row to compare against.
type YoYRow struct {
	Name       string   `json:"name"`
	CurAmount  float64  `json:"cur_amount"`
	PrevAmount *float64 `json:"prev_amount"`
	Pct        *float64 `json:"yoy_pct"`
}

type InsuranceRatio struct {
	State             string   `json:"state"`
	InsuranceAmount   float64  `json:"insurance_amount"`
	TransactionAmount float64  `json:"transaction_amount"`
	Pct               *float64 `json:"ins_vs_txn_pct"`
}

type DistrictShare struct {
	District string   `json:"district"`
	Amount   float64  `json:"amount"`
	SharePct *float64 `json:"share_pct"`
}

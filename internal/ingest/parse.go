package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

// Raw pulse file shapes. Amounts arrive as floats (often in scientific
// notation), counts as integers.

type rawMetric struct {
	Type   string  `json:"type"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type rawAggregatedFile struct {
	Data struct {
		TransactionData []struct {
			Name               string      `json:"name"`
			PaymentInstruments []rawMetric `json:"paymentInstruments"`
		} `json:"transactionData"`
	} `json:"data"`
}

type rawAggregatedUserFile struct {
	Data struct {
		UsersByDevice []struct {
			Brand      string  `json:"brand"`
			Count      int64   `json:"count"`
			Percentage float64 `json:"percentage"`
		} `json:"usersByDevice"`
	} `json:"data"`
}

type rawMapMetricFile struct {
	Data struct {
		HoverDataList []struct {
			Name   string      `json:"name"`
			Metric []rawMetric `json:"metric"`
		} `json:"hoverDataList"`
	} `json:"data"`
}

type rawMapUserFile struct {
	Data struct {
		HoverData map[string]struct {
			RegisteredUsers int64 `json:"registeredUsers"`
			AppOpens        int64 `json:"appOpens"`
		} `json:"hoverData"`
	} `json:"data"`
}

type rawTopEntry struct {
	EntityName string    `json:"entityName"`
	Metric     rawMetric `json:"metric"`
}

type rawTopFile struct {
	Data struct {
		States    []rawTopEntry `json:"states"`
		Districts []rawTopEntry `json:"districts"`
		Pincodes  []rawTopEntry `json:"pincodes"`
	} `json:"data"`
}

type rawTopUserEntry struct {
	Name            string `json:"name"`
	RegisteredUsers int64  `json:"registeredUsers"`
}

type rawTopUserFile struct {
	Data struct {
		States    []rawTopUserEntry `json:"states"`
		Districts []rawTopUserEntry `json:"districts"`
		Pincodes  []rawTopUserEntry `json:"pincodes"`
	} `json:"data"`
}

// totalOf picks the TOTAL instrument, falling back to summing whatever is
// present. Older files only carry TOTAL; the fallback covers the rest.
func totalOf(ms []rawMetric) (int64, float64) {
	for _, m := range ms {
		if m.Type == "TOTAL" {
			return m.Count, m.Amount
		}
	}
	var count int64
	var amount float64
	for _, m := range ms {
		count += m.Count
		amount += m.Amount
	}
	return count, amount
}

func ParseAggTransaction(data []byte, state string, year, quarter int) ([]models.AggTransaction, error) {
	var f rawAggregatedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse aggregated transaction file: %w", err)
	}
	out := make([]models.AggTransaction, 0, len(f.Data.TransactionData))
	for _, td := range f.Data.TransactionData {
		count, amount := totalOf(td.PaymentInstruments)
		out = append(out, models.AggTransaction{
			State: state, Year: year, Quarter: quarter,
			Type: td.Name, Count: count, Amount: amount,
		})
	}
	return out, nil
}

func ParseAggUser(data []byte, state string, year, quarter int) ([]models.AggUser, error) {
	var f rawAggregatedUserFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse aggregated user file: %w", err)
	}
	// usersByDevice is null for quarters where brand data stopped being
	// published; that is an empty slice, not an error.
	out := make([]models.AggUser, 0, len(f.Data.UsersByDevice))
	for _, d := range f.Data.UsersByDevice {
		out = append(out, models.AggUser{
			State: state, Year: year, Quarter: quarter,
			Brand: d.Brand, Count: d.Count, Percentage: d.Percentage,
		})
	}
	return out, nil
}

func ParseAggInsurance(data []byte, state string, year, quarter int) ([]models.AggInsurance, error) {
	var f rawAggregatedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse aggregated insurance file: %w", err)
	}
	out := make([]models.AggInsurance, 0, len(f.Data.TransactionData))
	for _, td := range f.Data.TransactionData {
		count, amount := totalOf(td.PaymentInstruments)
		out = append(out, models.AggInsurance{
			State: state, Year: year, Quarter: quarter,
			Type: td.Name, Count: count, Amount: amount,
		})
	}
	return out, nil
}

func ParseMapTransaction(data []byte, state string, year, quarter int) ([]models.MapTransaction, error) {
	var f rawMapMetricFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse map transaction file: %w", err)
	}
	out := make([]models.MapTransaction, 0, len(f.Data.HoverDataList))
	for _, h := range f.Data.HoverDataList {
		count, amount := totalOf(h.Metric)
		out = append(out, models.MapTransaction{
			State: state, Year: year, Quarter: quarter,
			Name: DistrictName(h.Name), Count: count, Amount: amount,
		})
	}
	return out, nil
}

func ParseMapUser(data []byte, state string, year, quarter int) ([]models.MapUser, error) {
	var f rawMapUserFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse map user file: %w", err)
	}
	out := make([]models.MapUser, 0, len(f.Data.HoverData))
	for name, h := range f.Data.HoverData {
		out = append(out, models.MapUser{
			State: state, Year: year, Quarter: quarter,
			Name: DistrictName(name), RegisteredUsers: h.RegisteredUsers, AppOpens: h.AppOpens,
		})
	}
	return out, nil
}

func ParseMapInsurance(data []byte, state string, year, quarter int) ([]models.MapInsurance, error) {
	var f rawMapMetricFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse map insurance file: %w", err)
	}
	out := make([]models.MapInsurance, 0, len(f.Data.HoverDataList))
	for _, h := range f.Data.HoverDataList {
		count, amount := totalOf(h.Metric)
		out = append(out, models.MapInsurance{
			State: state, Year: year, Quarter: quarter,
			Name: DistrictName(h.Name), Count: count, Amount: amount,
		})
	}
	return out, nil
}

// ParseTopMap handles both levels of top transaction files. State-level files
// contribute District and Pincode rankings; the country-level file (empty
// state) contributes the State rankings, keyed by their own normalized name.
func ParseTopMap(data []byte, state string, year, quarter int) ([]models.TopMap, error) {
	var f rawTopFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse top transaction file: %w", err)
	}

	var out []models.TopMap
	if state == "" {
		for _, e := range f.Data.States {
			name := StateNameFromSlug(e.EntityName)
			out = append(out, models.TopMap{
				State: name, Year: year, Quarter: quarter,
				EntityType: models.EntityState, EntityName: name,
				Count: e.Metric.Count, Amount: e.Metric.Amount,
			})
		}
		return out, nil
	}

	for _, e := range f.Data.Districts {
		out = append(out, models.TopMap{
			State: state, Year: year, Quarter: quarter,
			EntityType: models.EntityDistrict, EntityName: DistrictName(e.EntityName),
			Count: e.Metric.Count, Amount: e.Metric.Amount,
		})
	}
	for _, e := range f.Data.Pincodes {
		out = append(out, models.TopMap{
			State: state, Year: year, Quarter: quarter,
			EntityType: models.EntityPincode, EntityName: e.EntityName,
			Count: e.Metric.Count, Amount: e.Metric.Amount,
		})
	}
	return out, nil
}

func ParseTopUser(data []byte, state string, year, quarter int) ([]models.TopUser, error) {
	var f rawTopUserFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse top user file: %w", err)
	}

	var out []models.TopUser
	if state == "" {
		for _, e := range f.Data.States {
			name := StateNameFromSlug(e.Name)
			out = append(out, models.TopUser{
				State: name, Year: year, Quarter: quarter,
				EntityType: models.EntityState, EntityName: name,
				RegisteredUsers: e.RegisteredUsers,
			})
		}
		return out, nil
	}

	for _, e := range f.Data.Districts {
		out = append(out, models.TopUser{
			State: state, Year: year, Quarter: quarter,
			EntityType: models.EntityDistrict, EntityName: DistrictName(e.Name),
			RegisteredUsers: e.RegisteredUsers,
		})
	}
	for _, e := range f.Data.Pincodes {
		out = append(out, models.TopUser{
			State: state, Year: year, Quarter: quarter,
			EntityType: models.EntityPincode, EntityName: e.Name,
			RegisteredUsers: e.RegisteredUsers,
		})
	}
	return out, nil
}

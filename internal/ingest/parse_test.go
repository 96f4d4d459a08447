package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/models"
)

const aggTransactionJSON = `{
  "success": true,
  "data": {
    "from": 1514745000000,
    "to": 1522175400000,
    "transactionData": [
      {
        "name": "Recharge & bill payments",
        "paymentInstruments": [
          {"type": "TOTAL", "count": 72550406, "amount": 1.4472713558652578E10}
        ]
      },
      {
        "name": "Peer-to-peer payments",
        "paymentInstruments": [
          {"type": "TOTAL", "count": 46982705, "amount": 1.377933935270522E11}
        ]
      },
      {
        "name": "Merchant payments",
        "paymentInstruments": [
          {"type": "TOTAL", "count": 2021141, "amount": 1.3422904670029592E9}
        ]
      }
    ]
  }
}`

func TestParseAggTransaction(t *testing.T) {
	rows, err := ParseAggTransaction([]byte(aggTransactionJSON), "Karnataka", 2018, 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Recharge & bill payments", rows[0].Type)
	assert.Equal(t, int64(72550406), rows[0].Count)
	assert.InDelta(t, 1.4472713558652578e10, rows[0].Amount, 1)
	for _, r := range rows {
		assert.Equal(t, "Karnataka", r.State)
		assert.Equal(t, 2018, r.Year)
		assert.Equal(t, 1, r.Quarter)
	}
}

func TestParseAggTransaction_SumsWithoutTotal(t *testing.T) {
	data := `{"data":{"transactionData":[{"name":"Others","paymentInstruments":[
	  {"type":"CARD","count":10,"amount":100.5},
	  {"type":"WALLET","count":5,"amount":49.5}]}]}}`
	rows, err := ParseAggTransaction([]byte(data), "Goa", 2020, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(15), rows[0].Count)
	assert.InDelta(t, 150.0, rows[0].Amount, 0.001)
}

func TestParseAggUser(t *testing.T) {
	data := `{"data":{"registeredUsers":1000,"usersByDevice":[
	  {"brand":"Xiaomi","count":500,"percentage":0.5},
	  {"brand":"Samsung","count":300,"percentage":0.3}]}}`
	rows, err := ParseAggUser([]byte(data), "Kerala", 2019, 3)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Xiaomi", rows[0].Brand)
	assert.Equal(t, int64(500), rows[0].Count)
	assert.InDelta(t, 0.5, rows[0].Percentage, 0.0001)
}

func TestParseAggUser_NullDeviceList(t *testing.T) {
	// Brand data stopped being published after 2022 Q1.
	data := `{"data":{"registeredUsers":1000,"usersByDevice":null}}`
	rows, err := ParseAggUser([]byte(data), "Kerala", 2023, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseMapTransaction(t *testing.T) {
	data := `{"data":{"hoverDataList":[
	  {"name":"bengaluru urban district","metric":[{"type":"TOTAL","count":100,"amount":5000.0}]},
	  {"name":"mysuru district","metric":[{"type":"TOTAL","count":40,"amount":1200.0}]}]}}`
	rows, err := ParseMapTransaction([]byte(data), "Karnataka", 2021, 4)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bengaluru Urban", rows[0].Name)
	assert.Equal(t, "Mysuru", rows[1].Name)
	assert.Equal(t, int64(100), rows[0].Count)
}

func TestParseMapUser(t *testing.T) {
	data := `{"data":{"hoverData":{
	  "bengaluru urban district":{"registeredUsers":900,"appOpens":4500},
	  "mysuru district":{"registeredUsers":200,"appOpens":600}}}}`
	rows, err := ParseMapUser([]byte(data), "Karnataka", 2021, 4)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]models.MapUser{}
	for _, r := range rows {
		byName[r.Name] = r
	}
	assert.Equal(t, int64(900), byName["Bengaluru Urban"].RegisteredUsers)
	assert.Equal(t, int64(600), byName["Mysuru"].AppOpens)
}

func TestParseTopMap_StateLevel(t *testing.T) {
	data := `{"data":{
	  "states":null,
	  "districts":[{"entityName":"bengaluru urban district","metric":{"type":"TOTAL","count":100,"amount":5000.0}}],
	  "pincodes":[{"entityName":"560001","metric":{"type":"TOTAL","count":10,"amount":400.0}}]}}`
	rows, err := ParseTopMap([]byte(data), "Karnataka", 2021, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.EntityDistrict, rows[0].EntityType)
	assert.Equal(t, "Bengaluru Urban", rows[0].EntityName)
	assert.Equal(t, models.EntityPincode, rows[1].EntityType)
	assert.Equal(t, "560001", rows[1].EntityName)
	for _, r := range rows {
		assert.Equal(t, "Karnataka", r.State)
	}
}

func TestParseTopMap_CountryLevel(t *testing.T) {
	data := `{"data":{
	  "states":[{"entityName":"karnataka","metric":{"type":"TOTAL","count":100,"amount":5000.0}},
	            {"entityName":"tamil-nadu","metric":{"type":"TOTAL","count":90,"amount":4000.0}}],
	  "districts":[{"entityName":"ignored district","metric":{"type":"TOTAL","count":1,"amount":1.0}}],
	  "pincodes":null}}`
	rows, err := ParseTopMap([]byte(data), "", 2021, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.EntityState, rows[0].EntityType)
	assert.Equal(t, "Karnataka", rows[0].EntityName)
	assert.Equal(t, "Karnataka", rows[0].State)
	assert.Equal(t, "Tamil Nadu", rows[1].EntityName)
}

func TestParseTopUser(t *testing.T) {
	data := `{"data":{
	  "states":null,
	  "districts":[{"name":"pune district","registeredUsers":1500}],
	  "pincodes":[{"name":"411001","registeredUsers":300}]}}`
	rows, err := ParseTopUser([]byte(data), "Maharashtra", 2020, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Pune", rows[0].EntityName)
	assert.Equal(t, int64(1500), rows[0].RegisteredUsers)
	assert.Equal(t, models.EntityPincode, rows[1].EntityType)
}

func TestParse_BadJSON(t *testing.T) {
	_, err := ParseAggTransaction([]byte("{"), "Karnataka", 2018, 1)
	assert.Error(t, err)
	_, err = ParseMapUser([]byte("not json"), "Karnataka", 2018, 1)
	assert.Error(t, err)
}

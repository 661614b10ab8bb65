package mfl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nateprich/mfl-salary-top30/internal/transport"
	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestFlexListShapes(t *testing.T) {
	type item struct {
		ID string `json:"id"`
	}
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"array", `[{"id":"a"},{"id":"b"}]`, 2},
		{"single object", `{"id":"a"}`, 1},
		{"null", `null`, 0},
		{"empty array", `[]`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l flexList[item]
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &l))
			assert.Len(t, l, tt.want)
		})
	}
}

func TestMoneyShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"quoted string", `"425000"`, 425000},
		{"bare number", `1500000`, 1500000},
		{"fractional", `"12.5"`, 12.5},
		{"garbage treated as absent", `"n/a"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m money
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &m))
			assert.Equal(t, tt.want, float64(m))
		})
	}
}

func TestExtractRosterSalaries(t *testing.T) {
	// One franchise collapses to a single object, one player field too;
	// zero, negative, and unparseable salaries are absent from the output.
	resp := decode[rostersResponse](t, `{
		"rosters": {
			"franchise": [
				{"id": "0001", "player": [
					{"id": "13593", "salary": "1000000"},
					{"id": "14867", "salary": "0"},
					{"id": "11234", "salary": "-50"},
					{"id": "11235", "salary": ""}
				]},
				{"id": "0002", "player": {"id": "15000", "salary": "425000"}}
			]
		}
	}`)

	salaries := extractRosterSalaries(resp)

	assert.Equal(t, league.SalaryMap{
		"13593": 1000000,
		"15000": 425000,
	}, salaries)
}

func TestExtractRosterSalariesMissingTopLevel(t *testing.T) {
	assert.Empty(t, extractRosterSalaries(decode[rostersResponse](t, `{}`)))
	assert.Empty(t, extractRosterSalaries(decode[rostersResponse](t, `{"rosters": {}}`)))
}

func TestExtractRosterSalariesDuplicateKeepsMax(t *testing.T) {
	resp := decode[rostersResponse](t, `{
		"rosters": {"franchise": [
			{"id": "0001", "player": {"id": "13593", "salary": "100"}},
			{"id": "0002", "player": {"id": "13593", "salary": "900"}},
			{"id": "0003", "player": {"id": "13593", "salary": "400"}}
		]}
	}`)

	assert.Equal(t, league.SalaryMap{"13593": 900}, extractRosterSalaries(resp))
}

func TestExtractAuctionSalaries(t *testing.T) {
	resp := decode[auctionResponse](t, `{
		"auctionResults": {"auctionUnit": {"auction": [
			{"player": "13593", "winningBid": "1500000"},
			{"player": "14867", "winningBid": "0"},
			{"player": "", "winningBid": "100"}
		]}}
	}`)

	assert.Equal(t, league.SalaryMap{"13593": 1500000}, extractAuctionSalaries(resp))
}

func TestExtractAuctionSalariesSingleRecord(t *testing.T) {
	resp := decode[auctionResponse](t, `{
		"auctionResults": {"auctionUnit": {"auction": {"player": "13593", "winningBid": "42"}}}
	}`)

	assert.Equal(t, league.SalaryMap{"13593": 42}, extractAuctionSalaries(resp))
}

func TestParseWaiverPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantBid float64
		wantIDs []league.PlayerID
		wantOK  bool
	}{
		{"drop and add", "14867,|425000|13593,", 425000, []league.PlayerID{"13593"}, true},
		{"multiple adds", "|100|13593,14867", 100, []league.PlayerID{"13593", "14867"}, true},
		{"tokens trimmed", "| 50 | 13593 , 14867 ,", 50, []league.PlayerID{"13593", "14867"}, true},
		{"too few segments", "14867,|425000", 0, nil, false},
		{"zero bid", "14867,|0|13593,", 0, nil, false},
		{"negative bid", "14867,|-10|13593,", 0, nil, false},
		{"unparseable bid", "14867,|lots|13593,", 0, nil, false},
		{"no added ids", "14867,|425000|,", 0, nil, false},
		{"empty payload", "", 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bid, ids, ok := parseWaiverPayload(tt.payload)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantBid, bid)
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestExtractWaiverSalaries(t *testing.T) {
	resp := decode[transactionsResponse](t, `{
		"transactions": {"transaction": [
			{"type": "BBID_WAIVER", "transaction": "14867,|425000|13593,"},
			{"type": "BBID_WAIVER", "transaction": "|0|14867,"},
			{"type": "BBID_WAIVER", "transaction": "broken"},
			{"type": "BBID_WAIVER", "transaction": "|200|13593,15000"}
		]}
	}`)

	assert.Equal(t, league.SalaryMap{
		"13593": 425000, // max wins over the later 200 bid
		"15000": 200,
	}, extractWaiverSalaries(resp))
}

func TestExtractWaiverSalariesIgnoresForeignTransactionTypes(t *testing.T) {
	resp := decode[transactionsResponse](t, `{
		"transactions": {"transaction": [
			{"type": "FREE_AGENT", "transaction": "|999999|13593,"},
			{"type": "TRADE", "transaction": "|888888|14867,"},
			{"type": "BBID_WAIVER", "transaction": "|425000|13593,"},
			{"transaction": "|200|15000,"}
		]}
	}`)

	assert.Equal(t, league.SalaryMap{
		"13593": 425000,
		"15000": 200, // untyped records are kept
	}, extractWaiverSalaries(resp))
}

func TestExtractPlayers(t *testing.T) {
	resp := decode[playersResponse](t, `{
		"players": {"player": [
			{"id": "13593", "name": "Smith, John", "position": "QB"},
			{"id": "14867", "name": "Jones, Bill", "position": "k"},
			{"id": "15000", "name": "Buffalo Bills", "position": "DEF"},
			{"id": "15001", "name": "Corner, Back", "position": "CB"},
			{"id": "15002", "name": "Odd, Ball", "position": "XYZ"},
			{"id": "", "name": "Ghost, No", "position": "QB"},
			{"id": "15003", "name": "", "position": "RB"}
		]}
	}`)

	meta := extractPlayers(resp)

	assert.Equal(t, league.MetaMap{
		"13593": {Name: "John Smith", Position: league.QB},
		"14867": {Name: "Bill Jones", Position: league.PK},
		"15000": {Name: "Buffalo Bills", Position: league.Def},
		"15003": {Name: "Unknown", Position: league.RB},
	}, meta)
}

func TestRequestConstruction(t *testing.T) {
	type seen struct {
		path  string
		query map[string]string
	}
	var requests []seen

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := map[string]string{}
		for key := range r.URL.Query() {
			q[key] = r.URL.Query().Get(key)
		}
		requests = append(requests, seen{path: r.URL.Path, query: q})
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tc := transport.New(transport.WithRetries(1, time.Millisecond))
	client := NewClient(tc, srv.URL, "13522", WithWaiverCount(500))

	ctx := context.Background()
	_, err := client.RosterSalaries(ctx, "2023", 14)
	require.NoError(t, err)
	_, err = client.AuctionSalaries(ctx, "2023")
	require.NoError(t, err)
	_, err = client.WaiverSalaries(ctx, "2023")
	require.NoError(t, err)
	_, err = client.Players(ctx, "2023")
	require.NoError(t, err)

	require.Len(t, requests, 4)
	for _, req := range requests {
		assert.Equal(t, "/2023/export", req.path)
		assert.Equal(t, "13522", req.query["L"])
		assert.Equal(t, "1", req.query["JSON"])
	}
	assert.Equal(t, "rosters", requests[0].query["TYPE"])
	assert.Equal(t, "14", requests[0].query["W"])
	assert.Equal(t, "auctionResults", requests[1].query["TYPE"])
	assert.Equal(t, "transactions", requests[2].query["TYPE"])
	assert.Equal(t, "BBID_WAIVER", requests[2].query["TRANS_TYPE"])
	assert.Equal(t, "500", requests[2].query["COUNT"])
	assert.Equal(t, "players", requests[3].query["TYPE"])
	assert.Equal(t, "1", requests[3].query["DETAILS"])
}

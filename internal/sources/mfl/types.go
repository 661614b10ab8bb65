package mfl

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// flexList decodes a JSON field that is an array when a collection has
// several elements but collapses to a single object when it has exactly one.
// Null and absent both decode to an empty list. Every extractor shares this
// normalization so the parsing contract stays uniform.
type flexList[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *flexList[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*l = flexList[T]{single}
	return nil
}

// money decodes a monetary field that arrives as a quoted string, a bare
// number, or garbage. Non-parseable and missing values decode to zero, which
// the >0 guard in every extractor then discards: a malformed amount is a
// skipped record, never an error.
type money float64

// UnmarshalJSON implements json.Unmarshaler.
func (m *money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.TrimSpace(data)))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*m = 0
		return nil
	}
	*m = money(f)
	return nil
}

// parseAmount converts a raw string amount, yielding 0 for anything
// non-numeric.
func parseAmount(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

// Response envelopes. Fields the extractors don't read are omitted; the API
// shape is trusted modulo the defensive normalization above.

type rostersResponse struct {
	Rosters struct {
		Franchise flexList[franchise] `json:"franchise"`
	} `json:"rosters"`
}

type franchise struct {
	ID     string               `json:"id"`
	Player flexList[rosterSlot] `json:"player"`
}

type rosterSlot struct {
	ID     string `json:"id"`
	Salary money  `json:"salary"`
}

type auctionResponse struct {
	AuctionResults struct {
		AuctionUnit struct {
			Auction flexList[auctionRecord] `json:"auction"`
		} `json:"auctionUnit"`
	} `json:"auctionResults"`
}

type auctionRecord struct {
	Player     string `json:"player"`
	WinningBid money  `json:"winningBid"`
}

type transactionsResponse struct {
	Transactions struct {
		Transaction flexList[transaction] `json:"transaction"`
	} `json:"transactions"`
}

type transaction struct {
	Type string `json:"type"`
	// Payload is a delimited string: "<droppedIds>|<bidAmount>|<addedIds>".
	Payload string `json:"transaction"`
}

type playersResponse struct {
	Players struct {
		Player flexList[playerRecord] `json:"player"`
	} `json:"players"`
}

type playerRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

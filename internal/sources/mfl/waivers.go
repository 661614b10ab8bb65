package mfl

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// WaiverSalaries fetches the season's blind-bid waiver transactions and
// returns the bid amount for every player added by a claim.
func (c *Client) WaiverSalaries(ctx context.Context, season league.Season) (league.SalaryMap, error) {
	params := url.Values{}
	params.Set("TRANS_TYPE", waiverTransType)
	params.Set("COUNT", strconv.Itoa(c.waiverCount))

	var resp transactionsResponse
	if err := c.transport.FetchJSON(ctx, c.exportURL(season, typeTransactions, params), &resp); err != nil {
		return nil, err
	}
	return extractWaiverSalaries(resp), nil
}

func extractWaiverSalaries(resp transactionsResponse) league.SalaryMap {
	salaries := make(league.SalaryMap)
	for _, tx := range resp.Transactions.Transaction {
		// The request filters on TRANS_TYPE already; this guards against the
		// API returning extra transaction kinds anyway. An absent type is
		// trusted to be a waiver claim.
		if tx.Type != "" && tx.Type != waiverTransType {
			continue
		}
		bid, added, ok := parseWaiverPayload(tx.Payload)
		if !ok {
			continue
		}
		for _, id := range added {
			salaries.Record(id, bid)
		}
	}
	return salaries
}

// parseWaiverPayload splits "<droppedIds>|<bidAmount>|<addedIds>". Payloads
// with fewer than three segments or a non-positive bid carry no usable
// salary claim and are discarded whole.
func parseWaiverPayload(payload string) (float64, []league.PlayerID, bool) {
	segments := strings.Split(payload, "|")
	if len(segments) < 3 {
		return 0, nil, false
	}

	bid := parseAmount(segments[1])
	if bid <= 0 {
		return 0, nil, false
	}

	var added []league.PlayerID
	for _, token := range strings.Split(segments[2], ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		added = append(added, league.PlayerID(token))
	}
	if len(added) == 0 {
		return 0, nil, false
	}
	return bid, added, true
}

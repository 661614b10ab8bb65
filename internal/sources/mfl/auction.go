package mfl

import (
	"context"

	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// AuctionSalaries fetches the season's auction results and returns the
// winning bid for every auctioned player.
func (c *Client) AuctionSalaries(ctx context.Context, season league.Season) (league.SalaryMap, error) {
	var resp auctionResponse
	if err := c.transport.FetchJSON(ctx, c.exportURL(season, typeAuction, nil), &resp); err != nil {
		return nil, err
	}
	return extractAuctionSalaries(resp), nil
}

func extractAuctionSalaries(resp auctionResponse) league.SalaryMap {
	salaries := make(league.SalaryMap)
	for _, rec := range resp.AuctionResults.AuctionUnit.Auction {
		salaries.Record(league.PlayerID(rec.Player), float64(rec.WinningBid))
	}
	return salaries
}

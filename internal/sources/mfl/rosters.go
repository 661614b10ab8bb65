package mfl

import (
	"context"
	"net/url"
	"strconv"

	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// RosterSalaries fetches the roster snapshot for one week and returns the
// salary recorded for every player holding a positive salary.
func (c *Client) RosterSalaries(ctx context.Context, season league.Season, week int) (league.SalaryMap, error) {
	params := url.Values{}
	params.Set("W", strconv.Itoa(week))

	var resp rostersResponse
	if err := c.transport.FetchJSON(ctx, c.exportURL(season, typeRosters, params), &resp); err != nil {
		return nil, err
	}
	return extractRosterSalaries(resp), nil
}

func extractRosterSalaries(resp rostersResponse) league.SalaryMap {
	salaries := make(league.SalaryMap)
	for _, fr := range resp.Rosters.Franchise {
		for _, slot := range fr.Player {
			salaries.Record(league.PlayerID(slot.ID), float64(slot.Salary))
		}
	}
	return salaries
}

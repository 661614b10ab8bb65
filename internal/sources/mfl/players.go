package mfl

import (
	"context"
	"net/url"

	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// Players fetches the season's player directory and returns metadata for
// every player whose position normalizes into the tracked set. Players with
// denied or unrecognized positions get no entry, which excludes them from
// ranking downstream.
func (c *Client) Players(ctx context.Context, season league.Season) (league.MetaMap, error) {
	params := url.Values{}
	params.Set("DETAILS", "1")

	var resp playersResponse
	if err := c.transport.FetchJSON(ctx, c.exportURL(season, typePlayers, params), &resp); err != nil {
		return nil, err
	}
	return extractPlayers(resp), nil
}

func extractPlayers(resp playersResponse) league.MetaMap {
	meta := make(league.MetaMap)
	for _, rec := range resp.Players.Player {
		if rec.ID == "" {
			continue
		}
		pos, ok := league.NormalizePosition(rec.Position)
		if !ok {
			continue
		}
		meta[league.PlayerID(rec.ID)] = league.PlayerMeta{
			Name:     league.FormatName(rec.Name),
			Position: pos,
		}
	}
	return meta
}

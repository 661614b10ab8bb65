// Package mfl turns the MyFantasyLeague export API's loosely-structured
// responses into normalized salary and player-metadata maps. Each source
// (roster snapshots, auction results, waiver transactions, the player
// directory) has its own extractor; malformed individual records are routine
// noise and are skipped silently.
package mfl

import (
	"fmt"
	"net/url"

	"github.com/nateprich/mfl-salary-top30/internal/transport"
	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// DefaultBaseURL is the production MFL API host.
const DefaultBaseURL = "https://api.myfantasyleague.com"

// Export request types.
const (
	typeRosters      = "rosters"
	typeAuction      = "auctionResults"
	typeTransactions = "transactions"
	typePlayers      = "players"

	// waiverTransType selects blind-bid waiver claims.
	waiverTransType = "BBID_WAIVER"
)

// Client issues season-scoped export requests for one league.
type Client struct {
	transport   *transport.Client
	baseURL     string
	leagueID    string
	waiverCount int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithWaiverCount caps the number of waiver transactions requested.
func WithWaiverCount(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.waiverCount = n
		}
	}
}

// NewClient creates a source client for the given league.
func NewClient(t *transport.Client, baseURL, leagueID string, opts ...ClientOption) *Client {
	c := &Client{
		transport:   t,
		baseURL:     baseURL,
		leagueID:    leagueID,
		waiverCount: 2000,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// exportURL builds {base}/{season}/export?TYPE=...&L=...&JSON=1 plus any
// source-specific parameters.
func (c *Client) exportURL(season league.Season, requestType string, extra url.Values) string {
	params := url.Values{}
	params.Set("TYPE", requestType)
	params.Set("L", c.leagueID)
	params.Set("JSON", "1")
	for key, values := range extra {
		for _, v := range values {
			params.Add(key, v)
		}
	}
	return fmt.Sprintf("%s/%s/export?%s", c.baseURL, season, params.Encode())
}

package league

import "strings"

// Position is an on-field role used to bucket ranked players.
type Position string

// The closed set of tracked positions.
const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	PK  Position = "PK"
	Def Position = "Def"
)

// DefaultPositions is the tracked position list in report order.
var DefaultPositions = []Position{QB, RB, WR, TE, PK, Def}

// deniedPositions are raw codes rejected outright: individual defensive
// sub-positions and team-aggregate tags that must never fold into a tracked
// bucket, as opposed to merely unrecognized codes.
var deniedPositions = map[string]struct{}{
	"CB": {}, "S": {}, "DT": {}, "DE": {}, "LB": {},
	"ST": {}, "OFF": {}, "COACH": {},
	"TMQB": {}, "TMRB": {}, "TMWR": {}, "TMTE": {},
	"TMPK": {}, "TMDL": {}, "TMLB": {}, "TMDB": {},
}

// NormalizePosition maps a raw position code onto the tracked set.
// Matching is case-insensitive; "K" maps to PK and "DEF" to Def. Deny-listed
// and unrecognized codes both return false, excluding the player from all
// position-keyed output.
func NormalizePosition(raw string) (Position, bool) {
	up := strings.ToUpper(strings.TrimSpace(raw))
	if up == "" {
		return "", false
	}
	if _, denied := deniedPositions[up]; denied {
		return "", false
	}

	switch up {
	case "QB":
		return QB, true
	case "RB":
		return RB, true
	case "WR":
		return WR, true
	case "TE":
		return TE, true
	case "K", "PK":
		return PK, true
	case "DEF":
		return Def, true
	default:
		return "", false
	}
}

package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GameID is an opaque matchup identifier. Upstream snapshots encode it as
// either a JSON string or a JSON number for the same game, so it is stored
// and compared in string form.
type GameID string

// NormalizeGameID trims surrounding whitespace from an incoming id so path
// and query values compare cleanly against stored ids.
func NormalizeGameID(id string) string {
	return strings.TrimSpace(id)
}

// UnmarshalJSON accepts both string and numeric encodings.
func (id *GameID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return fmt.Errorf("gameId must not be null")
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = GameID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("gameId must be a string or number: %w", err)
	}
	*id = GameID(n.String())
	return nil
}

// MarshalJSON always emits the string form.
func (id GameID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id GameID) String() string {
	return string(id)
}

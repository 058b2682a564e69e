package present

import (
	"fmt"
	"strings"
)

// LogoFunc maps a team identifier to an image URL. Any deterministic mapping
// satisfies the view contract; callers may swap in their own.
type LogoFunc func(team string) string

// TeamLogoURL resolves the league asset URL for a team abbreviation.
func TeamLogoURL(team string) string {
	return fmt.Sprintf("https://assets.nhle.com/logos/nhl/svg/%s_light.svg", strings.ToUpper(strings.TrimSpace(team)))
}

package lookup

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"seekbox/internal/catalog"
	"seekbox/internal/ui"
)

// DefaultRecoverDistance is the edit distance NearestRecovery accepts when
// none is configured.
const DefaultRecoverDistance = 2

// NearestRecovery returns a recovery rule that commits the item whose name
// is closest to the typed text, ignoring case, when the edit distance is at
// most maxDistance. Ties go to the earlier item.
func NearestRecovery(items []catalog.Item, maxDistance int) ui.RecoverFunc[string, catalog.Item] {
	if maxDistance < 0 {
		maxDistance = DefaultRecoverDistance
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = strings.ToLower(item.Name)
	}

	return func(text string) (ui.Recovery[string, catalog.Item], bool) {
		text = strings.ToLower(strings.TrimSpace(text))
		if text == "" {
			return ui.Recovery[string, catalog.Item]{}, false
		}

		best, score := -1, maxDistance+1
		for i, name := range names {
			if d := levenshtein.ComputeDistance(text, name); d < score {
				best, score = i, d
			}
		}
		if best < 0 {
			lookupLog.Logf("no item within %d edits of %q", maxDistance, text)
			return ui.Recovery[string, catalog.Item]{}, false
		}
		item := items[best]
		return ui.Recovery[string, catalog.Item]{Value: item.ID, Info: item, HasInfo: true}, true
	}
}

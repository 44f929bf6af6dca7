package fontrepo

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/aalvaropc/figgy/internal/domain"
)

const suggestMaxDistance = 3

// suggest returns the known name closest to want, if any is close enough.
func suggest(options []domain.FontName, want domain.FontName) (domain.FontName, bool) {
	w := strings.ToLower(string(want))
	best, bestDist := domain.FontName(""), suggestMaxDistance
	for _, o := range options {
		dist := levenshtein.Distance(w, strings.ToLower(string(o)), nil)
		if dist < bestDist {
			best, bestDist = o, dist
		}
	}
	return best, best != ""
}

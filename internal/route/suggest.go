package route

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest ranks the canonical addresses by edit distance to input and
// returns at most n of them. Ties keep table order.
func Suggest(input string, n int) []string {
	if n <= 0 {
		return nil
	}
	q := strings.ToLower(Normalize(input))
	type scored struct {
		path string
		dist int
	}
	known := Known()
	all := make([]scored, 0, len(known))
	for _, p := range known {
		d := levenshtein.ComputeDistance(q, p)
		if q != "" && strings.HasPrefix(p, q) {
			d = 0
		}
		all = append(all, scored{path: p, dist: d})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist < all[j].dist })
	if len(all) > n {
		all = all[:n]
	}
	out := make([]string, 0, len(all))
	for _, s := range all {
		out = append(out, s.path)
	}
	return out
}

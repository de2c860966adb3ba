package fontkit

import "math"

// Match selects the candidate whose properties best satisfy the query,
// using the CSS Fonts Level 3 matching rules: stretch is matched first,
// then style, then weight. It returns the index of the winner, or
// (-1, false) when candidates is empty.
func Match(candidates []Properties, query Properties) (int, bool) {
	if len(candidates) == 0 {
		return -1, false
	}

	viable := make([]int, len(candidates))
	for i := range candidates {
		viable[i] = i
	}

	// Stretch. Prefer exact, then the closest on the narrow side for
	// condensed queries and the wide side for expanded ones.
	best := math.Inf(1)
	for _, i := range viable {
		if d := stretchDistance(candidates[i].Stretch, query.Stretch); d < best {
			best = d
		}
	}
	viable = filter(viable, func(i int) bool {
		return stretchDistance(candidates[i].Stretch, query.Stretch) == best
	})
	matchedStretch := candidates[viable[0]].Stretch

	// Style. Italic and oblique substitute for each other before
	// falling back to normal, and vice versa.
	var order [3]Style
	switch query.Style {
	case StyleItalic:
		order = [3]Style{StyleItalic, StyleOblique, StyleNormal}
	case StyleOblique:
		order = [3]Style{StyleOblique, StyleItalic, StyleNormal}
	default:
		order = [3]Style{StyleNormal, StyleOblique, StyleItalic}
	}
	for _, s := range order {
		if m := filter(viable, func(i int) bool { return candidates[i].Style == s }); len(m) > 0 {
			viable = m
			break
		}
	}
	matchedStyle := candidates[viable[0]].Style

	// Weight, with the CSS rules for the 400 and 500 pivots.
	best = math.Inf(1)
	for _, i := range viable {
		if d := weightDistance(candidates[i].Weight, query.Weight); d < best {
			best = d
		}
	}
	viable = filter(viable, func(i int) bool {
		return weightDistance(candidates[i].Weight, query.Weight) == best
	})
	matchedWeight := candidates[viable[0]].Weight

	for i, c := range candidates {
		if c.Stretch == matchedStretch && c.Style == matchedStyle && c.Weight == matchedWeight {
			return i, true
		}
	}
	return -1, false
}

func filter(idx []int, keep func(int) bool) []int {
	out := idx[:0:0]
	for _, i := range idx {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

// stretchDistance ranks a candidate stretch against the query. Ties on
// absolute distance break toward narrower faces when the query is
// condensed (or normal) and wider faces when it is expanded.
func stretchDistance(candidate, query Stretch) float64 {
	d := math.Abs(float64(candidate) - float64(query))
	if query <= StretchNormal {
		if candidate > query {
			d += 0.5 / 1024
		}
	} else {
		if candidate < query {
			d += 0.5 / 1024
		}
	}
	return d
}

// weightDistance ranks a candidate weight against the query per the
// CSS font matching algorithm. Queries at 400 prefer 500 before any
// lighter weight; queries at 500 prefer 400 before heavier ones.
// Queries below 400 prefer lighter candidates, above 500 heavier ones.
func weightDistance(candidate, query Weight) float64 {
	c, q := float64(candidate), float64(query)
	switch {
	case q >= 400 && q <= 500:
		// Check up to 500 in ascending order, then below the query
		// descending, then above 500 ascending.
		switch {
		case c >= q && c <= 500:
			return c - q
		case c < q:
			return 100 + (q - c)
		default:
			return 600 + (c - 500)
		}
	case q < 400:
		// Lighter candidates first, descending.
		if c <= q {
			return q - c
		}
		return 400 + (c - q)
	default: // q > 500
		// Heavier candidates first, ascending.
		if c >= q {
			return c - q
		}
		return 500 + (q - c)
	}
}

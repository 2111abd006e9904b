package match

import "strings"

// MaxMarkerDistance is the largest edit distance at which a directive is
// still taken for a misspelled marker.
const MaxMarkerDistance = 2

// Closest returns the candidate nearest to text. It reports false when no
// candidate is within maxDist. Ties go to the earlier candidate.
func Closest(text string, candidates []string, maxDist int) (string, bool) {
	best, bestDist := "", maxDist+1

	for _, c := range candidates {
		if d := Levenshtein(text, c); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist <= maxDist
}

// SuspectMarker reports whether a line comment body (the text after "//")
// looks like an attempt at one of the markers without matching it exactly.
// It returns the marker that was probably meant.
//
// Two shapes are caught: a marker followed by arguments, e.g.
// "easyinit:generate member", and a near-miss spelling, e.g.
// "easyinit:genrate".
func SuspectMarker(body string, markers []string) (string, bool) {
	body = strings.TrimRight(body, " \t")

	// Directives have no space after "//".
	if body == "" || body[0] == ' ' || body[0] == '\t' {
		return "", false
	}

	head, _, _ := strings.Cut(body, " ")
	head, _, _ = strings.Cut(head, "\t")

	for _, m := range markers {
		if body == m {
			return "", false
		}
	}

	for _, m := range markers {
		if head == m {
			return m, true
		}
	}

	return Closest(head, markers, MaxMarkerDistance)
}

// Package fuzzy implements VS-Code-style fuzzy subsequence scoring.
//
// A query matches a line when every query character appears in the line in
// order (case-insensitively). The score rewards consecutive runs, exact-case
// hits, word starts, characters following separators, and camel-case humps.
package fuzzy

import "unicode"

// Score bonuses awarded per matched character. The base score is granted on
// any match; the rest stack additively on top of it.
const (
	scoreRegular          = 1
	scoreConsecutiveMatch = 5
	scoreExactMatch       = 1
	scoreWordStart        = 8
	scoreAfterSeparator   = 4
	scoreAfterPathSep     = 5
	scoreCamelCase        = 2
)

// Match holds the outcome of scoring one line against a query.
type Match struct {
	// Score is the cumulative fuzzy score. Higher is better.
	Score int

	// Positions are the rune indices of the matched characters in the line,
	// strictly increasing. Empty for an empty query.
	Positions []int
}

// isPathSeparator reports whether r is a path separator.
// Forward and backward slashes are treated as interchangeable during matching.
func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// isRegularSeparator reports whether r is a word separator other than a path
// separator.
func isRegularSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ', '\'', '"', ':':
		return true
	}
	return false
}

func isSeparator(r rune) bool {
	return isPathSeparator(r) || isRegularSeparator(r)
}

// consideredEqual reports whether a query character matches a line character.
// Comparison is case-insensitive, and the two path separators match each
// other so queries written with either slash style hit both.
func consideredEqual(queryChar, lineChar rune) bool {
	if unicode.ToLower(queryChar) == unicode.ToLower(lineChar) {
		return true
	}
	return isPathSeparator(queryChar) && isPathSeparator(lineChar)
}

// charScore returns the score contribution of matching lineChar against
// queryChar, or 0 if the characters do not match. streak is the length of the
// consecutive run of matches immediately preceding this position.
func charScore(queryChar, lineChar, prevChar rune, lineStart bool, streak int) int {
	if !consideredEqual(queryChar, lineChar) {
		return 0
	}

	score := scoreRegular + scoreConsecutiveMatch*streak

	if queryChar == lineChar {
		score += scoreExactMatch
	}
	if lineStart {
		score += scoreWordStart
	}
	if !lineStart {
		switch {
		case isPathSeparator(prevChar):
			score += scoreAfterPathSep
		case isRegularSeparator(prevChar):
			score += scoreAfterSeparator
		case unicode.IsUpper(lineChar):
			// Camel-case hump; only meaningful past the first character.
			score += scoreCamelCase
		}
	}

	return score
}

// MatchLine scores line against query.
//
// Returns nil when the line cannot contain the query as a subsequence (in
// particular whenever the line is shorter than the query). An empty query is
// defined to match every line with score 0 and no positions.
func MatchLine(query, line string) *Match {
	if query == "" {
		return &Match{}
	}

	q := []rune(query)
	l := []rune(line)
	if len(l) < len(q) {
		return nil
	}

	// scores[i][j] is the best cumulative score matching q[..i] within
	// l[..j]; streaks[i][j] is the consecutive-run length ending at (i, j),
	// zero when l[j] is not matched against q[i] on the best path.
	scores := make([][]int, len(q))
	streaks := make([][]int, len(q))
	for i := range q {
		scores[i] = make([]int, len(l))
		streaks[i] = make([]int, len(l))
	}

	for i, qc := range q {
		for j, lc := range l {
			var left, diag, streak int
			if j > 0 {
				left = scores[i][j-1]
			}
			if i > 0 && j > 0 {
				diag = scores[i-1][j-1]
				streak = streaks[i-1][j-1]
			}

			var prev rune
			if j > 0 {
				prev = l[j-1]
			}

			// A later query character cannot match before the earlier ones
			// have; a zero diagonal means that prefix never completed.
			var score int
			if i == 0 || diag > 0 {
				score = charScore(qc, lc, prev, j == 0, streak)
			}

			if score > 0 && diag+score >= left {
				streaks[i][j] = streak + 1
				scores[i][j] = diag + score
			} else {
				scores[i][j] = left
			}
		}
	}

	total := scores[len(q)-1][len(l)-1]
	if total == 0 {
		return nil
	}

	// Walk back from the bottom-right cell: a positive streak marks a matched
	// position (move diagonally), otherwise the score was inherited from the
	// left.
	positions := make([]int, len(q))
	i, j := len(q)-1, len(l)-1
	for i >= 0 && j >= 0 {
		if streaks[i][j] == 0 {
			j--
		} else {
			positions[i] = j
			i--
			j--
		}
	}

	return &Match{Score: total, Positions: positions}
}

// Package highlight locates matched terms in document text and renders
// snippet windows with the matched spans marked. All offsets are rune
// offsets, so multi-byte text highlights correctly.
package highlight

import "unicode"

// Ellipsis marks a snippet boundary that truncates the source text.
const Ellipsis = "..."

// SegmentType distinguishes plain text from highlighted spans.
type SegmentType string

const (
	Text SegmentType = "text"
	Mark SegmentType = "mark"
)

// Segment is one piece of a rendered snippet. Concatenating the Value of
// every segment in order, ellipses excluded, reproduces a contiguous slice
// of the source text.
type Segment struct {
	Type  SegmentType `json:"type"`
	Value string      `json:"value"`
}

// Position is a half-open [Start, End) rune range in the source text. The
// zero Position means the term was not found.
type Position struct {
	Start int
	End   int
}

// FindTermPosition locates the first case-insensitive occurrence of term in
// text and extends the match through the remainder of the surrounding
// token, stopping at whitespace, '.', or ','. This highlights whole words
// even when the engine reports a stemmed form.
func FindTermPosition(term, text string) Position {
	if term == "" {
		return Position{}
	}
	runes := []rune(text)
	start := indexFold(runes, []rune(term))
	if start < 0 {
		return Position{}
	}
	end := start + len([]rune(term))
	for end < len(runes) && !isTokenBoundary(runes[end]) {
		end++
	}
	return Position{Start: start, End: end}
}

func indexFold(text, term []rune) int {
	if len(term) > len(text) {
		return -1
	}
	for i := 0; i+len(term) <= len(text); i++ {
		match := true
		for j := range term {
			if unicode.ToLower(text[i+j]) != unicode.ToLower(term[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func isTokenBoundary(r rune) bool {
	return r == '.' || r == ',' || unicode.IsSpace(r)
}

// BuildHighlightedText renders a snippet of text around the given match
// positions. The window extends snippetLength runes before the first
// position's start and after its end, so the first match is always inside
// its own window; truncated edges are marked with Ellipsis segments.
// Positions that overlap a previous one or fall outside the window are
// skipped. With no usable positions it returns a single Text segment
// holding the first snippetLength runes, ellipsized when that truncates.
func BuildHighlightedText(text string, positions []Position, snippetLength int) []Segment {
	runes := []rune(text)
	usable := make([]Position, 0, len(positions))
	prevEnd := 0
	for _, p := range positions {
		if p == (Position{}) || p.Start < prevEnd || p.End > len(runes) || p.Start >= p.End {
			continue
		}
		usable = append(usable, p)
		prevEnd = p.End
	}
	if len(usable) == 0 {
		if len(runes) > snippetLength {
			return []Segment{{Type: Text, Value: string(runes[:snippetLength]) + Ellipsis}}
		}
		return []Segment{{Type: Text, Value: text}}
	}

	winStart := usable[0].Start - snippetLength
	if winStart < 0 {
		winStart = 0
	}
	winEnd := usable[0].End + snippetLength
	if winEnd > len(runes) {
		winEnd = len(runes)
	}

	var segments []Segment
	if winStart > 0 {
		segments = append(segments, Segment{Type: Text, Value: Ellipsis})
	}

	cursor := winStart
	for _, p := range usable {
		if p.Start < winStart || p.End > winEnd {
			continue
		}
		if p.Start > cursor {
			segments = append(segments, Segment{Type: Text, Value: string(runes[cursor:p.Start])})
		}
		segments = append(segments, Segment{Type: Mark, Value: string(runes[p.Start:p.End])})
		cursor = p.End
	}
	if cursor < winEnd {
		segments = append(segments, Segment{Type: Text, Value: string(runes[cursor:winEnd])})
	}
	if winEnd < len(runes) {
		segments = append(segments, Segment{Type: Text, Value: Ellipsis})
	}
	return segments
}

package score

import (
	"unicode"

	"flingr/internal/domain"
)

// Spans reports which runes of text were consumed while matching query
// as a case-insensitive subsequence, as merged (start, length) runs in
// rune offsets. Returns nil for an empty query or when the scan ends
// before the whole query is consumed; there are no partial-credit spans.
func Spans(query, text string) []domain.Span {
	if query == "" {
		return nil
	}

	q := []rune(query)
	t := []rune(text)

	var spans []domain.Span
	qi := 0
	for ti := 0; ti < len(t) && qi < len(q); ti++ {
		if unicode.ToLower(t[ti]) != unicode.ToLower(q[qi]) {
			continue
		}
		qi++
		if n := len(spans); n > 0 && spans[n-1].Start+spans[n-1].Len == ti {
			spans[n-1].Len++
		} else {
			spans = append(spans, domain.Span{Start: ti, Len: 1})
		}
	}

	if qi < len(q) {
		return nil
	}
	return spans
}

// ShiftSpans offsets spans by a fixed amount, used when a label embeds
// decorative prefix text before the matched portion.
func ShiftSpans(spans []domain.Span, offset int) []domain.Span {
	if offset == 0 || len(spans) == 0 {
		return spans
	}
	shifted := make([]domain.Span, len(spans))
	for i, sp := range spans {
		shifted[i] = domain.Span{Start: sp.Start + offset, Len: sp.Len}
	}
	return shifted
}

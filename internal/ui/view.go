package ui

import (
	"fmt"
	"strings"

	"flingr/internal/domain"
)

// View renders the input line, the visible slice of results, and the
// status line.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	results := m.engine.Results()
	selected := m.engine.Selected()
	scroll := m.engine.Scroll()
	visible := m.visibleRows()

	end := scroll + visible
	if end > len(results) {
		end = len(results)
	}

	for i := scroll; i < end; i++ {
		res := results[i]
		if res.Kind == domain.KindPlaceholder {
			b.WriteString("  " + m.styles.Placeholder.Render(res.Label) + "\n")
			continue
		}

		marker := "  "
		if i == selected {
			marker = m.styles.Prompt.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(m.renderLabel(res, i == selected))
		b.WriteString(" " + m.styles.KindTag.Render(kindTag(res.Kind)))
		b.WriteString("\n")
	}

	if len(results) > end {
		b.WriteString(m.styles.Scroll.Render(fmt.Sprintf("  ... %d more", len(results)-end)))
		b.WriteString("\n")
	}

	if m.status != "" {
		style := m.styles.Status
		if m.statusError {
			style = m.styles.StatusError
		}
		b.WriteString("\n" + style.Render(m.status))
	}

	return m.styles.Main.Render(b.String())
}

// renderLabel paints the matched spans of a label in the highlight
// color, leaving the rest in the base style.
func (m *Model) renderLabel(res domain.Result, selected bool) string {
	base := m.styles.Item
	hi := m.styles.Highlight
	if selected {
		base = m.styles.Selected
		hi = m.styles.HighlightSel
	}

	runes := []rune(res.Label)
	if len(res.Spans) == 0 {
		return base.Render(string(runes))
	}

	var b strings.Builder
	pos := 0
	for _, span := range res.Spans {
		if span.Start > len(runes) {
			break
		}
		if span.Start > pos {
			b.WriteString(base.Render(string(runes[pos:span.Start])))
		}
		stop := span.Start + span.Len
		if stop > len(runes) {
			stop = len(runes)
		}
		b.WriteString(hi.Render(string(runes[span.Start:stop])))
		pos = stop
	}
	if pos < len(runes) {
		b.WriteString(base.Render(string(runes[pos:])))
	}
	return b.String()
}

func kindTag(kind domain.CandidateKind) string {
	switch kind {
	case domain.KindApp:
		return ""
	case domain.KindFile:
		return "[file]"
	case domain.KindConfigFile:
		return "[config]"
	case domain.KindShortcut:
		return "[shortcut]"
	case domain.KindPowerAction:
		return "[power]"
	case domain.KindTheme:
		return "[theme]"
	case domain.KindRunCommand:
		return "[run]"
	default:
		return ""
	}
}

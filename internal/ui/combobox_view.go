package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
//
// Layout is fixed so pointer events can be mapped back to rows: a bordered
// box of inputBoxHeight lines, then (while open with a result) one line per
// menu row, preceded by a "more above" line when scrolled.
func (c ComboBox[V, I]) View() string {
	menu := c.MenuView()
	if menu == "" {
		return c.BoxView()
	}
	return c.BoxView() + "\n" + menu
}

// BoxView renders only the bordered box: the committed value while closed,
// the search input while open. It is always inputBoxHeight lines tall.
func (c ComboBox[V, I]) BoxView() string {
	// c.Width is the visual width including border
	boxStyle := styleComboBoxBox()
	if c.focus != focusNone {
		boxStyle = styleComboBoxBoxFocused()
	}
	boxStyle = boxStyle.Width(c.Width - 2)

	if !c.open {
		return boxStyle.Render(c.renderClosedValue())
	}
	return boxStyle.Render(c.textInput.View())
}

// MenuView renders the candidate menu drawn right below the box, or "" while
// closed or before the first result arrives. Owners that float the menu over
// other content draw it at the box origin plus inputBoxHeight rows.
func (c ComboBox[V, I]) MenuView() string {
	if !c.open || c.result == nil {
		return ""
	}
	return c.renderMenu()
}

// MenuOffset is the number of rows between the box origin and the menu.
func (c ComboBox[V, I]) MenuOffset() int {
	return inputBoxHeight
}

func (c ComboBox[V, I]) renderClosedValue() string {
	inner := c.Width - 4
	switch {
	case !c.hasValue:
		return styleComboBoxPlaceholder().Render(truncateLabel(c.Placeholder, inner))
	case c.infoLoader != nil && !c.hasInfo:
		return styleComboBoxLoading().Render("Loading…")
	}

	text := ""
	if c.renderValue != nil {
		text = c.renderValue(c.value, c.info, c.hasInfo)
	} else {
		text = c.labelOf(c.value, c.info, c.hasInfo)
	}
	return styleComboBoxValue().Render(truncateLabel(text, inner))
}

func (c ComboBox[V, I]) renderMenu() string {
	if c.result.Len() == 0 {
		return styleComboBoxNoMatch().Render("  No matches")
	}

	start, end := c.visibleRange()
	rows := make([]string, 0, end-start+3)
	if start > 0 {
		rows = append(rows, styleComboBoxHint().Render("  ▲ more above"))
	}
	for i := start; i < end; i++ {
		label := truncateLabel(c.itemText(i), c.Width-4)
		if i == c.highlightIndex {
			rows = append(rows, styleComboBoxHighlight().Render("▸ "+label))
		} else {
			rows = append(rows, styleComboBoxOption().Render(label))
		}
	}
	if end < c.result.Len() {
		rows = append(rows, styleComboBoxHint().Render("  ▼ more below"))
	}
	if c.result.Total > c.result.Len() {
		rows = append(rows, styleComboBoxHint().Render(fmt.Sprintf("  showing %d of %d", c.result.Len(), c.result.Total)))
	}
	return strings.Join(rows, "\n")
}

func (c ComboBox[V, I]) itemText(i int) string {
	value := c.result.Values[i]
	info, ok := c.result.InfoAt(i)
	if c.renderItem != nil {
		return c.renderItem(value, info, ok)
	}
	return c.labelOf(value, info, ok)
}

// truncateLabel keeps a label on one line within width cells.
func truncateLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	return ansi.Truncate(s, width, "…")
}

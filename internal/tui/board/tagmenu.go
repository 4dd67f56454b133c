package board

import "strings"

// tagMenu is the tag-filter picker. The first entry clears the filter.
type tagMenu struct {
	entries []string
	cursor  int
}

const clearTagEntry = "(no filter)"

func newTagMenu(tags []string, current string) tagMenu {
	m := tagMenu{entries: append([]string{clearTagEntry}, tags...)}
	for i, e := range m.entries {
		if e == current {
			m.cursor = i
			break
		}
	}
	return m
}

func (t *tagMenu) up() {
	if t.cursor > 0 {
		t.cursor--
	}
}

func (t *tagMenu) down() {
	if t.cursor < len(t.entries)-1 {
		t.cursor++
	}
}

// Selected returns the chosen tag, or "" for the clear entry.
func (t tagMenu) Selected() string {
	if t.cursor == 0 {
		return ""
	}
	return t.entries[t.cursor]
}

func (t tagMenu) View(styles boardStyles) string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Filter by tag"))
	b.WriteString("\n\n")
	for i, e := range t.entries {
		line := "  " + e
		if i == t.cursor {
			line = styles.status.Render("> " + e)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.filterLine.Render("enter: apply · esc: close"))
	return styles.overlay.Render(b.String())
}

package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Paintersrp/corkboard/internal/pipeline"
)

// ListItem adapts a pipeline card to the bubbles list.
type ListItem struct {
	card pipeline.Card
}

func (i ListItem) FilterValue() string {
	return i.card.Title + " " + strings.Join(i.card.Tags, " ")
}

func (i ListItem) Title() string {
	if i.card.Pinned {
		return "● " + i.card.Title
	}
	return i.card.Title
}

func (i ListItem) Description() string {
	desc := i.card.Date.Format("Jan 02 2006")
	if len(i.card.Tags) > 0 {
		desc += "  " + strings.Join(i.card.Tags, " ")
	}
	if first, _, found := strings.Cut(i.card.Preview, "\n"); found || first != "" {
		desc += "  " + first
	}
	return desc
}

func itemsFromResult(result pipeline.Result) []list.Item {
	cards := result.Flattened()
	items := make([]list.Item, 0, len(cards))
	for _, c := range cards {
		items = append(items, ListItem{card: c})
	}
	return items
}

package suggestion

import "strings"

// NoSelection is the cursor value when no suggestion is highlighted
const NoSelection = -1

// CommitKind says what committing the navigator produced
type CommitKind int

const (
	// CommitNone means there was nothing to submit
	CommitNone CommitKind = iota
	// CommitLocate asks for geolocation
	CommitLocate
	// CommitSearch searches for Commit.Query
	CommitSearch
)

// Commit is the outcome of pressing enter
type Commit struct {
	Kind  CommitKind
	Query string
}

// Navigator is the keyboard cursor over the visible suggestion list. The
// zero value is closed with no selection.
type Navigator struct {
	items  []Suggestion
	cursor int
	open   bool
}

func NewNavigator() *Navigator {
	return &Navigator{cursor: NoSelection}
}

// SetItems replaces the visible list, opens it and resets the cursor
func (n *Navigator) SetItems(items []Suggestion) {
	n.items = append([]Suggestion(nil), items...)
	n.cursor = NoSelection
	n.open = len(items) > 0
}

func (n *Navigator) Items() []Suggestion {
	return n.items
}

// Cursor returns the highlighted index or NoSelection
func (n *Navigator) Cursor() int {
	if !n.open {
		return NoSelection
	}
	return n.cursor
}

func (n *Navigator) IsOpen() bool {
	return n.open
}

// Down moves the cursor forward, wrapping from last to first
func (n *Navigator) Down() {
	if !n.open || len(n.items) == 0 {
		return
	}
	if n.cursor == NoSelection {
		n.cursor = 0
		return
	}
	n.cursor = (n.cursor + 1) % len(n.items)
}

// Up moves the cursor backward, wrapping from first to last
func (n *Navigator) Up() {
	if !n.open || len(n.items) == 0 {
		return
	}
	if n.cursor <= 0 {
		n.cursor = len(n.items) - 1
		return
	}
	n.cursor--
}

// Close hides the list without touching the query
func (n *Navigator) Close() {
	n.open = false
	n.cursor = NoSelection
}

// Selected returns the highlighted suggestion, if any
func (n *Navigator) Selected() (Suggestion, bool) {
	if !n.open || n.cursor < 0 || n.cursor >= len(n.items) {
		return Suggestion{}, false
	}
	return n.items[n.cursor], true
}

// Enter commits the highlighted suggestion, or the raw query when nothing
// is highlighted, and closes the list.
func (n *Navigator) Enter(rawQuery string) Commit {
	selected, ok := n.Selected()
	n.Close()

	if ok {
		return CommitFor(selected)
	}

	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return Commit{Kind: CommitNone}
	}
	return Commit{Kind: CommitSearch, Query: query}
}

// CommitFor maps a chosen suggestion to its commit
func CommitFor(s Suggestion) Commit {
	if s.IsCurrentLocation() {
		return Commit{Kind: CommitLocate}
	}
	return Commit{Kind: CommitSearch, Query: s.Text}
}

package model

import (
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// List is an ordered collection of items with unique identities.
// It is not safe for concurrent use; its owner mutates it from one goroutine.
type List struct {
	items  []Item
	newID  IDFunc
	issued map[uuid.UUID]struct{}
}

// Option configures a List.
type Option func(*List)

// WithIDFunc replaces the identity generator.
func WithIDFunc(fn IDFunc) Option {
	return func(l *List) {
		if fn != nil {
			l.newID = fn
		}
	}
}

// NewList returns an empty list.
func NewList(opts ...Option) *List {
	l := &List{newID: NewID, issued: make(map[uuid.UUID]struct{})}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add cleans raw and appends a new pending item with that title.
// Blank input is ignored and reported with ok=false.
func (l *List) Add(raw string) (Item, bool) {
	title := CleanTitle(raw)
	if title == "" {
		return Item{}, false
	}
	it := Item{ID: l.freshID(), Title: title}
	l.items = append(l.items, it)
	return it, true
}

// Rename replaces the title of the item with the given id. The id and done
// flag are kept; a title that cleans to nothing leaves the item unchanged.
func (l *List) Rename(id uuid.UUID, raw string) bool {
	title := CleanTitle(raw)
	i := l.indexOf(id)
	if i < 0 || title == "" {
		return false
	}
	l.items[i].Title = title
	return true
}

// Toggle flips the done flag of the item with the given id.
func (l *List) Toggle(id uuid.UUID) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.items[i].Done = !l.items[i].Done
	return true
}

// Remove deletes the item with the given id and returns it with the index
// it occupied.
func (l *List) Remove(id uuid.UUID) (Item, int, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Item{}, -1, false
	}
	it := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return it, i, true
}

// Insert puts a previously removed item back at index, clamped to the list
// bounds. Only items issued by this list and not currently present are
// accepted.
func (l *List) Insert(index int, it Item) bool {
	if _, issued := l.issued[it.ID]; !issued || CleanTitle(it.Title) == "" {
		return false
	}
	if l.indexOf(it.ID) >= 0 {
		return false
	}
	index = max(0, min(index, len(l.items)))
	l.items = slices.Insert(l.items, index, it)
	return true
}

// Get returns the item with the given id.
func (l *List) Get(id uuid.UUID) (Item, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Item{}, false
	}
	return l.items[i], true
}

// At returns the item at position i.
func (l *List) At(i int) (Item, bool) {
	if i < 0 || i >= len(l.items) {
		return Item{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the items in list order.
func (l *List) Items() []Item { return slices.Clone(l.items) }

// Len reports the number of items.
func (l *List) Len() int { return len(l.items) }

// Stats counts done and pending items.
func (l *List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// CleanTitle turns control characters such as newlines and tabs into spaces
// and trims the result, so a title always renders on one line.
func CleanTitle(raw string) string {
	flat := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, raw)
	return strings.TrimSpace(flat)
}

func (l *List) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(l.items, func(it Item) bool { return it.ID == id })
}

// freshID asks the generator until it yields a non-nil id this list has
// never issued, so identities of removed items are not handed out again.
func (l *List) freshID() uuid.UUID {
	for {
		id := l.newID()
		if _, seen := l.issued[id]; id != uuid.Nil && !seen {
			l.issued[id] = struct{}{}
			return id
		}
	}
}

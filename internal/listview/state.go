// Package listview holds the customer table's client-side state as a value
// type with pure transitions, a View that runs the fetch side effects, and
// text and HTML renderers.
package listview

import (
	"fmt"
	"slices"

	"customerlist/internal/model"
)

// LoadStatus is the fetch lifecycle of the held records.
type LoadStatus int

const (
	Loading LoadStatus = iota
	Ready
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadState is a LoadStatus plus the failure message when Failed.
type LoadState struct {
	Status  LoadStatus
	Message string
}

// SortMode orders the table by created_at.
type SortMode int

const (
	Unsorted SortMode = iota
	Descending
	Ascending
)

// Next cycles Unsorted -> Descending -> Ascending -> Unsorted.
func (m SortMode) Next() SortMode {
	switch m {
	case Unsorted:
		return Descending
	case Descending:
		return Ascending
	default:
		return Unsorted
	}
}

// Glyph is the header indicator for m.
func (m SortMode) Glyph() string {
	switch m {
	case Ascending:
		return "▲"
	case Descending:
		return "▼"
	default:
		return "↕"
	}
}

// String returns the query/flag form: "", "desc" or "asc".
func (m SortMode) String() string {
	switch m {
	case Descending:
		return "desc"
	case Ascending:
		return "asc"
	default:
		return ""
	}
}

// ParseSortMode accepts the String forms; "" and "none" mean Unsorted.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "", "none":
		return Unsorted, nil
	case "desc":
		return Descending, nil
	case "asc":
		return Ascending, nil
	default:
		return Unsorted, fmt.Errorf("unknown sort mode %q", s)
	}
}

// Effect is the side effect a transition asks its caller to perform.
type Effect int

const (
	EffectNone Effect = iota
	EffectRefetch
)

// State is the whole list view state. The zero value is the initial state:
// no records, Loading, Unsorted. Transitions never mutate the receiver's
// Records slice.
type State struct {
	Records []model.Customer
	Load    LoadState
	Sort    SortMode
}

// StartLoading marks a fetch in flight.
func (s State) StartLoading() State {
	s.Load = LoadState{Status: Loading}
	return s
}

// Loaded stores a fetched batch. The batch is ordered by the current sort
// mode, so a late refetch never shows unsorted rows under a sorted header.
func (s State) Loaded(records []model.Customer) State {
	s.Records = SortRecords(records, s.Sort)
	s.Load = LoadState{Status: Ready}
	return s
}

// Fail discards the held batch and records msg.
func (s State) Fail(msg string) State {
	s.Records = nil
	s.Load = LoadState{Status: Failed, Message: msg}
	return s
}

// Toggle advances the sort mode. Entering Unsorted asks for a refetch and
// leaves the held records in place until it completes; the other modes
// reorder the held records.
func (s State) Toggle() (State, Effect) {
	s.Sort = s.Sort.Next()
	if s.Sort == Unsorted {
		return s, EffectRefetch
	}
	s.Records = SortRecords(s.Records, s.Sort)
	return s, EffectNone
}

// ShowTable reports whether the table is rendered.
func (s State) ShowTable() bool {
	return s.Load.Status == Ready && len(s.Records) > 0
}

// ShowEmpty reports whether the "no records" message replaces the table.
func (s State) ShowEmpty() bool {
	return s.Load.Status == Ready && len(s.Records) == 0
}

// SortRecords returns a copy of records ordered by CreatedAt. Ties keep their
// relative order. Unsorted returns the copy unchanged.
func SortRecords(records []model.Customer, mode SortMode) []model.Customer {
	if records == nil {
		return nil
	}
	out := slices.Clone(records)
	switch mode {
	case Ascending:
		slices.SortStableFunc(out, func(a, b model.Customer) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case Descending:
		slices.SortStableFunc(out, func(a, b model.Customer) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return out
}

package listview

import (
	"context"
	"errors"
	"sync"

	"customerlist/internal/apiclient"
	"customerlist/internal/model"
)

// User-facing messages.
const (
	MsgTitle       = "Müşteri Listesi"
	MsgLoading     = "Yükleniyor..."
	MsgEmpty       = "Henüz müşteri bulunmamaktadır."
	MsgFetchFailed = "Veri çekme hatası"
	MsgUnknown     = "Bir hata oluştu"
)

// Fetcher retrieves a fresh batch from the list endpoint.
type Fetcher interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]model.Customer, error)

func (f FetcherFunc) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return f(ctx)
}

// FailureMessage maps a fetch error to the text shown after "Hata: ".
func FailureMessage(err error) string {
	var se *apiclient.StatusError
	switch {
	case errors.As(err, &se):
		return MsgFetchFailed
	case err == nil || err.Error() == "":
		return MsgUnknown
	default:
		return err.Error()
	}
}

// View owns a State and performs the fetches its transitions request.
// Fetches run outside the lock; when they overlap, the last one to finish wins.
type View struct {
	fetcher Fetcher

	mu    sync.Mutex
	state State
}

// NewView returns a View in the initial state.
func NewView(f Fetcher) *View {
	return &View{fetcher: f}
}

// State returns a snapshot of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

// Load performs the initial fetch.
func (v *View) Load(ctx context.Context) State {
	v.mu.Lock()
	v.state = v.state.StartLoading()
	v.mu.Unlock()

	return v.fetch(ctx)
}

// Toggle advances the sort mode, refetching when it wraps to Unsorted.
func (v *View) Toggle(ctx context.Context) State {
	v.mu.Lock()
	next, effect := v.state.Toggle()
	v.state = next
	snap := v.snapshot()
	v.mu.Unlock()

	if effect == EffectRefetch {
		return v.fetch(ctx)
	}
	return snap
}

func (v *View) fetch(ctx context.Context) State {
	records, err := v.fetcher.ListCustomers(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = v.state.Fail(FailureMessage(err))
	} else {
		v.state = v.state.Loaded(records)
	}
	return v.snapshot()
}

func (v *View) snapshot() State {
	s := v.state
	if s.Records != nil {
		s.Records = append([]model.Customer(nil), s.Records...)
	}
	return s
}

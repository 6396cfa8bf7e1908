package listview

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customerlist/internal/apiclient"
	"customerlist/internal/model"
)

// countingFetcher returns batches in order, repeating the last one.
type countingFetcher struct {
	calls   int
	batches [][]model.Customer
	err     error
}

func (f *countingFetcher) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	i := f.calls - 1
	if i >= len(f.batches) {
		i = len(f.batches) - 1
	}
	return f.batches[i], nil
}

func TestView_Load(t *testing.T) {
	f := &countingFetcher{batches: [][]model.Customer{customersOn(3, 1, 2)}}
	v := NewView(f)

	assert.Equal(t, Loading, v.State().Load.Status)

	s := v.Load(context.Background())
	assert.Equal(t, Ready, s.Load.Status)
	assert.Equal(t, []int{3, 1, 2}, createdDays(s.Records))
	assert.Equal(t, 1, f.calls)
}

func TestView_ToggleCycleRefetchesOnce(t *testing.T) {
	f := &countingFetcher{batches: [][]model.Customer{
		customersOn(3, 1, 2),
		customersOn(4, 3, 1, 2),
	}}
	v := NewView(f)
	v.Load(context.Background())

	s := v.Toggle(context.Background())
	assert.Equal(t, Descending, s.Sort)
	assert.Equal(t, []int{3, 2, 1}, createdDays(s.Records))

	s = v.Toggle(context.Background())
	assert.Equal(t, Ascending, s.Sort)
	assert.Equal(t, []int{1, 2, 3}, createdDays(s.Records))

	s = v.Toggle(context.Background())
	assert.Equal(t, Unsorted, s.Sort)
	assert.Equal(t, 2, f.calls, "one initial load plus one reset")
	assert.Equal(t, []int{4, 3, 1, 2}, createdDays(s.Records), "reset shows the fresh server order")
}

func TestView_LoadEmpty(t *testing.T) {
	f := &countingFetcher{batches: [][]model.Customer{{}}}
	v := NewView(f)

	s := v.Load(context.Background())
	assert.Equal(t, Ready, s.Load.Status)
	assert.Empty(t, s.Records)
	assert.True(t, s.ShowEmpty())
}

func TestView_LoadFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "status error", err: &apiclient.StatusError{Status: http.StatusInternalServerError}, want: MsgFetchFailed},
		{name: "wrapped status error", err: errors.Join(errors.New("ctx"), &apiclient.StatusError{Status: 502}), want: MsgFetchFailed},
		{name: "transport error", err: errors.New("fetch customers: connection refused"), want: "fetch customers: connection refused"},
		{name: "error without text", err: errors.New(""), want: MsgUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(&countingFetcher{err: tt.err})
			s := v.Load(context.Background())
			assert.Equal(t, LoadState{Status: Failed, Message: tt.want}, s.Load)
			assert.Empty(t, s.Records)
		})
	}
}

func TestView_RefetchFailureDiscardsBatch(t *testing.T) {
	f := &countingFetcher{batches: [][]model.Customer{customersOn(1, 2)}}
	v := NewView(f)
	v.Load(context.Background())
	v.Toggle(context.Background())
	v.Toggle(context.Background())

	f.err = errors.New("boom")
	s := v.Toggle(context.Background())

	assert.Equal(t, Failed, s.Load.Status)
	assert.Nil(t, s.Records)
	assert.Equal(t, Unsorted, s.Sort)
}

func TestView_StateIsSnapshot(t *testing.T) {
	v := NewView(FetcherFunc(func(ctx context.Context) ([]model.Customer, error) {
		return customersOn(1, 2), nil
	}))
	v.Load(context.Background())

	s := v.State()
	require.Len(t, s.Records, 2)
	s.Records[0].ID = "mutated"

	assert.Equal(t, "a", v.State().Records[0].ID)
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, MsgUnknown, FailureMessage(nil))
	assert.Equal(t, MsgFetchFailed, FailureMessage(&apiclient.StatusError{Status: 404}))
	assert.Equal(t, "timeout", FailureMessage(errors.New("timeout")))
}

package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopSender struct{}

func (nopSender) Send(event string, data any) error { return nil }

func TestRegistry_MatchingMasterSessions(t *testing.T) {
	r := NewRegistry()

	r.RegisterMaster("plumber", nopSender{}, []int64{2, 3}, 5)
	r.RegisterMaster("electrician", nopSender{}, []int64{9}, 5)
	r.RegisterMaster("out-of-town", nopSender{}, []int64{2}, 7)
	r.RegisterCustomer("customer", nopSender{}, 42)

	tests := []struct {
		name       string
		cityID     int64
		categoryID int64
		want       []string
	}{
		{
			name:       "city and category match one master",
			cityID:     5,
			categoryID: 2,
			want:       []string{"plumber"},
		},
		{
			name:       "category held by nobody in city",
			cityID:     5,
			categoryID: 4,
			want:       nil,
		},
		{
			name:       "right category wrong city",
			cityID:     6,
			categoryID: 9,
			want:       nil,
		},
		{
			name:       "other city matches its own master",
			cityID:     7,
			categoryID: 2,
			want:       []string{"out-of-town"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.MatchingMasterSessions(tt.cityID, tt.categoryID)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestRegistry_ReregisterReplacesTags(t *testing.T) {
	r := NewRegistry()

	r.RegisterMaster("s1", nopSender{}, []int64{2}, 5)
	require.Equal(t, []string{"s1"}, r.MatchingMasterSessions(5, 2))

	// Same session re-registers with a different city and categories.
	r.RegisterMaster("s1", nopSender{}, []int64{3}, 9)

	assert.Empty(t, r.MatchingMasterSessions(5, 2))
	assert.Equal(t, []string{"s1"}, r.MatchingMasterSessions(9, 3))
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_CustomerSession(t *testing.T) {
	r := NewRegistry()
	r.RegisterCustomer("s1", nopSender{}, 42)

	sessionID, ok := r.CustomerSession(42)
	require.True(t, ok)
	assert.Equal(t, "s1", sessionID)

	_, ok = r.CustomerSession(43)
	assert.False(t, ok)

	sender, ok := r.Sender("s1")
	require.True(t, ok)
	assert.NotNil(t, sender)
}

func TestRegistry_RemoveIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.RegisterCustomer("s1", nopSender{}, 42)

	r.Remove("s1")
	r.Remove("s1")
	r.Remove("never-registered")

	assert.Equal(t, 0, r.Count())
	_, ok := r.CustomerSession(42)
	assert.False(t, ok)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", n)
			r.RegisterMaster(id, nopSender{}, []int64{int64(n % 3)}, 1)
			r.MatchingMasterSessions(1, int64(n%3))
			r.Remove(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, r.Count())
}

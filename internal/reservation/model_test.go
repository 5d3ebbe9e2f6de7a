package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"two nights", date(2026, 1, 1), date(2026, 1, 3), 2},
		{"one night", date(2026, 1, 1), date(2026, 1, 2), 1},
		{"week", date(2026, 3, 1), date(2026, 3, 8), 7},
		{"partial day rounds up", date(2026, 1, 1), time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC), 2},
		{"month boundary", date(2026, 1, 30), date(2026, 2, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.start, tt.end))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical ranges", date(2026, 1, 1), date(2026, 1, 5), date(2026, 1, 1), date(2026, 1, 5), true},
		{"partial overlap", date(2026, 1, 1), date(2026, 1, 5), date(2026, 1, 4), date(2026, 1, 8), true},
		{"contained", date(2026, 1, 1), date(2026, 1, 10), date(2026, 1, 3), date(2026, 1, 5), true},
		{"back to back", date(2026, 1, 1), date(2026, 1, 5), date(2026, 1, 5), date(2026, 1, 8), false},
		{"disjoint", date(2026, 1, 1), date(2026, 1, 3), date(2026, 1, 10), date(2026, 1, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1), "overlap must be symmetric")
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
		StatusCheckedIn:  {StatusCheckedOut},
		StatusCheckedOut: {},
		StatusCancelled:  {},
	}
	all := []Status{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

	for from, nexts := range allowed {
		ok := map[Status]bool{}
		for _, n := range nexts {
			ok[n] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusCheckedIn.IsActive())
	assert.False(t, StatusPending.IsActive())
	assert.False(t, StatusCheckedOut.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

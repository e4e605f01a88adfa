package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-service-fleetsync/internal/domain"
)

func TestRouteStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []domain.RouteStatus{
		domain.RouteScheduled, domain.RouteInProgress, domain.RouteCompleted, domain.RouteCancelled,
	} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, domain.RouteStatus("scheduled").Valid())
	assert.False(t, domain.RouteStatus("").Valid())
	assert.False(t, domain.RouteStatus("planned").Valid())
}

func TestRouteStatus_CanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to domain.RouteStatus
		ok       bool
	}{
		{domain.RouteScheduled, domain.RouteInProgress, true},
		{domain.RouteScheduled, domain.RouteCompleted, true},
		{domain.RouteScheduled, domain.RouteCancelled, true},
		{domain.RouteScheduled, domain.RouteScheduled, true},
		{domain.RouteInProgress, domain.RouteCompleted, true},
		{domain.RouteInProgress, domain.RouteCancelled, true},
		{domain.RouteInProgress, domain.RouteInProgress, true},
		{domain.RouteInProgress, domain.RouteScheduled, false},
		{domain.RouteCompleted, domain.RouteCompleted, false},
		{domain.RouteCompleted, domain.RouteScheduled, false},
		{domain.RouteCancelled, domain.RouteInProgress, false},
		{domain.RouteCancelled, domain.RouteCancelled, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestRouteStatus_Flags(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.RouteCompleted.ReleasesParties())
	assert.True(t, domain.RouteCancelled.ReleasesParties())
	assert.False(t, domain.RouteInProgress.ReleasesParties())

	assert.True(t, domain.RouteScheduled.Active())
	assert.True(t, domain.RouteInProgress.Active())
	assert.False(t, domain.RouteCompleted.Active())

	assert.Equal(t, []domain.RouteStatus{domain.RouteScheduled, domain.RouteInProgress}, domain.ActiveStatuses())
}

func TestParty_Available(t *testing.T) {
	t.Parallel()

	assert.True(t, (&domain.Driver{Status: "available"}).Available())
	assert.True(t, (&domain.Driver{Status: "Available"}).Available())
	assert.False(t, (&domain.Driver{Status: "on_duty"}).Available())
	assert.False(t, (*domain.Driver)(nil).Available())

	assert.True(t, (&domain.Vehicle{Status: "Available"}).Available())
	assert.True(t, (&domain.Vehicle{Status: "AVAILABLE"}).Available())
	assert.False(t, (&domain.Vehicle{Status: "InUse"}).Available())
	assert.False(t, (*domain.Vehicle)(nil).Available())
}

func TestParseTimestamp_KeepsWallClock(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	for _, in := range []string{
		"2025-03-14 09:30:00",
		"2025-03-14T09:30:00",
		"2025-03-14T09:30:00Z",
		"2025-03-14T09:30:00+07:00",
		"2025-03-14T09:30:00.123-05:00",
		"2025-03-14 09:30",
		" 2025-03-14 09:30:00 ",
	} {
		got, err := domain.ParseTimestamp(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s => %s", in, got)
	}
}

func TestParseTimestamp_Rejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "tomorrow", "14/03/2025 09:30", "2025-13-01 00:00:00"} {
		_, err := domain.ParseTimestamp(in)
		require.ErrorIs(t, err, domain.ErrBadTimestamp, in)
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.Equal(t, "2025-01-02 03:04:05", domain.FormatTimestamp(ts))
}

func TestPrincipal_CanView(t *testing.T) {
	t.Parallel()

	r := &domain.Route{DriverID: 5}

	assert.True(t, domain.Anonymous.CanView(r))
	assert.True(t, domain.Principal{UserID: 9, Role: "ADMIN"}.CanView(r))
	assert.True(t, domain.Principal{UserID: 5, Role: domain.RoleDriver}.CanView(r))
	assert.False(t, domain.Principal{UserID: 6, Role: domain.RoleDriver}.CanView(r))
}

func TestPartialRouteUpdate_Empty(t *testing.T) {
	t.Parallel()

	require.True(t, domain.PartialRouteUpdate{ID: 1}.Empty())
	notes := "x"
	require.False(t, domain.PartialRouteUpdate{ID: 1, Notes: &notes}.Empty())
}

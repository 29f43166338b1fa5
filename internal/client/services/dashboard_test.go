package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/foundlab/lostfound/internal/client/models"
)

func day(n int) time.Time {
	return time.Date(2025, 6, n, 0, 0, 0, 0, time.UTC)
}

func TestOverviewComputesStats(t *testing.T) {
	fc := &fakeClient{
		ItemsResp: []models.Item{
			{ID: 1, Status: models.ItemLost, DateReported: day(1)},
			{ID: 2, Status: models.ItemLost, DateReported: day(2)},
			{ID: 3, Status: models.ItemFound, DateReported: day(3)},
			{ID: 4, Status: models.ItemClaimed, DateReported: day(4)},
			{ID: 5, Status: models.ItemFound, DateReported: day(5)},
			{ID: 6, Status: models.ItemLost, DateReported: day(6)},
		},
		MyItemsResp: []models.Item{{ID: 1}, {ID: 6}},
		MyRequestsResp: []models.Request{
			{ID: 1, Status: models.RequestPending},
			{ID: 2, Status: models.RequestApproved},
			{ID: 3, Status: models.RequestPending},
		},
	}
	svc := NewDashboardService(fc)

	stats, recent, err := svc.Overview(context.Background())
	require.NoError(t, err)

	require.Equal(t, Stats{
		TotalItems:      6,
		LostItems:       3,
		FoundItems:      2,
		ClaimedItems:    1,
		MyItems:         2,
		MyRequests:      3,
		PendingRequests: 2,
	}, stats)

	// Five newest, newest first.
	require.Len(t, recent, 5)
	require.Equal(t, int64(6), recent[0].ID)
	require.Equal(t, int64(2), recent[4].ID)
}

func TestOverviewAnyFailureZeroesStats(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		set  func(*fakeClient)
	}{
		{"all items fails", func(f *fakeClient) { f.ItemsErr = boom }},
		{"my items fails", func(f *fakeClient) { f.MyItemsErr = boom }},
		{"my requests fails", func(f *fakeClient) { f.MyRequestsErr = boom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{
				ItemsResp:      []models.Item{{ID: 1, Status: models.ItemLost}},
				MyItemsResp:    []models.Item{{ID: 1}},
				MyRequestsResp: []models.Request{{ID: 1, Status: models.RequestPending}},
			}
			tt.set(fc)
			svc := NewDashboardService(fc)

			stats, recent, err := svc.Overview(context.Background())
			require.ErrorIs(t, err, boom)
			require.Equal(t, Stats{}, stats)
			require.Nil(t, recent)
		})
	}
}

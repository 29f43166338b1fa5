package services

import (
	"context"
	"sort"

	"github.com/foundlab/lostfound/internal/client/api"
	"github.com/foundlab/lostfound/internal/client/models"
)

// Stats summarizes the counts shown on the dashboard.
type Stats struct {
	TotalItems      int
	LostItems       int
	FoundItems      int
	ClaimedItems    int
	MyItems         int
	MyRequests      int
	PendingRequests int
}

const recentItemCount = 5

// DashboardService aggregates the three fetches behind the dashboard view.
type DashboardService interface {
	Overview(ctx context.Context) (Stats, []models.Item, error)
}

type dashboardService struct {
	client api.Client
}

func NewDashboardService(client api.Client) DashboardService {
	return &dashboardService{client: client}
}

// Overview fetches all items, the caller's items, and the caller's requests,
// and derives the stat counters plus the most recently reported items.
// The three fetches carry no relative ordering guarantee; if any one of them
// fails, zero-value stats are returned rather than a partial set.
func (s *dashboardService) Overview(ctx context.Context) (Stats, []models.Item, error) {
	allItems, err := s.client.ListItems(ctx)
	if err != nil {
		return Stats{}, nil, err
	}
	myItems, err := s.client.MyItems(ctx)
	if err != nil {
		return Stats{}, nil, err
	}
	myRequests, err := s.client.MyRequests(ctx)
	if err != nil {
		return Stats{}, nil, err
	}

	stats := Stats{
		TotalItems: len(allItems),
		MyItems:    len(myItems),
		MyRequests: len(myRequests),
	}
	for _, item := range allItems {
		switch item.Status {
		case models.ItemLost:
			stats.LostItems++
		case models.ItemFound:
			stats.FoundItems++
		case models.ItemClaimed:
			stats.ClaimedItems++
		}
	}
	for _, req := range myRequests {
		if req.Status == models.RequestPending {
			stats.PendingRequests++
		}
	}

	recent := make([]models.Item, len(allItems))
	copy(recent, allItems)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].DateReported.After(recent[j].DateReported)
	})
	if len(recent) > recentItemCount {
		recent = recent[:recentItemCount]
	}

	return stats, recent, nil
}

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/foundlab/lostfound/internal/client/models"
)

func shortDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func username(u *models.User) string {
	if u == nil {
		return "-"
	}
	return u.Username
}

func renderItems(items []models.Item) {
	if len(items) == 0 {
		printlnFn("No items.")
		return
	}
	for _, item := range items {
		printlnFn(fmt.Sprintf("#%d  [%s]  %s  (%s, %s, reported %s by %s)",
			item.ID, item.Status, item.Title, item.Category, item.Location,
			shortDate(item.DateReported), username(item.ReportedBy)))
	}
}

func renderItemDetail(item models.Item) {
	printlnFn(fmt.Sprintf("#%d  %s  [%s]", item.ID, item.Title, item.Status))
	printlnFn("Category: ", item.Category)
	printlnFn("Location: ", item.Location)
	printlnFn("Reported: ", shortDate(item.DateReported), "by", username(item.ReportedBy))
	printlnFn("Contact:  ", item.ContactInfo)
	if item.ImageURL != "" {
		printlnFn("Image:    ", item.ImageURL)
	}
	printlnFn(item.Description)

	if next := models.NextStatuses(item.Status); len(next) > 0 {
		actions := make([]string, len(next))
		for i, s := range next {
			actions[i] = fmt.Sprintf("mark %d %s", item.ID, s)
		}
		printlnFn("Next actions:", strings.Join(actions, " | "))
	}
}

func renderRequests(requests []models.Request) {
	if len(requests) == 0 {
		printlnFn("No requests.")
		return
	}
	for _, r := range requests {
		itemTitle := "-"
		if r.Item != nil {
			itemTitle = fmt.Sprintf("#%d %s", r.Item.ID, r.Item.Title)
		}
		line := fmt.Sprintf("#%d  [%s]  item %s  by %s on %s",
			r.ID, r.Status, itemTitle, username(r.RequestedBy), shortDate(r.RequestDate))
		if r.ReviewedBy != nil {
			line += fmt.Sprintf("  (reviewed by %s)", r.ReviewedBy.Username)
		}
		if r.Notes != "" {
			line += "  notes: " + r.Notes
		}
		printlnFn(line)
	}
}

func renderUsers(users []models.User) {
	if len(users) == 0 {
		printlnFn("No users.")
		return
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("#%d  %-16s %-8s %s  (since %s)",
			u.ID, u.Username, u.Role, u.Email, shortDate(u.CreatedAt)))
	}
}

package domain

import "testing"

func TestTopics(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{UpdatedTopic(" Orders "), "orders.updated"},
		{UpdatedTopic(""), ""},
		{NotificationTopic("error"), "notifications.error"},
		{NotificationTopic(" "), ""},
		{RefreshTopic("Reports.Updated"), "reports.updated"},
		{RefreshTopic("customer"), "companies.updated"},
		{RefreshTopic("verification_orders"), "orders.updated"},
		{RefreshTopic("-"), ""},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("expected %q got %q", tc.want, tc.got)
		}
	}
}

package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "Pending"},
		{"confirmed", OrderStatusConfirmed, "Confirmed"},
		{"shipped", OrderStatusShipped, "Shipped"},
		{"delivered", OrderStatusDelivered, "Delivered"},
		{"cancelled", OrderStatusCancelled, "Cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestDefaultOrderStatuses(t *testing.T) {
	statuses := DefaultOrderStatuses()
	want := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	if len(statuses) != len(want) {
		t.Fatalf("expected %d statuses, got %d", len(want), len(statuses))
	}
	for i, s := range want {
		if statuses[i] != s {
			t.Fatalf("expected %s at position %d, got %s", s, i, statuses[i])
		}
	}
}

func TestNotificationTypeValues(t *testing.T) {
	cases := []struct {
		got   NotificationType
		value string
	}{
		{NotificationTypeSystem, "system"},
		{NotificationTypeOrder, "order"},
		{NotificationTypeCart, "cart"},
		{NotificationTypeLogin, "login"},
	}

	for _, tc := range cases {
		if string(tc.got) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.got)
		}
	}
}

package models

import "testing"

func TestConversationKey(t *testing.T) {
	tests := []struct {
		name string
		args [3]string
		want string
	}{
		{name: "SortedPair", args: [3]string{"l1", "alice", "bob"}, want: "l1:alice:bob"},
		{name: "ReversedPair", args: [3]string{"l1", "bob", "alice"}, want: "l1:alice:bob"},
		{name: "DifferentListing", args: [3]string{"l2", "alice", "bob"}, want: "l2:alice:bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConversationKey(tt.args[0], tt.args[1], tt.args[2]); got != tt.want {
				t.Errorf("ConversationKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSoldFlagFor(t *testing.T) {
	if SoldFlagFor(ListingStatusSold) != true {
		t.Error("SoldFlagFor(sold) = false, want true")
	}
	if SoldFlagFor(ListingStatusAvailable) || SoldFlagFor(ListingStatusPending) {
		t.Error("SoldFlagFor(non-sold) = true, want false")
	}
}

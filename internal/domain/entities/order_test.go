package entities

import "testing"

func TestOrderStatus_Valid(t *testing.T) {
	if !OrderStatusOpen.Valid() || !OrderStatusClosed.Valid() {
		t.Fatalf("expected known statuses to be valid")
	}
	if OrderStatus("cancelled").Valid() || OrderStatus("").Valid() {
		t.Fatalf("expected unknown statuses to be invalid")
	}
}

func TestOrder_IsClosed(t *testing.T) {
	if (Order{Status: OrderStatusOpen}).IsClosed() {
		t.Fatalf("open order reported closed")
	}
	if !(Order{Status: OrderStatusClosed}).IsClosed() {
		t.Fatalf("closed order reported open")
	}
}

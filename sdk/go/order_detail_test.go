package helpdesksdk

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOrderDetail(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2022, 7, 18, 13, 0, 0, 0, time.UTC)

	setup := func(t *testing.T, o Order) (*fakeAPI, *OrderDetail, *StackNavigator, *alerts) {
		t.Helper()
		api, client := newFakeAPI(t)
		client.SetToken("jwt-1")
		api.put(o)
		nav := NewStackNavigator()
		nav.Navigate(RouteDetails, map[string]string{ParamOrderID: o.ID})
		notes := &alerts{}
		d := NewOrderDetail(o.ID, client, nav, WithNotifier(notes), WithLocation(time.UTC))
		return api, d, nav, notes
	}

	t.Run("starts loading and rejects edits", func(t *testing.T) {
		_, d, _, _ := setup(t, Order{ID: "1", Status: StatusOpen, CreatedAt: created})
		if d.State() != DetailLoading || d.Editable() {
			t.Fatalf("expected loading, not editable")
		}
		if err := d.SetSolution("x"); !errors.Is(err, ErrNotLoaded) {
			t.Fatalf("expected ErrNotLoaded, got %v", err)
		}
		if err := d.CloseOrder(ctx); !errors.Is(err, ErrNotLoaded) {
			t.Fatalf("expected ErrNotLoaded, got %v", err)
		}
	})

	t.Run("closes an open order", func(t *testing.T) {
		api, d, nav, notes := setup(t, Order{ID: "1", Patrimony: "9231123", Status: StatusOpen, CreatedAt: created})

		if err := d.Load(ctx); err != nil {
			t.Fatalf("load: %v", err)
		}
		if d.State() != DetailLoaded || !d.Editable() {
			t.Fatalf("expected loaded open order")
		}
		if d.When() != "18/07/2022 às 13:00" || d.ClosedWhen() != "" {
			t.Fatalf("unexpected dates %q %q", d.When(), d.ClosedWhen())
		}

		if err := d.SetSolution("Replaced cable"); err != nil {
			t.Fatalf("set solution: %v", err)
		}
		if err := d.CloseOrder(ctx); err != nil {
			t.Fatalf("close: %v", err)
		}

		o, ok := d.Order()
		if !ok || o.Status != StatusClosed || o.Solution != "Replaced cable" || o.ClosedAt == nil {
			t.Fatalf("unexpected order %+v", o)
		}
		if d.ClosedWhen() != "18/07/2022 às 15:00" {
			t.Fatalf("unexpected closed when %q", d.ClosedWhen())
		}
		if d.Editable() {
			t.Fatalf("closed order must not be editable")
		}
		if err := d.SetSolution("other"); !errors.Is(err, ErrReadOnly) {
			t.Fatalf("expected ErrReadOnly, got %v", err)
		}
		if api.count("closeOrder") != 1 {
			t.Fatalf("expected exactly one close request, got %d", api.count("closeOrder"))
		}
		if notes.last() != "Solicitação encerrada." {
			t.Fatalf("unexpected alert %q", notes.last())
		}
		if nav.Current().Route != RouteHome {
			t.Fatalf("expected to go back, at %+v", nav.Current())
		}
	})

	t.Run("empty draft never sends", func(t *testing.T) {
		api, d, nav, notes := setup(t, Order{ID: "1", Status: StatusOpen, CreatedAt: created})
		_ = d.Load(ctx)
		_ = d.SetSolution("   ")

		err := d.CloseOrder(ctx)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if api.count("closeOrder") != 0 {
			t.Fatalf("expected no close request")
		}
		if d.State() != DetailLoaded || !d.Editable() {
			t.Fatalf("expected order to stay open")
		}
		if notes.last() != "Informe a solução para encerrar a solicitação." {
			t.Fatalf("unexpected alert %q", notes.last())
		}
		if nav.Current().Route != RouteDetails {
			t.Fatalf("must not navigate")
		}
	})

	t.Run("closed order is never editable", func(t *testing.T) {
		closedAt := created.Add(time.Hour)
		api, d, _, _ := setup(t, Order{ID: "1", Status: StatusClosed, Solution: "done", CreatedAt: created, ClosedAt: &closedAt})
		_ = d.Load(ctx)

		if d.Editable() || d.Solution() != "done" {
			t.Fatalf("expected read-only closed order")
		}
		if err := d.CloseOrder(ctx); !errors.Is(err, ErrReadOnly) {
			t.Fatalf("expected ErrReadOnly, got %v", err)
		}
		if api.count("closeOrder") != 0 {
			t.Fatalf("expected no close request")
		}
	})

	t.Run("failure returns to open and allows retry", func(t *testing.T) {
		api, d, nav, notes := setup(t, Order{ID: "1", Status: StatusOpen, CreatedAt: created})
		_ = d.Load(ctx)
		_ = d.SetSolution("Replaced cable")

		api.set(func(f *fakeAPI) { f.failClose = true })
		err := d.CloseOrder(ctx)
		var rerr *RemoteError
		if !errors.As(err, &rerr) || rerr.Message != "Não foi possível encerrar a solicitação." {
			t.Fatalf("unexpected error %v", err)
		}
		if d.State() != DetailLoaded || !d.Editable() || d.Err() == nil {
			t.Fatalf("expected open order with recorded failure")
		}
		if d.Solution() != "Replaced cable" {
			t.Fatalf("draft lost")
		}
		if notes.last() != rerr.Message || nav.Current().Route != RouteDetails {
			t.Fatalf("unexpected alert or navigation")
		}

		api.set(func(f *fakeAPI) { f.failClose = false })
		if err := d.CloseOrder(ctx); err != nil {
			t.Fatalf("retry: %v", err)
		}
		if d.Editable() || d.Err() != nil {
			t.Fatalf("expected closed order after retry")
		}
	})

	t.Run("already closed elsewhere", func(t *testing.T) {
		api, d, _, _ := setup(t, Order{ID: "1", Status: StatusOpen, CreatedAt: created})
		_ = d.Load(ctx)
		_ = d.SetSolution("Replaced cable")

		closedAt := created.Add(time.Hour)
		api.put(Order{ID: "1", Status: StatusClosed, Solution: "someone else", CreatedAt: created, ClosedAt: &closedAt})

		err := d.CloseOrder(ctx)
		if err == nil || err.Error() != "Esta solicitação já foi encerrada." {
			t.Fatalf("unexpected error %v", err)
		}
		if ErrorCode(err) != "ORDER_ALREADY_CLOSED" {
			t.Fatalf("expected code to be preserved, got %q", ErrorCode(err))
		}
	})

	t.Run("missing order", func(t *testing.T) {
		_, client := newFakeAPI(t)
		client.SetToken("jwt-1")
		d := NewOrderDetail("missing", client, NewStackNavigator())

		if err := d.Load(ctx); ErrorCode(err) != "ORDER_NOT_FOUND" {
			t.Fatalf("expected ORDER_NOT_FOUND, got %v", err)
		}
		if d.State() != DetailLoading || d.Err() == nil {
			t.Fatalf("expected loading with recorded error")
		}
		if _, ok := d.Order(); ok {
			t.Fatalf("expected no order")
		}
	})

	t.Run("english dates", func(t *testing.T) {
		_, client := newFakeAPI(t)
		client.SetToken("jwt-1")
		d := NewOrderDetail("1", client, NewStackNavigator(), WithLocale(LocaleEN), WithLocation(time.UTC))
		d.order = Order{ID: "1", CreatedAt: created}
		if d.When() != "18/07/2022 at 13:00" {
			t.Fatalf("unexpected %q", d.When())
		}
	})
}

package helpdesksdk

import (
	"context"
	"sync"
)

// OrderList holds the signed-in user's orders and the selected status
// filter. Filtering never triggers a request; Refresh does.
type OrderList struct {
	orders OrderService
	nav    Navigator
	cfg    viewConfig

	mu      sync.RWMutex
	items   []OrderSummary
	filter  Status
	loading bool
	err     error
}

func NewOrderList(orders OrderService, nav Navigator, opts ...ViewOption) *OrderList {
	return &OrderList{orders: orders, nav: nav, cfg: newViewConfig(opts), filter: StatusOpen}
}

// Load fetches every order of the caller. On failure the previous items are
// kept.
func (l *OrderList) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return ErrBusy
	}
	l.loading = true
	l.mu.Unlock()

	orders, err := l.orders.ListOrders(ctx, "")

	l.mu.Lock()
	l.loading = false
	if err != nil {
		l.err = err
		l.mu.Unlock()
		msg := l.cfg.msg(MsgLoadFailed)
		l.cfg.notifier.Alert(l.cfg.msg(MsgOrderTitle), msg)
		return &RemoteError{Message: msg, Err: err}
	}
	items := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		items = append(items, l.cfg.summarize(o))
	}
	l.items = items
	l.err = nil
	l.mu.Unlock()
	return nil
}

// Refresh refetches the collection, e.g. when the list regains focus.
func (l *OrderList) Refresh(ctx context.Context) error {
	return l.Load(ctx)
}

func (l *OrderList) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Err is the failure of the last Load, if any.
func (l *OrderList) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

func (l *OrderList) SelectFilter(status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	l.mu.Lock()
	l.filter = status
	l.mu.Unlock()
	return nil
}

func (l *OrderList) Filter() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter
}

// Visible returns the loaded orders whose status matches the filter.
func (l *OrderList) Visible() []OrderSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]OrderSummary, 0, len(l.items))
	for _, it := range l.items {
		if it.Status == l.filter {
			out = append(out, it)
		}
	}
	return out
}

func (l *OrderList) Count() int {
	return len(l.Visible())
}

// EmptyMessage is shown instead of the list when nothing matches the filter.
func (l *OrderList) EmptyMessage() string {
	if l.Count() > 0 {
		return ""
	}
	if l.Filter() == StatusClosed {
		return l.cfg.msg(MsgEmptyClosed)
	}
	return l.cfg.msg(MsgEmptyOpen)
}

// OpenDetail navigates to the detail view. Only the id is passed along.
func (l *OrderList) OpenDetail(orderID string) {
	l.nav.Navigate(RouteDetails, map[string]string{ParamOrderID: orderID})
}

func (l *OrderList) NewOrder() {
	l.nav.Navigate(RouteNew, nil)
}

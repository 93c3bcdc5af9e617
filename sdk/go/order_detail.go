package helpdesksdk

import (
	"context"
	"strings"
	"sync"

	"rocket_help/pkg/dateformat"
)

type DetailState string

const (
	DetailLoading DetailState = "loading"
	DetailLoaded  DetailState = "loaded"
	DetailClosing DetailState = "closing"
)

// OrderDetail drives the detail screen of a single order:
// loading -> loaded(open) -> closing -> loaded(closed), or loading -> loaded(closed).
type OrderDetail struct {
	orderID string
	orders  OrderService
	nav     Navigator
	cfg     viewConfig

	mu       sync.RWMutex
	state    DetailState
	fetching bool
	order    Order
	draft    string
	err      error
}

func NewOrderDetail(orderID string, orders OrderService, nav Navigator, opts ...ViewOption) *OrderDetail {
	return &OrderDetail{orderID: orderID, orders: orders, nav: nav, cfg: newViewConfig(opts), state: DetailLoading}
}

// Load reads the order once.
func (d *OrderDetail) Load(ctx context.Context) error {
	d.mu.Lock()
	if d.fetching || d.state == DetailClosing {
		d.mu.Unlock()
		return ErrBusy
	}
	d.fetching = true
	d.state = DetailLoading
	d.mu.Unlock()

	order, err := d.orders.GetOrder(ctx, d.orderID)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.fetching = false
	if err != nil {
		d.err = err
		return err
	}
	d.order = order
	d.draft = order.Solution
	d.state = DetailLoaded
	d.err = nil
	return nil
}

func (d *OrderDetail) State() DetailState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Order returns the loaded order; ok is false until Load succeeds.
func (d *OrderDetail) Order() (order Order, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.order.ID == "" {
		return Order{}, false
	}
	return d.order, true
}

// Err is the last load or close failure.
func (d *OrderDetail) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

func (d *OrderDetail) When() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return dateformat.Format(d.order.CreatedAt, d.cfg.locale, d.cfg.location)
}

func (d *OrderDetail) ClosedWhen() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return dateformat.FormatPtr(d.order.ClosedAt, d.cfg.locale, d.cfg.location)
}

// Editable is true only for a loaded open order.
func (d *OrderDetail) Editable() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.editableLocked()
}

func (d *OrderDetail) editableLocked() bool {
	return d.state == DetailLoaded && d.order.Status == StatusOpen
}

// Solution is the draft while open and the stored solution once closed.
func (d *OrderDetail) Solution() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.draft
}

func (d *OrderDetail) SetSolution(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkWritableLocked(); err != nil {
		return err
	}
	d.draft = text
	return nil
}

func (d *OrderDetail) checkWritableLocked() error {
	switch {
	case d.state == DetailClosing:
		return ErrBusy
	case d.state == DetailLoading:
		return ErrNotLoaded
	case d.order.Status != StatusOpen:
		return ErrReadOnly
	}
	return nil
}

// CloseOrder sends the draft solution. An empty draft is rejected locally.
// On success the user is notified and taken back; on failure the order stays
// open and can be retried.
func (d *OrderDetail) CloseOrder(ctx context.Context) error {
	d.mu.Lock()
	if err := d.checkWritableLocked(); err != nil {
		d.mu.Unlock()
		return err
	}
	solution := strings.TrimSpace(d.draft)
	if solution == "" {
		d.mu.Unlock()
		msg := d.cfg.msg(MsgSolutionRequired)
		d.cfg.notifier.Alert(d.cfg.msg(MsgOrderTitle), msg)
		return &ValidationError{Message: msg}
	}
	d.state = DetailClosing
	d.mu.Unlock()

	closed, err := d.orders.CloseOrder(ctx, d.orderID, solution)

	d.mu.Lock()
	if err != nil {
		d.state = DetailLoaded
		d.err = err
		d.mu.Unlock()

		key := MsgCloseFailed
		if ErrorCode(err) == "ORDER_ALREADY_CLOSED" {
			key = MsgAlreadyClosed
		}
		msg := d.cfg.msg(key)
		d.cfg.notifier.Alert(d.cfg.msg(MsgOrderTitle), msg)
		return &RemoteError{Message: msg, Err: err}
	}
	d.order = closed
	d.draft = closed.Solution
	d.state = DetailLoaded
	d.err = nil
	d.mu.Unlock()

	d.cfg.notifier.Alert(d.cfg.msg(MsgOrderTitle), d.cfg.msg(MsgOrderClosed))
	d.nav.GoBack()
	return nil
}

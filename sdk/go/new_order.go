package helpdesksdk

import (
	"context"
	"strings"
	"sync"
)

// NewOrderForm drives the "new" route: register a request and go back.
type NewOrderForm struct {
	orders OrderService
	nav    Navigator
	cfg    viewConfig

	mu   sync.Mutex
	busy bool
}

func NewNewOrderForm(orders OrderService, nav Navigator, opts ...ViewOption) *NewOrderForm {
	return &NewOrderForm{orders: orders, nav: nav, cfg: newViewConfig(opts)}
}

func (f *NewOrderForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

func (f *NewOrderForm) Submit(ctx context.Context, patrimony, description string) (Order, error) {
	patrimony = strings.TrimSpace(patrimony)
	description = strings.TrimSpace(description)
	if patrimony == "" || description == "" {
		msg := f.cfg.msg(MsgOrderFieldsRequired)
		f.cfg.notifier.Alert(f.cfg.msg(MsgOrderTitle), msg)
		return Order{}, &ValidationError{Message: msg}
	}

	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return Order{}, ErrBusy
	}
	f.busy = true
	f.mu.Unlock()

	order, err := f.orders.CreateOrder(ctx, patrimony, description)

	f.mu.Lock()
	f.busy = false
	f.mu.Unlock()

	if err != nil {
		msg := f.cfg.msg(MsgCreateFailed)
		f.cfg.notifier.Alert(f.cfg.msg(MsgOrderTitle), msg)
		return Order{}, &RemoteError{Message: msg, Err: err}
	}
	f.cfg.notifier.Alert(f.cfg.msg(MsgOrderTitle), f.cfg.msg(MsgOrderCreated))
	f.nav.GoBack()
	return order, nil
}

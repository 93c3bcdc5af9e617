package helpdesksdk

import "sync"

type Route string

const (
	RouteHome    Route = "home"
	RouteNew     Route = "new"
	RouteDetails Route = "details"
)

// ParamOrderID is the only parameter of RouteDetails.
const ParamOrderID = "orderId"

// Navigator is the boundary to whatever shell hosts the views.
type Navigator interface {
	Navigate(route Route, params map[string]string)
	GoBack()
}

// Notifier shows a blocking alert to the user.
type Notifier interface {
	Alert(title, message string)
}

type NotifierFunc func(title, message string)

func (f NotifierFunc) Alert(title, message string) { f(title, message) }

type nopNotifier struct{}

func (nopNotifier) Alert(string, string) {}

// Location is one entry of a StackNavigator.
type Location struct {
	Route  Route
	Params map[string]string
}

// StackNavigator is an in-memory Navigator rooted at RouteHome.
type StackNavigator struct {
	mu    sync.Mutex
	stack []Location
}

func NewStackNavigator() *StackNavigator {
	return &StackNavigator{stack: []Location{{Route: RouteHome}}}
}

func (n *StackNavigator) Navigate(route Route, params map[string]string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	n.stack = append(n.stack, Location{Route: route, Params: copied})
}

// GoBack pops the current location. The root is never popped.
func (n *StackNavigator) GoBack() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}
}

func (n *StackNavigator) Current() Location {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

func (n *StackNavigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

package route

import "context"

// Method is an HTTP method accepted for route registration. Values match
// the net/http method strings.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// HandlerFunc is the unit of work bound to a route. It is invoked once per
// matched request, possibly concurrently across requests, and must not keep
// unsynchronized state between invocations.
type HandlerFunc func(ctx context.Context) (*Response, error)

// Response is the success value produced by a handler.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Route describes one registered endpoint. It is designed for declarative,
// data-driven route registration across services.
type Route struct {
	Method  Method
	Path    string
	Handler HandlerFunc
}

// Table is the ordered collection of routes built before serving. It is
// append-only until a terminal operation freezes it.
type Table struct {
	routes []Route
	frozen bool
}

func NewTable() *Table {
	return &Table{}
}

// Add appends one route and returns the table for chaining. Acceptance is
// unconditional: no path validation and no duplicate rejection happen here.
// Add panics once the table has been frozen by a terminal operation.
func (t *Table) Add(path string, method Method, handler HandlerFunc) *Table {
	if t.frozen {
		panic("route: Add on a frozen table")
	}
	t.routes = append(t.routes, Route{Method: method, Path: path, Handler: handler})
	return t
}

// Count reports the number of Add calls made, duplicates included.
func (t *Table) Count() int {
	return len(t.routes)
}

// Routes returns a copy of the registered routes in insertion order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Freeze marks the table read-only and returns its routes. Terminal
// operations call this; further Add calls panic.
func (t *Table) Freeze() []Route {
	t.frozen = true
	return t.Routes()
}

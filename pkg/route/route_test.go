package route

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noop(context.Context) (*Response, error) {
	return &Response{Status: 200}, nil
}

func TestAddGrowsCount(t *testing.T) {
	tbl := NewTable()
	assert.Equal(t, 0, tbl.Count())

	tbl.Add("/a", MethodGet, noop).
		Add("/b", MethodPost, noop).
		Add("/a", MethodGet, noop) // duplicate is accepted

	assert.Equal(t, 3, tbl.Count())
}

func TestRoutesPreserveInsertionOrder(t *testing.T) {
	tbl := NewTable().
		Add("/first", MethodGet, noop).
		Add("/second", MethodPut, noop).
		Add("/third", MethodDelete, noop)

	routes := tbl.Routes()
	assert.Len(t, routes, 3)
	assert.Equal(t, "/first", routes[0].Path)
	assert.Equal(t, MethodPut, routes[1].Method)
	assert.Equal(t, "/third", routes[2].Path)
}

func TestRoutesReturnsCopy(t *testing.T) {
	tbl := NewTable().Add("/a", MethodGet, noop)

	routes := tbl.Routes()
	routes[0].Path = "/mutated"

	assert.Equal(t, "/a", tbl.Routes()[0].Path)
}

func TestAddAfterFreezePanics(t *testing.T) {
	tbl := NewTable().Add("/a", MethodGet, noop)

	frozen := tbl.Freeze()
	assert.Len(t, frozen, 1)
	assert.Panics(t, func() { tbl.Add("/b", MethodGet, noop) })
}

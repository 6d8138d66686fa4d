// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/view"
)

// Counter is a stateful widget that displays a count and increments on tap.
type Counter struct {
	core.StatefulBase
	Initial int
	OnTap   func(count int)
}

func (c Counter) CreateState() core.State {
	return &counterController{}
}

type counterController struct {
	core.StateBase
	count int
	onTap func(int)
}

func (c *counterController) InitState() {
	w := c.Element().Widget().(Counter)
	c.count = w.Initial
	c.onTap = w.OnTap
}

func (c *counterController) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := c.Element().Widget().(Counter); ok {
		c.onTap = w.OnTap
	}
}

func (c *counterController) Increment() {
	c.SetState(func() {
		c.count++
	})
	if c.onTap != nil {
		c.onTap(c.count)
	}
}

func (c *counterController) Build(ctx core.BuildContext) core.Widget {
	return counterView{core.NewWidgetView(c)}
}

// counterView renders the controller's current count. Fresh per render
// pass; mutation flows back through the Increment operation.
type counterView struct {
	core.WidgetView[*counterController]
}

func (v counterView) Build(ctx core.BuildContext) core.Widget {
	return view.Tappable{
		OnTap: v.State.Increment,
		Child: view.Text{Content: strconv.Itoa(v.State.count)},
	}
}

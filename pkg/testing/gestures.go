package testing

import (
	"fmt"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/view"
)

// Tap delivers an activation to the first [view.Tappable] at or below
// the first element matched by the finder. The callback runs as a
// dispatched event, outside any build, the way a host platform would
// deliver it; call Pump afterwards to flush the resulting rebuilds.
func (t *WidgetTester) Tap(finder Finder) error {
	element := t.Find(finder).FirstOrNil()
	if element == nil {
		return fmt.Errorf("Tap: no element matches %s", finder.Description())
	}

	var onTap func()
	walkTree(element, func(e core.Element) bool {
		if tappable, ok := e.Widget().(view.Tappable); ok && tappable.OnTap != nil {
			onTap = tappable.OnTap
			return false
		}
		return true
	})
	if onTap == nil {
		return fmt.Errorf("Tap: no tappable widget at %s", finder.Description())
	}

	t.Dispatch(onTap)
	return nil
}

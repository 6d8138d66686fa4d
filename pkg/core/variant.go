package core

import (
	"fmt"

	"github.com/go-slate/slate/pkg/errors"
)

// ViewSet maps every declared variant of a mode enumeration to a view
// builder. Construction verifies the table is exhaustive, so selection
// failures surface when the component is defined rather than as a
// silent fallback at render time.
//
//	var layouts = core.MustViewSet(
//	    []LayoutMode{LayoutGrid, LayoutList, LayoutCompact},
//	    map[LayoutMode]func() core.Widget{
//	        LayoutGrid:    func() core.Widget { return gridView{} },
//	        LayoutList:    func() core.Widget { return listView{} },
//	        LayoutCompact: func() core.Widget { return compactView{} },
//	    },
//	)
type ViewSet[M comparable] struct {
	variants []M
	builders map[M]func() Widget
}

// NewViewSet validates that builders covers exactly the declared
// variants: every variant has a non-nil builder and no builder names an
// undeclared variant. Violations are reported as selection defects and
// returned as errors.
func NewViewSet[M comparable](variants []M, builders map[M]func() Widget) (*ViewSet[M], error) {
	declared := make(map[M]bool, len(variants))
	for _, v := range variants {
		if declared[v] {
			return nil, reportSelection(fmt.Errorf("variant %v declared twice", v))
		}
		declared[v] = true
	}

	for _, v := range variants {
		builder, ok := builders[v]
		if !ok {
			return nil, reportSelection(fmt.Errorf("no view builder for variant %v", v))
		}
		if builder == nil {
			return nil, reportSelection(fmt.Errorf("nil view builder for variant %v", v))
		}
	}
	for v := range builders {
		if !declared[v] {
			return nil, reportSelection(fmt.Errorf("view builder for undeclared variant %v", v))
		}
	}

	set := &ViewSet[M]{
		variants: append([]M(nil), variants...),
		builders: builders,
	}
	return set, nil
}

// MustViewSet is NewViewSet that panics on an invalid table. Intended
// for package-level construction, where the panic is a startup error.
func MustViewSet[M comparable](variants []M, builders map[M]func() Widget) *ViewSet[M] {
	set, err := NewViewSet(variants, builders)
	if err != nil {
		panic(err)
	}
	return set
}

// View constructs the view for a mode. Selection is a pure switch with
// no side effects. A mode outside the declared variants panics: the
// construction-time check makes this unreachable for any declared
// variant, so hitting it means the caller fabricated a mode value.
func (s *ViewSet[M]) View(mode M) Widget {
	builder, ok := s.builders[mode]
	if !ok {
		err := reportSelection(fmt.Errorf("no view registered for mode %v", mode))
		panic(err)
	}
	return builder()
}

// Variants returns the declared variant values in declaration order.
func (s *ViewSet[M]) Variants() []M {
	return append([]M(nil), s.variants...)
}

func reportSelection(err error) error {
	wrapped := &errors.FrameworkError{
		Op:   "core.ViewSet",
		Kind: errors.KindSelection,
		Err:  err,
	}
	errors.Report(wrapped)
	return wrapped
}

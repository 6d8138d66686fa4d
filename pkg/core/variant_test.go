package core

import (
	goerrors "errors"
	"reflect"
	"testing"

	"github.com/go-slate/slate/pkg/errors"
)

type displayMode int

const (
	modeList displayMode = iota
	modeGrid
	modeCompact
)

type listMode struct{ StatelessBase }

func (listMode) Build(ctx BuildContext) Widget { return nil }

type gridMode struct{ StatelessBase }

func (gridMode) Build(ctx BuildContext) Widget { return nil }

type compactMode struct{ StatelessBase }

func (compactMode) Build(ctx BuildContext) Widget { return nil }

func allModes() ([]displayMode, map[displayMode]func() Widget) {
	return []displayMode{modeList, modeGrid, modeCompact},
		map[displayMode]func() Widget{
			modeList:    func() Widget { return listMode{} },
			modeGrid:    func() Widget { return gridMode{} },
			modeCompact: func() Widget { return compactMode{} },
		}
}

func TestViewSetSelectsDistinctViews(t *testing.T) {
	variants, builders := allModes()
	set, err := NewViewSet(variants, builders)
	if err != nil {
		t.Fatal(err)
	}

	types := map[reflect.Type]bool{}
	for _, mode := range set.Variants() {
		types[reflect.TypeOf(set.View(mode))] = true
	}
	if len(types) != 3 {
		t.Errorf("distinct view types = %d, want 3", len(types))
	}
}

func TestViewSetMissingVariant(t *testing.T) {
	h := installCaptureHandler(t)
	variants, builders := allModes()
	delete(builders, modeGrid)

	_, err := NewViewSet(variants, builders)
	if err == nil {
		t.Fatal("missing builder must fail construction")
	}
	var fe *errors.FrameworkError
	if !goerrors.As(err, &fe) || fe.Kind != errors.KindSelection {
		t.Errorf("error = %v, want selection defect", err)
	}
	if len(h.frameworkErrs) != 1 {
		t.Errorf("reported errors = %d, want 1", len(h.frameworkErrs))
	}
}

func TestViewSetNilBuilder(t *testing.T) {
	installCaptureHandler(t)
	variants, builders := allModes()
	builders[modeGrid] = nil

	if _, err := NewViewSet(variants, builders); err == nil {
		t.Error("nil builder must fail construction")
	}
}

func TestViewSetUndeclaredVariant(t *testing.T) {
	installCaptureHandler(t)
	variants, builders := allModes()
	builders[displayMode(99)] = func() Widget { return listMode{} }

	if _, err := NewViewSet(variants, builders); err == nil {
		t.Error("undeclared variant must fail construction")
	}
}

func TestViewSetDuplicateVariant(t *testing.T) {
	installCaptureHandler(t)
	_, builders := allModes()

	_, err := NewViewSet([]displayMode{modeList, modeList, modeGrid, modeCompact}, builders)
	if err == nil {
		t.Error("duplicate declaration must fail construction")
	}
}

func TestMustViewSetPanicsOnInvalidTable(t *testing.T) {
	installCaptureHandler(t)
	variants, builders := allModes()
	delete(builders, modeCompact)

	defer func() {
		if recover() == nil {
			t.Error("MustViewSet must panic on an invalid table")
		}
	}()
	MustViewSet(variants, builders)
}

func TestViewPanicsOnFabricatedMode(t *testing.T) {
	installCaptureHandler(t)
	variants, builders := allModes()
	set := MustViewSet(variants, builders)

	defer func() {
		if recover() == nil {
			t.Error("View must panic for a mode outside the declared variants")
		}
	}()
	set.View(displayMode(42))
}

func TestVariantsReturnsDeclarationOrder(t *testing.T) {
	variants, builders := allModes()
	set := MustViewSet(variants, builders)

	got := set.Variants()
	if !reflect.DeepEqual(got, variants) {
		t.Errorf("Variants() = %v, want %v", got, variants)
	}
	// The returned slice is a copy.
	got[0] = modeCompact
	if set.Variants()[0] != modeList {
		t.Error("Variants() must not expose internal state")
	}
}

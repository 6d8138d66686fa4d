package testing_test

import (
	"testing"

	"github.com/go-slate/slate/pkg/core"
	slatetest "github.com/go-slate/slate/pkg/testing"
	"github.com/go-slate/slate/pkg/view"
)

func listFixture() core.Widget {
	return view.Group{
		ID: "root",
		Children: []core.Widget{
			view.Box{ID: "header", Child: view.Text{Content: "Title"}},
			view.Text{Content: "alpha"},
			view.Text{Content: "beta"},
			view.Box{ID: "footer", Child: view.Text{Content: "alphabet"}},
		},
	}
}

func TestByType(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(listFixture())

	if got := tester.Find(slatetest.ByType[view.Text]()).Count(); got != 4 {
		t.Errorf("ByType[Text] count = %d, want 4", got)
	}
	if got := tester.Find(slatetest.ByType[view.Box]()).Count(); got != 2 {
		t.Errorf("ByType[Box] count = %d, want 2", got)
	}
}

func TestByKey(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(listFixture())

	result := tester.Find(slatetest.ByKey("header"))
	if result.Count() != 1 {
		t.Fatalf("ByKey(header) count = %d, want 1", result.Count())
	}
	if _, ok := result.Widget().(view.Box); !ok {
		t.Errorf("ByKey(header) matched %T, want view.Box", result.Widget())
	}
}

func TestByText(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(listFixture())

	if got := tester.Find(slatetest.ByText("alpha")).Count(); got != 1 {
		t.Errorf("ByText(alpha) count = %d, want 1 (exact match only)", got)
	}
	if got := tester.Find(slatetest.ByTextContaining("alpha")).Count(); got != 2 {
		t.Errorf("ByTextContaining(alpha) count = %d, want 2", got)
	}
}

func TestByPredicate(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(listFixture())

	deep := tester.Find(slatetest.ByPredicate(func(e core.Element) bool {
		return e.Depth() >= 2
	}))
	if !deep.Exists() {
		t.Error("expected matches at depth >= 2")
	}
}

func TestDescendant(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(listFixture())

	inHeader := tester.Find(slatetest.Descendant(
		slatetest.ByKey("header"),
		slatetest.ByType[view.Text](),
	))
	if inHeader.Count() != 1 {
		t.Fatalf("Descendant count = %d, want 1", inHeader.Count())
	}
	if text := inHeader.Widget().(view.Text); text.Content != "Title" {
		t.Errorf("Descendant matched %q, want Title", text.Content)
	}
}

func TestAncestor(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(listFixture())

	boxes := tester.Find(slatetest.Ancestor(
		slatetest.ByText("alphabet"),
		slatetest.ByType[view.Box](),
	))
	if boxes.Count() != 1 {
		t.Fatalf("Ancestor count = %d, want 1", boxes.Count())
	}
	if box := boxes.Widget().(view.Box); box.ID != "footer" {
		t.Errorf("Ancestor matched box %v, want footer", box.ID)
	}
}

func TestFirstPanicsOnEmpty(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(listFixture())

	defer func() {
		if recover() == nil {
			t.Error("expected panic on First with no matches")
		}
	}()
	tester.Find(slatetest.ByText("missing")).First()
}

func TestFirstOrNil(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(listFixture())

	if tester.Find(slatetest.ByText("missing")).FirstOrNil() != nil {
		t.Error("FirstOrNil should return nil for no matches")
	}
}

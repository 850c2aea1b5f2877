package host

import "testing"

type testNode struct{}

func (testNode) NodeName() string { return "test" }

func TestQuerySelector(t *testing.T) {
	d := newDocument(newContainer("app", 800, 600))

	el, ok := d.QuerySelector("#app")
	if !ok {
		t.Fatal("expected #app")
	}
	if el.ClientWidth() != 800 || el.ClientHeight() != 600 {
		t.Fatalf("size: got %dx%d", el.ClientWidth(), el.ClientHeight())
	}

	for _, sel := range []string{"app", "#", "#missing", ".app"} {
		if _, ok := d.QuerySelector(sel); ok {
			t.Fatalf("%q: unexpected match", sel)
		}
	}
}

func TestContainerAppendChild(t *testing.T) {
	c := newContainer("app", 1, 1)
	c.AppendChild(nil)
	c.AppendChild(testNode{})
	if n := len(c.Children()); n != 1 {
		t.Fatalf("children: got %d", n)
	}
}

func TestContainerSetSize(t *testing.T) {
	c := newContainer("app", 10, 10)
	if c.setSize(10, 10) {
		t.Fatal("same size reported as change")
	}
	if !c.setSize(-5, 20) {
		t.Fatal("change not reported")
	}
	if c.ClientWidth() != 0 || c.ClientHeight() != 20 {
		t.Fatalf("size: got %dx%d", c.ClientWidth(), c.ClientHeight())
	}
}

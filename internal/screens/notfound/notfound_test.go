package notfound

import (
	"strings"
	"testing"
)

func TestNotFoundView(t *testing.T) {
	n := New(42)

	view := n.View(80, 20)
	if !strings.Contains(view, "Quiz 42 does not exist") {
		t.Errorf("expected view to name the missing id, got %q", view)
	}
	if n.Title() != "Not Found" {
		t.Errorf("expected title 'Not Found', got %q", n.Title())
	}
	if len(n.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

package class

import (
	"testing"

	"github.com/substratelabs/bindkit/object"
	"github.com/substratelabs/bindkit/ownership"
)

func TestBuilder_PropertyIdempotent(t *testing.T) {
	b := NewBuilder("Sprite")

	b.Property("frame", 0)
	b.Property("flip_h", false)
	b.Property("frame", 5) // re-registration replaces, never duplicates

	props := b.Properties()
	if len(props) != 2 {
		t.Fatalf("got %d properties, want 2", len(props))
	}
	if props[0].Name != "frame" || props[0].Default != 5 {
		t.Fatalf("first property = %+v, want frame/5 at original position", props[0])
	}
	if props[1].Name != "flip_h" {
		t.Fatalf("second property = %q, want flip_h", props[1].Name)
	}
}

func TestBuilder_MethodOrderPreserved(t *testing.T) {
	b := NewBuilder("Counter")

	BareMethod(b, "inc", func(owner *fakeNode, self *counterScript, args []any) any { return nil })
	RefMethod(b, "value", func(owner object.Ref[fakeNode, ownership.Shared], self *counterScript, args []any) any { return nil })
	BareMethod(b, "inc", func(owner *fakeNode, self *counterScript, args []any) any { return nil })

	names := b.MethodNames()
	if len(names) != 2 {
		t.Fatalf("got %d methods, want 2", len(names))
	}
	if names[0] != "inc" || names[1] != "value" {
		t.Fatalf("method order = %v", names)
	}
}

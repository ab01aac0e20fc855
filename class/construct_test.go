package class

import (
	"strings"
	"testing"

	"github.com/substratelabs/bindkit/object"
)

func TestNewInstance_RunsInit(t *testing.T) {
	rt := object.NewRuntime()

	inst, err := NewInstance[sprite, fakeNode](rt)
	if err != nil {
		t.Fatalf("NewInstance failed: %v", err)
	}

	if inst.Script().frame != 1 {
		t.Fatalf("payload frame = %d, want the constructor's output 1", inst.Script().frame)
	}
	if !inst.Base().visible {
		t.Fatal("Init did not observe the real owner")
	}

	if class, ok := rt.Class(inst.ID()); !ok || class != "Sprite" {
		t.Fatalf("class of %d = %q, %v", inst.ID(), class, ok)
	}
	if payload, ok := object.PayloadOf[sprite](rt, inst.ID()); !ok || payload != inst.Script() {
		t.Fatal("attached payload is not the instance's script")
	}
}

func TestNewInstance_FreshIdentity(t *testing.T) {
	rt := object.NewRuntime()

	a, err := NewInstance[sprite, fakeNode](rt)
	if err != nil {
		t.Fatalf("NewInstance failed: %v", err)
	}
	b, err := NewInstance[sprite, fakeNode](rt)
	if err != nil {
		t.Fatalf("NewInstance failed: %v", err)
	}

	if a.ID() == b.ID() {
		t.Fatal("each instance must get a freshly allocated identity")
	}
	if a.Base() == b.Base() {
		t.Fatal("each instance must get a fresh base object")
	}
}

func TestNewInstance_MissingConstructorPanics(t *testing.T) {
	rt := object.NewRuntime()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for a class without a zero-argument constructor")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "DetachedCamera") {
			t.Fatalf("panic %v does not name the class", r)
		}
		if !strings.Contains(msg, "does not have a zero-argument constructor") {
			t.Fatalf("panic %v does not state the contract violation", r)
		}
	}()

	NewInstance[detachedCamera, fakeNode](rt)
}

func TestEmplace_SkipsInit(t *testing.T) {
	rt := object.NewRuntime()

	before := initCalls
	script := &countingInit{}
	inst, err := Emplace[countingInit, fakeNode](rt, script)
	if err != nil {
		t.Fatalf("Emplace failed: %v", err)
	}
	if initCalls != before {
		t.Fatal("Emplace must never invoke the zero-argument constructor path")
	}
	if inst.Script() != script {
		t.Fatal("Emplace must attach the caller-supplied payload")
	}
}

func TestEmplace_ClassWithoutConstructor(t *testing.T) {
	rt := object.NewRuntime()

	// The explicit-payload path is exactly how constructor-less classes
	// are meant to be instantiated.
	inst, err := Emplace[detachedCamera, fakeNode](rt, &detachedCamera{zoom: 2})
	if err != nil {
		t.Fatalf("Emplace failed: %v", err)
	}
	if inst.Script().zoom != 2 {
		t.Fatal("payload state lost")
	}
	if class, ok := rt.Class(inst.ID()); !ok || class != "DetachedCamera" {
		t.Fatalf("class = %q, %v", class, ok)
	}
}

func TestNewInstance_ClosedRuntime(t *testing.T) {
	rt := object.NewRuntime()
	rt.Close()

	if _, err := NewInstance[sprite, fakeNode](rt); err == nil {
		t.Fatal("expected an error on a closed runtime")
	}
}

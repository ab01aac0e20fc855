package wasmhost

import (
	"context"
	"strings"
	"testing"
)

// areaModule exports:
//
//	(func (export "area") (param i64 i64) (result i64) (i64.mul (local.get 0) (local.get 1)))
//	(func (export "init") (result i64) (i64.const 1))
var areaModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic + version
	0x01, 0x0b, 0x02, // type section: 2 types
	0x60, 0x02, 0x7e, 0x7e, 0x01, 0x7e, // (i64, i64) -> i64
	0x60, 0x00, 0x01, 0x7e, // () -> i64
	0x03, 0x03, 0x02, 0x00, 0x01, // function section
	0x07, 0x0f, 0x02, // export section: 2 exports
	0x04, 'a', 'r', 'e', 'a', 0x00, 0x00,
	0x04, 'i', 'n', 'i', 't', 0x00, 0x01,
	0x0a, 0x0e, 0x02, // code section: 2 bodies
	0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x7e, 0x0b, // local.get 0; local.get 1; i64.mul
	0x04, 0x00, 0x42, 0x01, 0x0b, // i64.const 1
}

// bareModule exports only "area"; it has no constructor.
var bareModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x01, 0x07, 0x01,
	0x60, 0x02, 0x7e, 0x7e, 0x01, 0x7e,
	0x03, 0x02, 0x01, 0x00,
	0x07, 0x08, 0x01,
	0x04, 'a', 'r', 'e', 'a', 0x00, 0x00,
	0x0a, 0x09, 0x01,
	0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x7e, 0x0b,
}

// counterModule keeps state in a mutable global:
//
//	(global (mut i64) (i64.const 0))
//	(func (export "incr") (result i64) ...increments and returns the global)
//	(func (export "init") (result i64) (i64.const 0))
var counterModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x01, 0x05, 0x01,
	0x60, 0x00, 0x01, 0x7e,
	0x03, 0x03, 0x02, 0x00, 0x00,
	0x06, 0x06, 0x01, 0x7e, 0x01, 0x42, 0x00, 0x0b, // global (mut i64) = 0
	0x07, 0x0f, 0x02,
	0x04, 'i', 'n', 'c', 'r', 0x00, 0x00,
	0x04, 'i', 'n', 'i', 't', 0x00, 0x01,
	0x0a, 0x12, 0x02,
	0x0b, 0x00, 0x23, 0x00, 0x42, 0x01, 0x7c, 0x24, 0x00, 0x23, 0x00, 0x0b,
	0x04, 0x00, 0x42, 0x00, 0x0b,
}

func TestLoad_ScansExports(t *testing.T) {
	ctx := context.Background()
	loader, err := NewLoader(ctx)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	defer loader.Close(ctx)

	mod, err := loader.Load(ctx, "Shape", areaModule)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if mod.ClassName() != "Shape" {
		t.Fatalf("class name = %q", mod.ClassName())
	}
	if !mod.HasInit() {
		t.Fatal("init export not detected")
	}
	methods := mod.Methods()
	if len(methods) != 1 || methods[0] != "area" {
		t.Fatalf("methods = %v", methods)
	}
}

func TestLoad_InvalidModule(t *testing.T) {
	ctx := context.Background()
	loader, _ := NewLoader(ctx)
	defer loader.Close(ctx)

	if _, err := loader.Load(ctx, "Broken", []byte{0x00, 0x61}); err == nil {
		t.Fatal("expected a load error for a truncated binary")
	}
	if _, err := loader.Load(ctx, "", areaModule); err == nil {
		t.Fatal("expected an error for an empty class name")
	}
}

func TestNewInstance_CallsMethod(t *testing.T) {
	ctx := context.Background()
	loader, _ := NewLoader(ctx)
	defer loader.Close(ctx)

	mod, err := loader.Load(ctx, "Shape", areaModule)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	inst, err := mod.NewInstance(ctx)
	if err != nil {
		t.Fatalf("NewInstance failed: %v", err)
	}
	defer inst.Close(ctx)

	got, err := inst.Call(ctx, "area", 6, 7)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if got != 42 {
		t.Fatalf("area = %d, want 42", got)
	}

	if _, err := inst.Call(ctx, "no_such"); err == nil {
		t.Fatal("expected an error for an unknown method")
	}
}

func TestNewInstance_MissingInitPanics(t *testing.T) {
	ctx := context.Background()
	loader, _ := NewLoader(ctx)
	defer loader.Close(ctx)

	mod, err := loader.Load(ctx, "BareShape", bareModule)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if mod.HasInit() {
		t.Fatal("module should not report an init export")
	}

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "BareShape") {
			t.Fatalf("panic %v does not name the class", r)
		}
	}()
	mod.NewInstance(ctx)
}

func TestEmplace_SkipsInit(t *testing.T) {
	ctx := context.Background()
	loader, _ := NewLoader(ctx)
	defer loader.Close(ctx)

	mod, _ := loader.Load(ctx, "BareShape", bareModule)

	// Emplace is the explicit-payload path: no init required.
	inst, err := mod.Emplace(ctx)
	if err != nil {
		t.Fatalf("Emplace failed: %v", err)
	}
	defer inst.Close(ctx)

	if got, err := inst.Call(ctx, "area", 3, 5); err != nil || got != 15 {
		t.Fatalf("area = %d, %v", got, err)
	}
}

func TestInstances_IsolatedState(t *testing.T) {
	ctx := context.Background()
	loader, _ := NewLoader(ctx)
	defer loader.Close(ctx)

	mod, err := loader.Load(ctx, "Counter", counterModule)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	a, err := mod.NewInstance(ctx)
	if err != nil {
		t.Fatalf("NewInstance failed: %v", err)
	}
	defer a.Close(ctx)
	b, err := mod.NewInstance(ctx)
	if err != nil {
		t.Fatalf("NewInstance failed: %v", err)
	}
	defer b.Close(ctx)

	a.Call(ctx, "incr")
	got, err := a.Call(ctx, "incr")
	if err != nil || got != 2 {
		t.Fatalf("a.incr = %d, %v, want 2", got, err)
	}
	got, err = b.Call(ctx, "incr")
	if err != nil || got != 1 {
		t.Fatalf("b.incr = %d, %v, want 1: instances must not share state", got, err)
	}
}

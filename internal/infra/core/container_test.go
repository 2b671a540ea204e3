package core

import (
	"context"
	"testing"
)

func TestContainerRegisterAndResolve(t *testing.T) {
	c := NewContainer()
	comp := NewBaseComponent("a")
	if err := c.Register("a", comp); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := c.Register("a", NewBaseComponent("a")); err == nil {
		t.Fatal("duplicate registration accepted")
	}
	got, err := c.Resolve("a")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != comp {
		t.Fatal("resolved a different component")
	}
	if _, err := c.Resolve("missing"); err == nil {
		t.Fatal("missing component resolved")
	}
}

func TestSortComponentsByDependencies(t *testing.T) {
	c := NewContainer()
	_ = c.Register("c", NewBaseComponent("c", "b"))
	_ = c.Register("b", NewBaseComponent("b", "a"))
	_ = c.Register("a", NewBaseComponent("a"))

	order, err := c.SortComponentsByDependencies()
	if err != nil {
		t.Fatalf("sort failed: %v", err)
	}
	pos := map[string]int{}
	for i, comp := range order {
		pos[comp.Name()] = i
	}
	if !(pos["a"] < pos["b"] && pos["b"] < pos["c"]) {
		t.Fatalf("wrong order: %v", pos)
	}
}

func TestSortDetectsCycle(t *testing.T) {
	c := NewContainer()
	_ = c.Register("a", NewBaseComponent("a", "b"))
	_ = c.Register("b", NewBaseComponent("b", "a"))

	if _, err := c.SortComponentsByDependencies(); err == nil {
		t.Fatal("cycle not detected")
	}
}

func TestValidateDependenciesReportsMissing(t *testing.T) {
	c := NewContainer()
	_ = c.Register("a", NewBaseComponent("a", "ghost"))

	if _, err := c.ValidateDependencies(); err == nil {
		t.Fatal("missing dependency not reported")
	}
}

func TestReplaceRejectsActiveComponent(t *testing.T) {
	c := NewContainer()
	comp := NewBaseComponent("a")
	_ = c.Register("a", comp)

	if err := c.Replace("a", NewBaseComponent("a")); err != nil {
		t.Fatalf("replace of inactive failed: %v", err)
	}

	started := NewBaseComponent("b")
	_ = c.Register("b", started)
	if err := started.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := c.Replace("b", NewBaseComponent("b")); err == nil {
		t.Fatal("replace of active component accepted")
	}
}

func TestBaseComponentLifecycle(t *testing.T) {
	comp := NewBaseComponent("x", "dep1")
	if comp.IsActive() {
		t.Fatal("new component active")
	}
	if err := comp.HealthCheck(); err == nil {
		t.Fatal("inactive component healthy")
	}
	ctx := context.Background()
	if err := comp.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if !comp.IsActive() {
		t.Fatal("started component not active")
	}
	if err := comp.HealthCheck(); err != nil {
		t.Fatalf("active component unhealthy: %v", err)
	}
	comp.AddDependencies("dep2")
	deps := comp.Dependencies()
	if len(deps) != 2 || deps[1] != "dep2" {
		t.Fatalf("deps = %v, want [dep1 dep2]", deps)
	}
	if err := comp.Stop(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if comp.IsActive() {
		t.Fatal("stopped component still active")
	}
}

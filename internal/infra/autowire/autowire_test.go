package autowire

import (
	"reflect"
	"testing"

	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

type storage struct {
	*core.BaseComponent
}

type consumer struct {
	*core.BaseComponent
	Store    *storage `infra:"dep:storage"`
	Optional *storage `infra:"dep:ghost?"`
	Plain    string
}

func TestInjectWiresTaggedFields(t *testing.T) {
	c := core.NewContainer()
	store := &storage{BaseComponent: core.NewBaseComponent("storage")}
	if err := c.Register("storage", store); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	comp := &consumer{BaseComponent: core.NewBaseComponent("consumer")}
	if err := Inject(c, comp); err != nil {
		t.Fatalf("inject failed: %v", err)
	}
	if comp.Store != store {
		t.Fatal("dependency not assigned")
	}
	if comp.Optional != nil {
		t.Fatal("missing optional dependency assigned")
	}
	deps := comp.Dependencies()
	if len(deps) != 1 || deps[0] != "storage" {
		t.Fatalf("runtime deps = %v, want [storage]", deps)
	}
}

func TestInjectFailsOnMissingRequiredDep(t *testing.T) {
	c := core.NewContainer()
	comp := &consumer{BaseComponent: core.NewBaseComponent("consumer")}
	if err := Inject(c, comp); err == nil {
		t.Fatal("missing required dependency not reported")
	}
}

type ifaceConsumer struct {
	*core.BaseComponent
	Dep core.Component `infra:"dep:storage"`
}

func TestInjectAssignsInterfaces(t *testing.T) {
	c := core.NewContainer()
	store := &storage{BaseComponent: core.NewBaseComponent("storage")}
	_ = c.Register("storage", store)

	comp := &ifaceConsumer{BaseComponent: core.NewBaseComponent("iface_consumer")}
	if err := Inject(c, comp); err != nil {
		t.Fatalf("inject failed: %v", err)
	}
	if comp.Dep == nil || comp.Dep.Name() != "storage" {
		t.Fatal("interface field not wired")
	}
}

func TestInferTagDependencies(t *testing.T) {
	comp := &consumer{BaseComponent: core.NewBaseComponent("consumer")}
	got := InferTagDependencies(comp)
	want := []string{"storage", "ghost"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

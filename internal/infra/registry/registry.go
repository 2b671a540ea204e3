package registry

import (
	"fmt"
	"sort"

	"github.com/S3b4sB0t3r0/evg-server/internal/infra/autowire"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/config"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

// BuilderFunc returns (enabled, component, error). enabled=false skips
// registration without failing the boot.
type BuilderFunc func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error)

type Builder struct {
	Name string      // component name; inferred for auto builders
	Fn   BuilderFunc // build function
	Auto bool        // auto builders infer name + build-time deps from tags
	Deps []string    // build-time deps used to order builders

	prebuilt   core.Component
	preEnabled bool
}

var builders []*Builder

func findBuilder(name string) *Builder {
	for _, b := range builders {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Register adds a builder under an explicit component name.
func Register(name string, fn BuilderFunc) {
	if name == "" {
		panic("registry: empty name in Register")
	}
	if findBuilder(name) != nil {
		panic("registry: duplicate builder name " + name)
	}
	builders = append(builders, &Builder{Name: name, Fn: fn})
}

// RegisterWithDeps adds a builder that must run after the named builders.
func RegisterWithDeps(name string, deps []string, fn BuilderFunc) {
	if name == "" {
		panic("registry: empty name in RegisterWithDeps")
	}
	if findBuilder(name) != nil {
		panic("registry: duplicate builder name " + name)
	}
	builders = append(builders, &Builder{Name: name, Fn: fn, Deps: deps})
}

// RegisterAuto adds a builder whose component name and build-time deps are
// inferred from the built instance (Name() and `infra:"dep:..."` tags).
func RegisterAuto(fn BuilderFunc) { builders = append(builders, &Builder{Auto: true, Fn: fn}) }

// Reset drops all builders. Test seam only.
func Reset() { builders = nil }

// BuildAndRegisterAll builds every registered builder:
//  1. pre-build auto builders to infer their names,
//  2. infer their build-time deps from struct tags,
//  3. topologically sort all builders,
//  4. build (reusing cached auto instances) and register components,
//  5. apply declared runtime dependency extensions and autowire tags.
func BuildAndRegisterAll(cfg *config.AppConfig, c *core.Container) error {
	for _, b := range builders {
		if !b.Auto || b.Name != "" {
			continue
		}
		enabled, comp, err := b.Fn(cfg, c)
		if err != nil || comp == nil {
			b.preEnabled, b.prebuilt = false, nil
			continue
		}
		b.preEnabled, b.prebuilt = enabled, comp
		if !enabled {
			continue
		}
		name := comp.Name()
		if name == "" {
			return fmt.Errorf("auto builder produced unnamed component")
		}
		if existing := findBuilder(name); existing != nil && existing != b {
			return fmt.Errorf("duplicate inferred name: %s", name)
		}
		b.Name = name
	}

	for _, b := range builders {
		if !b.Auto || len(b.Deps) > 0 || b.Name == "" || b.prebuilt == nil || !b.preEnabled {
			continue
		}
		var filtered []string
		for _, d := range autowire.InferTagDependencies(b.prebuilt) {
			if findBuilder(d) != nil {
				filtered = append(filtered, d)
			}
		}
		b.Deps = filtered
	}

	ordered, err := topoSortBuilders(builders)
	if err != nil {
		return err
	}

	for _, b := range ordered {
		var enabled bool
		var comp core.Component
		if b.Auto {
			enabled, comp = b.preEnabled, b.prebuilt
		} else {
			enabled, comp, err = b.Fn(cfg, c)
			if err != nil {
				return fmt.Errorf("build %s failed: %w", b.Name, err)
			}
		}
		if !enabled || comp == nil {
			continue
		}
		if err := c.Register(b.Name, comp); err != nil {
			return fmt.Errorf("register %s failed: %w", b.Name, err)
		}
	}

	applyRuntimeDepExtensions(c)
	if err := autowire.InjectAll(c); err != nil {
		return err
	}
	return nil
}

func topoSortBuilders(list []*Builder) ([]*Builder, error) {
	nameMap := map[string]*Builder{}
	inDeg := map[string]int{}
	adj := map[string][]string{}
	for _, b := range list {
		if b.Name != "" {
			nameMap[b.Name] = b
			inDeg[b.Name] = 0
		}
	}
	for _, b := range list {
		for _, d := range b.Deps {
			if _, ok := nameMap[d]; !ok {
				continue
			}
			adj[d] = append(adj[d], b.Name)
			inDeg[b.Name]++
		}
	}
	var zero []string
	for n, d := range inDeg {
		if d == 0 {
			zero = append(zero, n)
		}
	}
	sort.Strings(zero)
	var ordered []*Builder
	for len(zero) > 0 {
		n := zero[0]
		zero = zero[1:]
		ordered = append(ordered, nameMap[n])
		for _, nxt := range adj[n] {
			inDeg[nxt]--
			if inDeg[nxt] == 0 {
				zero = append(zero, nxt)
			}
		}
		sort.Strings(zero)
	}
	if len(ordered) != len(nameMap) {
		var cyc []string
		for n, d := range inDeg {
			if d > 0 {
				cyc = append(cyc, n)
			}
		}
		sort.Strings(cyc)
		return nil, fmt.Errorf("registry: cyclic builder deps: %v", cyc)
	}
	return ordered, nil
}

package registry

import (
	"log"
	"sync"

	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

// Extra runtime dependency edges declared by project packages before boot.
// key: target component name -> additional dependency names.
var (
	runtimeDepExtMap = map[string][]string{}
	runtimeDepExtMu  sync.Mutex
)

// ExtendRuntimeDependencies declares that component `target` must start after
// the given components. Affects runtime start/stop ordering only, not builder
// order (use RegisterWithDeps for that). Must be called before
// BuildAndRegisterAll, typically in a package init.
func ExtendRuntimeDependencies(target string, deps ...string) {
	if target == "" || len(deps) == 0 {
		return
	}
	runtimeDepExtMu.Lock()
	defer runtimeDepExtMu.Unlock()
	runtimeDepExtMap[target] = append(runtimeDepExtMap[target], deps...)
}

func applyRuntimeDepExtensions(c *core.Container) {
	runtimeDepExtMu.Lock()
	defer runtimeDepExtMu.Unlock()
	for target, extra := range runtimeDepExtMap {
		comp, err := c.Resolve(target)
		if err != nil {
			log.Printf("registry: runtime dep extension target %s not registered (skipped): %v", target, err)
			continue
		}
		if extender, ok := comp.(interface{ AddDependencies(...string) }); ok {
			extender.AddDependencies(extra...)
		} else {
			log.Printf("registry: component %s does not support AddDependencies; extension skipped", target)
		}
	}
	// clear so a second BuildAndRegisterAll does not re-apply
	runtimeDepExtMap = map[string][]string{}
}

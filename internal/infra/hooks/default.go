package hooks

import (
	"context"
	"log"
)

var globalHookManager = NewManager()

func init() {
	register := func(name string, phase Phase, fn HookFunc) {
		if err := RegisterHook(name, phase, fn, 100); err != nil {
			log.Printf("failed to register default hook %s: %v", name, err)
		}
	}
	register("log_startup", BeforeStart, func(ctx context.Context) error {
		log.Println("application is starting...")
		return nil
	})
	register("log_started", AfterStart, func(ctx context.Context) error {
		log.Println("application started")
		return nil
	})
	register("log_shutdown", BeforeShutdown, func(ctx context.Context) error {
		log.Println("application is shutting down...")
		return nil
	})
	register("log_shutdown_complete", AfterShutdown, func(ctx context.Context) error {
		log.Println("application shutdown completed")
		return nil
	})
}

// RegisterHook adds a hook to the global manager used by the app lifecycle.
func RegisterHook(name string, phase Phase, function HookFunc, priority int) error {
	return globalHookManager.Register(&Hook{Name: name, Phase: phase, Function: function, Priority: priority})
}

func ExecuteHooks(ctx context.Context, phase Phase) error {
	return globalHookManager.Execute(ctx, phase)
}

func GetGlobalHookManager() *Manager { return globalHookManager }

package hooks

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type HookFunc func(ctx context.Context) error

// Phase identifies where in the application lifecycle a hook runs.
type Phase string

const (
	BeforeStart    Phase = "before_start"
	AfterStart     Phase = "after_start"
	BeforeShutdown Phase = "before_shutdown"
	AfterShutdown  Phase = "after_shutdown"
)

type Hook struct {
	Name     string
	Phase    Phase
	Function HookFunc
	Priority int // lower runs first
}

type Manager struct {
	hooks map[Phase][]*Hook
	mutex sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{hooks: make(map[Phase][]*Hook)}
}

func (m *Manager) Register(hook *Hook) error {
	if hook == nil {
		return fmt.Errorf("hook cannot be nil")
	}
	if hook.Function == nil {
		return fmt.Errorf("hook function cannot be nil")
	}
	if !isValidPhase(hook.Phase) {
		return fmt.Errorf("invalid hook phase: %s", hook.Phase)
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.hooks[hook.Phase] = append(m.hooks[hook.Phase], hook)
	sort.SliceStable(m.hooks[hook.Phase], func(i, j int) bool {
		return m.hooks[hook.Phase][i].Priority < m.hooks[hook.Phase][j].Priority
	})
	return nil
}

func (m *Manager) Execute(ctx context.Context, phase Phase) error {
	m.mutex.RLock()
	list := make([]*Hook, len(m.hooks[phase]))
	copy(list, m.hooks[phase])
	m.mutex.RUnlock()
	for _, h := range list {
		if err := h.Function(ctx); err != nil {
			return fmt.Errorf("hook %s (%s) failed: %w", h.Name, phase, err)
		}
	}
	return nil
}

func isValidPhase(p Phase) bool {
	switch p {
	case BeforeStart, AfterStart, BeforeShutdown, AfterShutdown:
		return true
	}
	return false
}

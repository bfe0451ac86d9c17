package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/lixenwraith/dice-roller/service"
)

var (
	ErrDuplicateService   = errors.New("service already registered")
	ErrUnknownDependency  = errors.New("dependency not registered")
	ErrCircularDependency = errors.New("circular dependency detected in services")
)

// Hub is the runtime container for service instances
// Guarantees every service that began Init gets Stop, in reverse dependency order
type Hub struct {
	mu          sync.RWMutex
	services    map[string]service.Service
	sorted      []string // Topological order, computed on InitAll
	initialized []string // Services whose Init was attempted, for teardown
	started     []string // Services that completed Start
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{
		services: make(map[string]service.Service),
	}
}

// Register adds a service instance to the hub
// Clears cached sort order to force recomputation
func (h *Hub) Register(svc service.Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateService, name)
	}

	h.services[name] = svc
	h.sorted = nil
	return nil
}

// InitAll resolves dependencies and calls Init on all services
// On failure, stops every service whose Init was attempted, in reverse order
func (h *Hub) InitAll(args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	h.initialized = nil
	for _, name := range h.sorted {
		svc := h.services[name]
		// Recorded before Init so a partially acquired service is still released
		h.initialized = append(h.initialized, name)
		if err := svc.Init(args...); err != nil {
			h.stopReverse(h.initialized)
			h.initialized = nil
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
	}

	return nil
}

// StartAll calls Start on all services in topological order
// On failure, stops every initialized service in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil
	for _, name := range h.initialized {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.initialized)
			h.initialized = nil
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}

	return nil
}

// StopAll calls Stop on all initialized services in reverse topological order
// Logs errors but does not fail; safe to call more than once
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopReverse(h.initialized)
	h.initialized = nil
	h.started = nil
}

// SubscribeAll offers register to every initialized service implementing service.Subscriber
// Called in dependency order so handler registration order is deterministic
func (h *Hub) SubscribeAll(register func(service.Handler)) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, name := range h.initialized {
		if sub, ok := h.services[name].(service.Subscriber); ok {
			sub.Subscribe(register)
		}
	}
}

// stopReverse expects the lock held
func (h *Hub) stopReverse(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.services[names[i]].Stop(); err != nil {
			log.Printf("service %s stop: %v", names[i], err)
		}
	}
}

// topologicalSort computes initialization order using Kahn's algorithm
// Ties are broken by name so the order is stable across runs
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int)
	dependents := make(map[string][]string) // dep -> services that depend on it

	for name := range h.services {
		inDegree[name] = 0
	}

	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on %s: %w", name, dep, ErrUnknownDependency)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		var ready []string
		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	if len(result) != len(h.services) {
		return nil, ErrCircularDependency
	}

	return result, nil
}

// Names returns all registered service names in sorted order
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

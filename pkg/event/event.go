// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Craft event types
const (
	PartAttached   Type = "part_attached"
	FuelStarvation Type = "fuel_starvation"
	TankDepleted   Type = "tank_depleted"
	FuelExhausted  Type = "fuel_exhausted"
	RunStarted     Type = "run_started"
	RunFinished    Type = "run_finished"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatches synchronously on the
// publishing goroutine
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.Unsubscribe(eventType, id) },
	}
}

// Unsubscribe removes the handler registered under id
func (b *Bus) Unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, reg := range regs {
		if reg.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers in subscription order
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := append([]registration(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, reg := range regs {
		reg.handler(event)
	}
}

// PartEvent is published when a part is attached to a craft
type PartEvent struct {
	BaseEvent
	CraftID  uint64
	PartID   uint64
	PartName string
	Kind     string
}

// NewPartEvent creates a part event
func NewPartEvent(source interface{}, craftID, partID uint64, name, kind string) *PartEvent {
	return &PartEvent{
		BaseEvent: BaseEvent{EventType: PartAttached, Source: source},
		CraftID:   craftID,
		PartID:    partID,
		PartName:  name,
		Kind:      kind,
	}
}

// FuelEvent reports a fuel condition on a craft
type FuelEvent struct {
	BaseEvent
	CraftID   uint64
	TankName  string // empty for craft-wide events
	Requested float64
	Used      float64
	Remaining float64
}

// NewFuelEvent creates a fuel event of the given type
func NewFuelEvent(eventType Type, source interface{}, craftID uint64, tank string, requested, used, remaining float64) *FuelEvent {
	return &FuelEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		CraftID:   craftID,
		TankName:  tank,
		Requested: requested,
		Used:      used,
		Remaining: remaining,
	}
}

// RunEvent marks the start or end of a simulation run
type RunEvent struct {
	BaseEvent
	Steps   int
	Elapsed float64 // simulated seconds
}

// NewRunEvent creates a run event
func NewRunEvent(eventType Type, source interface{}, steps int, elapsed float64) *RunEvent {
	return &RunEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		Steps:     steps,
		Elapsed:   elapsed,
	}
}

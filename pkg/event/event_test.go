// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}

	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}

	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestBusSubscribe_MultipleHandlers_UniqueIDs(t *testing.T) {
	bus := NewEventBus()

	sub1 := bus.Subscribe(PartAttached, func(e Event) {})
	sub2 := bus.Subscribe(PartAttached, func(e Event) {})
	sub3 := bus.Subscribe(FuelStarvation, func(e Event) {})

	if sub1.ID == 0 || sub1.ID == sub2.ID || sub2.ID == sub3.ID {
		t.Errorf("expected unique non-zero IDs, got %d, %d, %d", sub1.ID, sub2.ID, sub3.ID)
	}
	if sub3.Type != FuelStarvation {
		t.Errorf("expected subscription type %v, got %v", FuelStarvation, sub3.Type)
	}

	bus.mu.RLock()
	defer bus.mu.RUnlock()
	if len(bus.handlers[PartAttached]) != 2 {
		t.Errorf("expected 2 handlers for PartAttached, got %d", len(bus.handlers[PartAttached]))
	}
}

func TestBusPublish_CallsMatchingHandlersInOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int

	bus.Subscribe(TankDepleted, func(e Event) { order = append(order, 1) })
	bus.Subscribe(TankDepleted, func(e Event) { order = append(order, 2) })
	bus.Subscribe(FuelExhausted, func(e Event) { order = append(order, 3) })

	bus.Publish(NewFuelEvent(TankDepleted, "test", 7, "Aux Tank", 8, 8, 0))

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected handlers [1 2], got %v", order)
	}
}

func TestBusPublish_NoSubscribers_NoPanic(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(&BaseEvent{EventType: RunStarted, Source: "test"})
}

func TestSubscriptionCancel_RemovesOnlyThatHandler(t *testing.T) {
	bus := NewEventBus()
	var first, second int

	sub := bus.Subscribe(FuelStarvation, func(e Event) { first++ })
	bus.Subscribe(FuelStarvation, func(e Event) { second++ })

	sub.Cancel()
	bus.Publish(NewFuelEvent(FuelStarvation, nil, 1, "", 10, 5, 0))

	if first != 0 {
		t.Errorf("cancelled handler called %d times", first)
	}
	if second != 1 {
		t.Errorf("remaining handler called %d times, expected 1", second)
	}

	// Cancelling twice is a no-op
	sub.Cancel()
}

func TestBusPublish_HandlerMaySubscribe(t *testing.T) {
	bus := NewEventBus()
	calls := 0

	bus.Subscribe(RunStarted, func(e Event) {
		calls++
		bus.Subscribe(RunStarted, func(e Event) { calls++ })
	})

	bus.Publish(NewRunEvent(RunStarted, nil, 0, 0))
	if calls != 1 {
		t.Errorf("expected 1 call on first publish, got %d", calls)
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewEventBus()
	var mu sync.Mutex
	count := 0
	bus.Subscribe(PartAttached, func(e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(NewPartEvent(nil, 1, 2, "Forward Hull", "hull"))
		}()
	}
	wg.Wait()

	if count != 10 {
		t.Errorf("expected 10 calls, got %d", count)
	}
}

func TestEventConstructors(t *testing.T) {
	part := NewPartEvent("craft", 1, 2, "Port Wing", "wing")
	if part.GetType() != PartAttached || part.GetSource() != "craft" || part.Kind != "wing" {
		t.Errorf("unexpected part event %+v", part)
	}

	run := NewRunEvent(RunFinished, nil, 200, 20)
	if run.GetType() != RunFinished || run.Steps != 200 || run.Elapsed != 20 {
		t.Errorf("unexpected run event %+v", run)
	}
}

package event

import (
	"sync"
	"testing"
)

// TestQueueFIFO verifies push and consume preserve order
func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(GameEvent{Type: EventWaveStarted, Payload: "first", Tick: 1})
	q.Push(GameEvent{Type: EventEnemySpawned, Payload: "second", Tick: 2})
	q.Push(GameEvent{Type: EventEnemyKilled, Payload: "third", Tick: 3})

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Payload != "first" || events[1].Payload != "second" || events[2].Payload != "third" {
		t.Errorf("Events out of order: %v %v %v",
			events[0].Payload, events[1].Payload, events[2].Payload)
	}

	if again := q.Consume(); len(again) != 0 {
		t.Errorf("Expected empty second consume, got %d events", len(again))
	}
}

// TestQueueLen verifies the pending count
func TestQueueLen(t *testing.T) {
	q := NewQueue()
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventEnemySpawned, Tick: int64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}
	q.Consume()
	if q.Len() != 0 {
		t.Errorf("Expected empty after consume, got %d", q.Len())
	}
}

// TestQueueConcurrentPush verifies lock-free producers do not lose events
func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	producers := 8
	perProducer := 20

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(GameEvent{Type: EventEnemySpawned, Payload: id*1000 + j})
			}
		}(i)
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(events))
	}
}

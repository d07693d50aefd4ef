package termview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// queueScreen serves PollEvent from a channel; closing the channel mimics
// Fini.
type queueScreen struct {
	tcell.Screen
	queue chan tcell.Event
}

func (q *queueScreen) PollEvent() tcell.Event { return <-q.queue }

func waitClosed(t *testing.T, events <-chan tcell.Event) {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("event channel was not closed")
		}
	}
}

func TestPollEventsStopsAfterFini(t *testing.T) {
	screen := &queueScreen{queue: make(chan tcell.Event, 1)}
	done := make(chan struct{})
	defer close(done)

	events := PollEvents(screen, done)
	key := tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.queue <- key
	if got := <-events; got != key {
		t.Fatalf("expected forwarded key event, got %v", got)
	}

	close(screen.queue)
	waitClosed(t, events)
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := &queueScreen{queue: make(chan tcell.Event, 200)}
	for range 150 {
		screen.queue <- tcell.NewEventResize(80, 30)
	}
	done := make(chan struct{})
	events := PollEvents(screen, done)

	// Nobody reads, so the forwarder blocks on a full buffer until done.
	time.Sleep(10 * time.Millisecond)
	close(done)
	waitClosed(t, events)
}

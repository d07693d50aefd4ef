package termview

import "github.com/gdamore/tcell/v2"

// PollEvents forwards screen events to the returned channel until the screen
// is finalized (PollEvent returns nil) or done is closed. The channel is
// closed when forwarding stops.
func PollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

package pipeline

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Broadcaster fans composed frames out to stream consumers. A consumer that
// falls behind silently loses frames; the next one self-heals the view.
type Broadcaster struct {
	clients cmap.ConcurrentMap[string, chan []byte]
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: cmap.New[chan []byte]()}
}

// Subscribe registers a consumer under id and returns its frame channel.
func (b *Broadcaster) Subscribe(id string) <-chan []byte {
	ch := make(chan []byte, 1)
	b.clients.Set(id, ch)
	return ch
}

// Unsubscribe removes a consumer. The channel is deliberately not closed:
// Publish may be sending on it from another goroutine.
func (b *Broadcaster) Unsubscribe(id string) {
	b.clients.Remove(id)
}

// Publish delivers a frame to every subscriber without blocking: a full
// channel gets drained of its stale frame first.
func (b *Broadcaster) Publish(frame []byte) {
	b.clients.IterCb(func(id string, ch chan []byte) {
		select {
		case ch <- frame:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- frame:
			default:
			}
		}
	})
}

func (b *Broadcaster) Count() int {
	return b.clients.Count()
}

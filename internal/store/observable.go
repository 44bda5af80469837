package store

import (
	"context"
	"log"
	"sync"

	"github.com/project/reading-tracker/internal/database"
)

// Observable is the latest known value of one entity collection, with
// fan-out to any number of subscribers over a single shared gateway watch.
type Observable[T any] struct {
	gw   *database.Gateway
	kind database.Kind
	load func() (T, error)
	def  T

	mu      sync.Mutex
	current T
	loaded  bool
	subs    map[int]chan T
	nextID  int
	stop    func()
}

func newObservable[T any](gw *database.Gateway, kind database.Kind, load func() (T, error), def T) *Observable[T] {
	return &Observable[T]{
		gw:      gw,
		kind:    kind,
		load:    load,
		def:     def,
		current: def,
		subs:    make(map[int]chan T),
	}
}

// Get returns the last derived snapshot without blocking on storage. The
// first call loads the collection synchronously; if that load fails the
// default value is returned and the load is retried on the next call.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		v, err := o.load()
		if err != nil {
			log.Printf("store: initial load of %s failed: %v", o.kind, err)
			return o.def
		}
		o.current = v
		o.loaded = true
	}
	return o.current
}

// Subscribe returns a channel that immediately carries the current value
// (the collection default before the first real emission), then every
// subsequent snapshot. Intermediate snapshots may be dropped for a slow
// reader; the latest one is always delivered. The subscription ends when
// ctx is done.
func (o *Observable[T]) Subscribe(ctx context.Context) <-chan T {
	o.mu.Lock()

	ch := make(chan T, 1)
	ch <- o.current

	id := o.nextID
	o.nextID++
	o.subs[id] = ch

	// First subscriber establishes the shared gateway watch.
	if len(o.subs) == 1 {
		o.startWatch()
	}
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		o.unsubscribe(id)
	}()

	return ch
}

func (o *Observable[T]) unsubscribe(id int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ch, ok := o.subs[id]
	if !ok {
		return
	}
	delete(o.subs, id)
	close(ch)

	// Last subscriber tears the gateway watch down.
	if len(o.subs) == 0 && o.stop != nil {
		o.stop()
		o.stop = nil
	}
}

// startWatch is called with o.mu held.
func (o *Observable[T]) startWatch() {
	tick, cancel := o.gw.Watch(o.kind)
	o.stop = cancel

	go func() {
		// Deliver the stored snapshot right away. The watch only fires on
		// writes, so without this a subscriber over pre-existing data would
		// hold the default until the next mutation.
		if v, err := o.load(); err != nil {
			log.Printf("store: initial load of %s failed: %v", o.kind, err)
		} else {
			o.set(v)
		}

		for range tick {
			v, err := o.load()
			if err != nil {
				log.Printf("store: refresh of %s failed: %v", o.kind, err)
				continue
			}
			o.set(v)
		}
	}()
}

// set records a freshly derived snapshot and fans it out. A full subscriber
// buffer is drained first so the reader always finds the newest value.
func (o *Observable[T]) set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.current = v
	o.loaded = true

	for _, ch := range o.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

// Refresh re-derives the snapshot from the gateway immediately instead of
// waiting for a watch signal. The mutation engine calls this after a write
// so its next read sees the write even when no watch is active.
func (o *Observable[T]) Refresh() error {
	v, err := o.load()
	if err != nil {
		return err
	}
	o.set(v)
	return nil
}

func (o *Observable[T]) close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.stop != nil {
		o.stop()
		o.stop = nil
	}
	for id, ch := range o.subs {
		delete(o.subs, id)
		close(ch)
	}
}

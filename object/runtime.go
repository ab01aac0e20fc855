package object

import (
	"sync"

	"go.uber.org/zap"

	"github.com/substratelabs/bindkit/errors"
)

// Runtime is the engine-side object table. It owns every engine object and
// the script payloads attached to them.
type Runtime struct {
	slots     map[ID]*slot
	nextID    ID
	closed    bool
	mu        sync.RWMutex
	observers []Observer
	obsMu     sync.RWMutex
	logger    *zap.Logger
}

type slot struct {
	object     any // pointer to the Go base struct
	payload    any
	class      string
	refs       int32
	refcounted bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the runtime's logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(rt *Runtime) { rt.logger = l }
}

// NewRuntime creates an empty object table.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		slots:  make(map[ID]*slot),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// allocate reserves a fresh identity for obj. Identities are monotonic and
// never reused, so a freed ID cannot collide with a later allocation.
func (rt *Runtime) allocate(obj any, refcounted bool) (ID, error) {
	rt.mu.Lock()
	if rt.closed {
		rt.mu.Unlock()
		return 0, errors.Closed(errors.PhaseRuntime, "object runtime")
	}

	rt.nextID++
	id := rt.nextID

	s := &slot{object: obj, refcounted: refcounted}
	if refcounted {
		s.refs = 1
	}
	rt.slots[id] = s
	rt.mu.Unlock()

	rt.logger.Debug("object allocated",
		zap.Uint64("id", uint64(id)),
		zap.Bool("refcounted", refcounted))
	rt.notify(Event{Type: EventAllocated, ID: id})
	return id, nil
}

// Free tears down a manually-managed object. Reference-counted objects must
// go through Release instead.
func (rt *Runtime) Free(id ID) error {
	rt.mu.Lock()
	s, ok := rt.slots[id]
	if !ok {
		rt.mu.Unlock()
		return errors.UseAfterFree(errors.PhaseRuntime, uint64(id))
	}
	if s.refcounted {
		rt.mu.Unlock()
		return errors.Refcount(uint64(id), "reference-counted object cannot be freed directly")
	}
	delete(rt.slots, id)
	rt.mu.Unlock()

	rt.teardown(id, s)
	return nil
}

// Retain increments the reference count of a reference-counted object.
func (rt *Runtime) Retain(id ID) error {
	rt.mu.Lock()
	s, ok := rt.slots[id]
	if !ok {
		rt.mu.Unlock()
		return errors.UseAfterFree(errors.PhaseRuntime, uint64(id))
	}
	if !s.refcounted {
		rt.mu.Unlock()
		return errors.Refcount(uint64(id), "object is not reference-counted")
	}
	s.refs++
	class := s.class
	rt.mu.Unlock()

	rt.notify(Event{Type: EventRetained, ID: id, Class: class})
	return nil
}

// Release decrements the reference count, tearing the object down when it
// reaches zero.
func (rt *Runtime) Release(id ID) error {
	rt.mu.Lock()
	s, ok := rt.slots[id]
	if !ok {
		rt.mu.Unlock()
		return errors.UseAfterFree(errors.PhaseRuntime, uint64(id))
	}
	if !s.refcounted {
		rt.mu.Unlock()
		return errors.Refcount(uint64(id), "object is not reference-counted")
	}
	s.refs--
	last := s.refs == 0
	if last {
		delete(rt.slots, id)
	}
	class := s.class
	rt.mu.Unlock()

	rt.notify(Event{Type: EventReleased, ID: id, Class: class})
	if last {
		rt.teardown(id, s)
	}
	return nil
}

// AttachPayload binds a script payload to an object. An object carries at
// most one payload; the payload lives until the object is torn down.
func (rt *Runtime) AttachPayload(id ID, class string, payload any) error {
	rt.mu.Lock()
	s, ok := rt.slots[id]
	if !ok {
		rt.mu.Unlock()
		return errors.UseAfterFree(errors.PhaseRuntime, uint64(id))
	}
	if s.payload != nil {
		rt.mu.Unlock()
		return errors.New(errors.PhaseRuntime, errors.KindInvalidInput).
			Class(class).
			Detail("object %d already has a payload attached", id).
			Build()
	}
	s.class = class
	s.payload = payload
	rt.mu.Unlock()

	rt.logger.Debug("payload attached",
		zap.Uint64("id", uint64(id)),
		zap.String("class", class))
	rt.notify(Event{Type: EventAttached, ID: id, Class: class, Payload: payload})
	return nil
}

// DetachPayload removes and returns the payload without dropping it;
// ownership of the payload returns to the caller.
func (rt *Runtime) DetachPayload(id ID) (any, error) {
	rt.mu.Lock()
	s, ok := rt.slots[id]
	if !ok {
		rt.mu.Unlock()
		return nil, errors.UseAfterFree(errors.PhaseRuntime, uint64(id))
	}
	payload := s.payload
	class := s.class
	s.payload = nil
	s.class = ""
	rt.mu.Unlock()

	rt.notify(Event{Type: EventDetached, ID: id, Class: class, Payload: payload})
	return payload, nil
}

// Payload returns the script payload attached to an object.
func (rt *Runtime) Payload(id ID) (any, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	s, ok := rt.slots[id]
	if !ok || s.payload == nil {
		return nil, false
	}
	return s.payload, true
}

// PayloadOf returns the payload attached to an object only if it has the
// expected script type.
func PayloadOf[C any](rt *Runtime, id ID) (*C, bool) {
	p, ok := rt.Payload(id)
	if !ok {
		return nil, false
	}
	c, ok := p.(*C)
	return c, ok
}

// Class returns the class name of the payload attached to an object.
func (rt *Runtime) Class(id ID) (string, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	s, ok := rt.slots[id]
	if !ok || s.class == "" {
		return "", false
	}
	return s.class, true
}

// Object returns the Go base struct backing an identity.
func (rt *Runtime) Object(id ID) (any, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	s, ok := rt.slots[id]
	if !ok {
		return nil, false
	}
	return s.object, true
}

// Live reports whether an identity refers to a live object.
func (rt *Runtime) Live(id ID) bool {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	_, ok := rt.slots[id]
	return ok
}

// Len returns the number of live objects.
func (rt *Runtime) Len() int {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return len(rt.slots)
}

// Each iterates over all live objects. The callback must not call back into
// the Runtime.
func (rt *Runtime) Each(fn func(id ID, class string) bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	for id, s := range rt.slots {
		if !fn(id, s.class) {
			return
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (rt *Runtime) Subscribe(o Observer) {
	rt.obsMu.Lock()
	defer rt.obsMu.Unlock()
	rt.observers = append(rt.observers, o)
}

// Unsubscribe removes an observer.
func (rt *Runtime) Unsubscribe(o Observer) {
	rt.obsMu.Lock()
	defer rt.obsMu.Unlock()
	for i, obs := range rt.observers {
		if obs == o {
			rt.observers = append(rt.observers[:i], rt.observers[i+1:]...)
			return
		}
	}
}

// Close tears down all live objects and stops accepting operations.
func (rt *Runtime) Close() error {
	rt.mu.Lock()
	if rt.closed {
		rt.mu.Unlock()
		return nil
	}
	rt.closed = true
	remaining := rt.slots
	rt.slots = make(map[ID]*slot)
	rt.mu.Unlock()

	for id, s := range remaining {
		rt.teardown(id, s)
	}
	return nil
}

func (rt *Runtime) teardown(id ID, s *slot) {
	if d, ok := s.payload.(Dropper); ok {
		d.Drop()
	}
	rt.logger.Debug("object freed",
		zap.Uint64("id", uint64(id)),
		zap.String("class", s.class))
	rt.notify(Event{Type: EventFreed, ID: id, Class: s.class, Payload: s.payload})
}

func (rt *Runtime) notify(e Event) {
	rt.obsMu.RLock()
	defer rt.obsMu.RUnlock()
	for _, o := range rt.observers {
		o.OnObjectEvent(e)
	}
}

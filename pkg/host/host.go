// Package host is the boundary between the drawable tree and whatever
// embeds it. Drawables reach the outside world only through a Context:
// shared state keyed by type, and an outbound channel of requests for
// the host to act on.
package host

import (
	"reflect"
	"sync"

	"github.com/ramp-stack/prism/pkg/event"
)

// State is an open-ended store shared across the tree. Each concrete
// type has at most one value; Set replaces any previous value of the
// same type. Safe for concurrent use.
type State struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

// NewState returns an empty store.
func NewState() *State {
	return &State{values: make(map[reflect.Type]any)}
}

// Set stores v, replacing any existing value of the same type.
func (s *State) Set(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[reflect.TypeOf(v)] = v
}

// Get recovers the stored value of type T, if any.
func Get[T any](s *State) (T, bool) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Context is handed to drawables during event handling.
type Context struct {
	State *State

	sender chan<- Request
}

// NewContext returns a context whose Send delivers on out.
func NewContext(state *State, out chan<- Request) *Context {
	return &Context{State: state, sender: out}
}

// Send queues a request for the host. The channel is expected to be
// buffered generously; Send blocks only if the host stops draining.
func (c *Context) Send(r Request) {
	c.sender <- r
}

// Request is something a drawable asks the host to do. The concrete
// types are EventRequest, HardwareRequest and ServiceRequest.
type Request interface {
	request()
}

// EventRequest asks the host to inject an event into the next
// dispatch, typically a synthetic follow-on from a handler.
type EventRequest struct {
	Event event.Event
}

func (EventRequest) request() {}

// HardwareKind selects a platform capability.
type HardwareKind uint8

const (
	CameraStart HardwareKind = iota
	CameraFrame
	CameraStop
	PhotoPicker
	ClipboardGet
	ClipboardSet
	CloudGet
	CloudSet
	Share
	Haptic
)

// Hardware is one platform action. Key and Value carry the payload
// for the kinds that take one: ClipboardSet and Share use Value,
// CloudGet uses Key, CloudSet uses both.
type Hardware struct {
	Kind  HardwareKind
	Key   string
	Value string
}

// HardwareRequest asks the host to perform a platform action.
type HardwareRequest struct {
	Action Hardware
}

func (HardwareRequest) request() {}

// ServiceRequest sends a payload to a named background service owned
// by the host.
type ServiceRequest struct {
	Name    string
	Payload string
}

func (ServiceRequest) request() {}

package finance

import (
	"maps"
	"time"

	"github.com/sirupsen/logrus"
)

// Well known event names.
const (
	TransactionAdded = "TRANSACTION_ADDED"
	BudgetAlert      = "BUDGET_ALERT"
)

// State is an aggregate snapshot handed to a Reducer.
type State map[string]any

// Delta is the partial state a Reducer computes from an event.
type Delta map[string]any

// Reducer computes a partial state delta from an event and a prior aggregate.
//
// A Reducer must not keep or modify prior.
type Reducer func(e Event, prior State) Delta

// Bus dispatches published events to the reducers subscribed to their name.
//
// Subscriptions are expected during setup; a Bus does not support Subscribe
// concurrently with Publish.
type Bus struct {
	subscribers map[string][]Reducer
	now         func() time.Time
	log         *logrus.Entry
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithClock sets the clock used to stamp events.
func WithClock(now func() time.Time) BusOption { return func(b *Bus) { b.now = now } }

// WithBusLogger sets the logger receiving debug traces of publications.
func WithBusLogger(log *logrus.Entry) BusOption { return func(b *Bus) { b.log = log } }

// NewBus returns a Bus without subscribers.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subscribers: make(map[string][]Reducer),
		now:         time.Now,
		log:         logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe appends r to the reducers of name.
func (b *Bus) Subscribe(name string, r Reducer) {
	b.subscribers[name] = append(b.subscribers[name], r)
}

// Publish is PublishWith an empty prior state.
func (b *Bus) Publish(name string, payload map[string]any) []Delta {
	return b.PublishWith(name, payload, State{})
}

// PublishWith builds an Event stamped with the current time and hands it to
// every reducer of name in subscription order.
//
// Each reducer receives its own copy of prior, so reducers never observe each
// other. The deltas are returned in subscription order, unmerged. A name
// without subscribers yields an empty slice.
func (b *Bus) PublishWith(name string, payload map[string]any, prior State) []Delta {
	e := Event{Name: name, Timestamp: b.now(), Payload: maps.Clone(payload)}
	reducers := b.subscribers[name]
	deltas := make([]Delta, 0, len(reducers))
	for _, r := range reducers {
		deltas = append(deltas, r(e, maps.Clone(prior)))
	}
	b.log.WithFields(logrus.Fields{
		"event":       name,
		"subscribers": len(reducers),
	}).Debug("Bus.Publish")
	return deltas
}

// Merge folds deltas left to right into a new State, later keys win.
func Merge(prior State, deltas ...Delta) State {
	s := maps.Clone(prior)
	if s == nil {
		s = State{}
	}
	for _, d := range deltas {
		maps.Copy(s, d)
	}
	return s
}

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	shifted := &recorder{}
	expired := &recorder{}
	d.Subscribe(LayerShifted, shifted)
	d.Subscribe(TimeExpired, expired)

	d.Dispatch(Event{Type: LayerShifted, Data: LayerShiftedData{Penalized: true}})

	assert.Len(t, shifted.got, 1)
	assert.Equal(t, LayerShiftedData{Penalized: true}, shifted.got[0].Data)
	assert.Empty(t, expired.got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(TimeWarning, r)
	d.Unsubscribe(TimeWarning, r)
	d.Dispatch(Event{Type: TimeWarning})
	assert.Empty(t, r.got)
}

func TestDispatchIsSynchronousAndOrdered(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(DiveStarted, listenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(DiveStarted, listenerFunc(func(Event) { order = append(order, 2) }))
	d.Dispatch(Event{Type: DiveStarted})
	assert.Equal(t, []int{1, 2}, order)
}

type listenerFunc func(Event)

func (f listenerFunc) OnEvent(e Event) { f(e) }

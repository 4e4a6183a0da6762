package gfx_test

import (
	"testing"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/stretchr/testify/assert"
)

type scriptedPoller struct {
	events   []gfx.Event
	timeouts []int
}

func (p *scriptedPoller) poll(timeoutMs int) (gfx.Event, bool) {
	p.timeouts = append(p.timeouts, timeoutMs)
	if len(p.events) == 0 {
		return nil, false
	}
	e := p.events[0]
	p.events = p.events[1:]
	return e, true
}

func TestDrainAll(t *testing.T) {
	p := &scriptedPoller{events: []gfx.Event{gfx.Expose{}, gfx.KeyPress{Label: "1"}, gfx.Expose{}}}
	var got []gfx.Event

	n := gfx.DrainAll().Consume(p.poll, func(e gfx.Event) { got = append(got, e) }, 50)

	assert.Equal(t, 3, n)
	assert.Len(t, got, 3)
	assert.Equal(t, []int{50, 0, 0, 0}, p.timeouts, "only the first poll waits")
}

func TestDrainMax(t *testing.T) {
	p := &scriptedPoller{events: []gfx.Event{gfx.Expose{}, gfx.Expose{}, gfx.Expose{}}}

	n := gfx.DrainMax(2).Consume(p.poll, func(gfx.Event) {}, 10)

	assert.Equal(t, 2, n)
	assert.Len(t, p.events, 1)

	n = gfx.DrainMax(0).Consume(p.poll, func(gfx.Event) {}, 10)
	assert.Equal(t, 1, n)
}

func TestDrainTimeout(t *testing.T) {
	p := &scriptedPoller{}

	n := gfx.DrainAll().Consume(p.poll, func(gfx.Event) { t.Fatal("no event expected") }, 25)

	assert.Zero(t, n)
	assert.Equal(t, []int{25}, p.timeouts)
}

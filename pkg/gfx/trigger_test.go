package gfx_test

import (
	"testing"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/kjkrol/goquad/pkg/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerColors(t *testing.T) {
	assert.Equal(t, gfx.Red, gfx.TriggerRed.Color())
	assert.Equal(t, gfx.Green, gfx.TriggerGreen.Color())
	assert.Equal(t, gfx.Blue, gfx.TriggerBlue.Color())
	assert.Equal(t, gfx.Black, gfx.TriggerReset.Color())
}

func TestTriggerNext(t *testing.T) {
	assert.Equal(t, gfx.TriggerGreen, gfx.TriggerRed.Next())
	assert.Equal(t, gfx.TriggerReset, gfx.TriggerBlue.Next())
	assert.Equal(t, gfx.TriggerRed, gfx.TriggerReset.Next())
}

func TestParseTrigger(t *testing.T) {
	tests := map[string]gfx.Trigger{
		"red":     gfx.TriggerRed,
		"Green":   gfx.TriggerGreen,
		" blue ":  gfx.TriggerBlue,
		"reset":   gfx.TriggerReset,
		"black":   gfx.TriggerReset,
		"#0000ff": gfx.TriggerBlue,
	}
	for in, want := range tests {
		got, err := gfx.ParseTrigger(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "purple", "#808080"} {
		_, err := gfx.ParseTrigger(in)
		assert.ErrorIs(t, err, gfx.ErrUnknownTrigger, in)
	}
}

func TestApply(t *testing.T) {
	ctx := gfxtest.New(32, 32)
	r := newRenderer(t, ctx, gfx.RendererConfig{})

	for _, tr := range gfx.Triggers {
		require.NoError(t, gfx.Apply(r, tr))
		assert.Equal(t, tr.Color(), r.Color(), tr.String())
	}
	assert.ErrorIs(t, gfx.Apply(r, gfx.Trigger(42)), gfx.ErrUnknownTrigger)
}

func TestKeyBindingsLookup(t *testing.T) {
	kb := gfx.DefaultKeyBindings()

	for label, want := range map[string]gfx.Trigger{
		"1": gfx.TriggerRed, "R": gfx.TriggerRed,
		"2": gfx.TriggerGreen, "g": gfx.TriggerGreen,
		"3": gfx.TriggerBlue, "B": gfx.TriggerBlue,
		"0": gfx.TriggerReset, "Escape": gfx.TriggerReset,
	} {
		got, ok := kb.Lookup(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
	_, ok := kb.Lookup("x")
	assert.False(t, ok)
}

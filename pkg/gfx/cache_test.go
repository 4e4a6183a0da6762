package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramCache_MostRecentlyUsedOrder(t *testing.T) {
	c := newProgramCache(3)
	red := &program{handle: 1, color: Red}
	green := &program{handle: 2, color: Green}
	blue := &program{handle: 3, color: Blue}
	black := &program{handle: 4, color: Black}

	assert.Empty(t, c.put(red))
	assert.Empty(t, c.put(green))
	assert.Empty(t, c.put(blue))
	assert.Same(t, red, c.get(Red))
	assert.Equal(t, []*program{red, blue, green}, c.entries)

	evicted := c.put(black)
	assert.Equal(t, []*program{green}, evicted)
	assert.Nil(t, c.get(Green))
	assert.Equal(t, 3, c.len())

	assert.Empty(t, c.put(blue), "re-putting an entry only reorders")
	assert.Equal(t, []*program{blue, black, red}, c.entries)

	assert.Equal(t, []*program{blue, black, red}, c.drain())
	assert.Zero(t, c.len())
}

func TestProgramCache_Disabled(t *testing.T) {
	c := newProgramCache(-1)
	p := &program{handle: 1, color: Red}

	assert.Nil(t, c.put(p))
	assert.Nil(t, c.get(Red))
	assert.Zero(t, c.len())
}

func TestRendererConfigCacheCapacity(t *testing.T) {
	assert.Equal(t, DefaultProgramCache, RendererConfig{}.cacheCapacity())
	assert.Equal(t, 0, RendererConfig{ProgramCache: -3}.cacheCapacity())
	assert.Equal(t, 7, RendererConfig{ProgramCache: 7}.cacheCapacity())
	assert.NotNil(t, RendererConfig{}.logger())
}

func TestGLSLFloat(t *testing.T) {
	assert.Equal(t, "1.0", glslFloat(1))
	assert.Equal(t, "0.0", glslFloat(0))
	assert.Equal(t, "0.5", glslFloat(0.5))
	assert.Equal(t, "1e-07", glslFloat(1e-7))
}

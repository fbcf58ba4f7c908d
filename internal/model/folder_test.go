package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFolderAdd(t *testing.T) {
	f := NewFolder("paris", "Paris")
	assert.Equal(t, ID("paris"), f.Slug)
	assert.Equal(t, 0, f.Count)

	f.Add(Item{ID: "paris-a"})
	f.Add(Item{ID: "paris-b"})
	assert.Equal(t, 2, f.Count)
	assert.Len(t, f.Items, 2)

	m := Manifest{*f, *NewFolder("rome", "Rome")}
	assert.Equal(t, 2, m.ItemsCount())
}

func TestContextCompact(t *testing.T) {
	lat := 0.0
	type testCase struct {
		ctx   *Context
		empty bool
	}

	tests := []testCase{
		{ctx: nil, empty: true},
		{ctx: &Context{}, empty: true},
		{ctx: &Context{Device: "Canon"}, empty: false},
		{ctx: &Context{Latitude: &lat}, empty: false},
	}

	for i, test := range tests {
		assert.Equal(t, test.empty, test.ctx.IsEmpty(), "Test %d failed", i)
		if test.empty {
			assert.Nil(t, test.ctx.Compact(), "Test %d failed", i)
		} else {
			assert.Same(t, test.ctx, test.ctx.Compact(), "Test %d failed", i)
		}
	}
}

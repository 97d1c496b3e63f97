package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHL(t *testing.T) {
	assert.Empty(t, ParseHL(""))
	assert.Equal(t, map[int]bool{3: true, 5: true, 6: true, 7: true}, ParseHL("3, 5-7"))
	assert.Equal(t, map[int]bool{2: true, 3: true}, ParseHL("3-2"))
	assert.Equal(t, map[int]bool{1: true}, ParseHL("x,1,,a-b,0,-4"))
	assert.Len(t, ParseHL("1-999999999"), maxRange)
}

func TestIsTruthy(t *testing.T) {
	for _, s := range []string{"1", "true", " ON ", "yes"} {
		assert.True(t, IsTruthy(s), s)
	}
	for _, s := range []string{"", "0", "off", "nope"} {
		assert.False(t, IsTruthy(s), s)
	}
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", HumanBytes(512))
	assert.Equal(t, "1.0 KiB", HumanBytes(1024))
	assert.Equal(t, "1.5 MiB", HumanBytes(1536*1024))
}

func TestMemUsage(t *testing.T) {
	alloc, sys := MemUsage()
	assert.NotZero(t, alloc)
	assert.GreaterOrEqual(t, sys, alloc)
}

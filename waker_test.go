package coreexec

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaker_WakeStoresTrue(t *testing.T) {
	var flag atomic.Bool
	w := flagWaker(&flag)

	assert.False(t, w.IsZero())
	assert.False(t, flag.Load())

	w.Wake()
	assert.True(t, flag.Load())
}

func TestWaker_ZeroValueIsZero(t *testing.T) {
	var w Waker
	assert.True(t, w.IsZero())
}

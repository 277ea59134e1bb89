package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverHook_FireRunsArmedCallback(t *testing.T) {
	h := newCondHooks()
	d := NewDriverHook(h)

	fired := false
	d.Arm(func() { fired = true })
	d.Fire()

	assert.True(t, fired)
}

func TestDriverHook_FireWithoutArmDoesNothing(t *testing.T) {
	h := newCondHooks()
	d := NewDriverHook(h)

	require.NotPanics(t, func() { d.Fire() })
}

func TestDriverHook_CallbackConsumedOnce(t *testing.T) {
	h := newCondHooks()
	d := NewDriverHook(h)

	calls := 0
	d.Arm(func() { calls++ })
	d.Fire()
	d.Fire() // second fire has nothing armed

	assert.Equal(t, 1, calls)
}

func TestDriverHook_DisarmPreventsCallback(t *testing.T) {
	h := newCondHooks()
	d := NewDriverHook(h)

	called := false
	d.Arm(func() { called = true })
	d.Disarm()
	d.Fire()

	assert.False(t, called)
}

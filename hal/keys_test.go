package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySet(t *testing.T) {
	s := NewKeySet(KeyForward, KeyZoomIn, KeyForward)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(KeyForward))
	assert.True(t, s.Has(KeyZoomIn))
	assert.False(t, s.Has(KeyQuit))

	s.Add(KeyUnknown)
	s.Add(Key(999))
	assert.Equal(t, 2, s.Len(), "unknown keys are ignored")

	s.Remove(KeyForward)
	assert.Equal(t, []Key{KeyZoomIn}, s.Keys())

	s.Clear()
	assert.Zero(t, s.Len())

	var nilSet *KeySet
	assert.False(t, nilSet.Has(KeyForward))
	assert.Zero(t, nilSet.Len())
}

func TestKeySetKeysInDeclarationOrder(t *testing.T) {
	s := NewKeySet(KeyQuit, KeyForward, KeyRotateUp)
	assert.Equal(t, []Key{KeyForward, KeyRotateUp, KeyQuit}, s.Keys())

	c := NewKeySet(KeyDown)
	c.CopyFrom(s)
	assert.Equal(t, s.Keys(), c.Keys())
}

func TestKeyNames(t *testing.T) {
	assert.Len(t, AllKeys(), 13)
	assert.Equal(t, "strafe-left", KeyStrafeLeft.String())
	assert.Equal(t, "quit", KeyQuit.String())
	assert.Equal(t, "unknown", Key(500).String())
	for _, k := range AllKeys() {
		assert.NotEqual(t, "unknown", k.String())
	}
}

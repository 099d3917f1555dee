package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelWrapping(t *testing.T) {
	err := Wrapf(ErrNotFound, "synset %q", "n#99999999")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsAmbiguous(err))
	assert.Contains(t, err.Error(), "n#99999999")
}

func TestIsHelpers_Nil(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsAmbiguous(nil))
	assert.False(t, IsMalformedID(nil))
	assert.False(t, IsInvalidRelationType(nil))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrAmbiguous, ErrMalformedID, ErrInvalidRelationType}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "sentinel %v should not match %v", a, b)
		}
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("lemma %q has no %s entry", "canis", "v")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "canis")
}

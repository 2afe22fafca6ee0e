package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitalButtonTransitions(t *testing.T) {
	var b DigitalButton
	steps := []struct {
		down                     bool
		wantPressed, wantRelease bool
	}{
		{true, true, false},
		{true, false, false},
		{false, false, true},
		{false, false, false},
	}
	for i, s := range steps {
		b.Update(s.down)
		assert.Equal(t, s.down, b.Down(), "step %d", i)
		assert.Equal(t, s.wantPressed, b.Pressed(), "step %d", i)
		assert.Equal(t, s.wantRelease, b.Released(), "step %d", i)
	}
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		in      string
		want    Chord
		wantErr bool
	}{
		{"tab", Chord{Key: KeyTab}, false},
		{"Shift+Tab", Chord{Key: KeyTab, Shift: true}, false},
		{"enter", Chord{Key: KeyReturn}, false},
		{"shift", Chord{}, true},
		{"ctrl+x", Chord{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChord(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyboardShift(t *testing.T) {
	kb := NewKeyboard()
	assert.False(t, kb.Shift())
	kb.Update(KeyShift, true)
	assert.True(t, kb.Shift())
	kb.Update(KeyShift, false)
	assert.False(t, kb.Shift())
}

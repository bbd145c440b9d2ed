package selection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenstem/irrigator/internal/catalog"
	"github.com/greenstem/irrigator/internal/model"
)

// scriptKeypad replays a fixed key sequence, one key per poll, with a no-key
// gap between presses.
type scriptKeypad struct {
	keys []rune
	gap  bool
}

func (k *scriptKeypad) PollKey() (rune, bool) {
	if k.gap {
		k.gap = false
		return 0, false
	}
	if len(k.keys) == 0 {
		return 0, false
	}
	key := k.keys[0]
	k.keys = k.keys[1:]
	k.gap = true
	return key, true
}

// recordDisplay keeps every screen the machine drew.
type recordDisplay struct {
	screens [][2]string
}

func (d *recordDisplay) ShowLines(line1, line2 string) {
	d.screens = append(d.screens, [2]string{line1, line2})
}

func (d *recordDisplay) contains(line1 string) bool {
	for _, s := range d.screens {
		if s[0] == line1 {
			return true
		}
	}
	return false
}

func newTestMachine(keys []rune) (*Machine, *recordDisplay) {
	screen := &recordDisplay{}
	m := NewMachine(catalog.Default(), &scriptKeypad{keys: keys}, screen, time.Millisecond, time.Millisecond)
	m.sleep = func(time.Duration) {}
	return m, screen
}

func TestRunRejectsOutOfRangeThenConfirms(t *testing.T) {
	m, screen := newTestMachine([]rune{'5', '2'})

	id, params, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, model.CropParameters{MinTemp: 15, MaxTemp: 20, MinHumidity: 60, MaxHumidity: 80}, params)
	assert.Equal(t, Confirmed, m.State())

	assert.True(t, screen.contains("Invalid"))
	assert.True(t, screen.contains("You selected:"))
	assert.True(t, screen.contains("Loading..."))
}

func TestRunRejectsNonDigitKeys(t *testing.T) {
	m, screen := newTestMachine([]rune{'*', 'A', '#', '1'})

	id, params, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, model.CropParameters{MinTemp: 15, MaxTemp: 24, MinHumidity: 40, MaxHumidity: 50}, params)
	assert.True(t, screen.contains("Invalid"))
}

func TestRunZeroIsInvalid(t *testing.T) {
	m, _ := newTestMachine([]rune{'0', '2'})

	id, _, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestRunStopsOnCancel(t *testing.T) {
	m, _ := newTestMachine(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, AwaitingInput, m.State())
}

func TestMenuListsEveryCrop(t *testing.T) {
	m, screen := newTestMachine([]rune{'1'})

	_, _, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, screen.contains("Crop 1"))
	assert.True(t, screen.contains("Crop 2"))
}

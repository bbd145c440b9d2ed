package sensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testVCC    = 5.0
	testADCMax = 1023
)

func TestCalibrationKnownPoints(t *testing.T) {
	temp := Calibration{VCC: testVCC, ADCMax: testADCMax, Offset: TempOffset}
	hum := Calibration{VCC: testVCC, ADCMax: testADCMax}

	assert.InDelta(t, -50.0, temp.Convert(0), 1e-9)
	assert.InDelta(t, 450.0, temp.Convert(testADCMax), 1e-9)
	assert.InDelta(t, 0.0, hum.Convert(0), 1e-9)
	assert.InDelta(t, 500.0, hum.Convert(testADCMax), 1e-9)

	// raw count for ~45% soil moisture
	assert.InDelta(t, 44.97, hum.Convert(92), 0.01)
}

func TestCalibrationMonotonicAndDeterministic(t *testing.T) {
	for _, cal := range []Calibration{
		{VCC: testVCC, ADCMax: testADCMax, Offset: TempOffset},
		{VCC: testVCC, ADCMax: testADCMax},
	} {
		prev := cal.Convert(0)
		for raw := 1; raw <= testADCMax; raw++ {
			v := cal.Convert(raw)
			require.GreaterOrEqual(t, v, prev, "raw %d", raw)
			require.Equal(t, v, cal.Convert(raw), "raw %d", raw)
			prev = v
		}
	}
}

// fixedADC returns canned counts per channel.
type fixedADC struct {
	counts map[int]int
}

func (f *fixedADC) ReadRaw(channel int) (int, error) {
	v, ok := f.counts[channel]
	if !ok {
		return 0, errors.New("no such channel")
	}
	return v, nil
}

func TestReaderReadsBothChannels(t *testing.T) {
	adc := &fixedADC{counts: map[int]int{0: 143, 1: 92}}
	r := NewReader(adc, testVCC, testADCMax, 0, 1)

	reading, err := r.Read()
	require.NoError(t, err)
	assert.InDelta(t, 19.89, reading.Temperature, 0.01)
	assert.InDelta(t, 44.97, reading.Humidity, 0.01)
}

// brokenADC always fails.
type brokenADC struct {
	calls int
}

func (b *brokenADC) ReadRaw(int) (int, error) {
	b.calls++
	return 0, errors.New("spi bus gone")
}

func TestReaderBreakerOpensOnRepeatedFailures(t *testing.T) {
	adc := &brokenADC{}
	r := NewReader(adc, testVCC, testADCMax, 0, 1)

	for i := 0; i < 3; i++ {
		_, err := r.Temperature()
		require.Error(t, err)
	}
	callsWhenTripped := adc.calls

	// breaker is open now: reads still fail, but without touching the bus
	_, err := r.Humidity()
	require.Error(t, err)
	assert.Equal(t, callsWhenTripped, adc.calls)
}

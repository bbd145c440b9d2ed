// Package engine computes the per-cycle actuation decision.
package engine

import (
	"errors"
	"fmt"

	"github.com/greenstem/irrigator/internal/model"
)

// Sanity bounds: readings outside these are treated as a sensor fault, not as
// weather.
const (
	MinPlausibleTemp     = -20.0
	MaxPlausibleTemp     = 100.0
	MinPlausibleHumidity = 0.0
	MaxPlausibleHumidity = 100.0
)

var (
	ErrTemperatureOutOfRange = errors.New("temperature outside plausible range")
	ErrHumidityOutOfRange    = errors.New("humidity outside plausible range")
)

// Decide returns whether to irrigate this cycle. A reading that fails the
// sanity check returns false with the matching out-of-range error: suspect
// data never irrigates. Otherwise the pump goes on iff the temperature sits
// inside the crop's band and the soil is not already wetter than MaxHumidity.
// The decision is stateless; there is no hysteresis, so a reading sitting on
// a boundary may chatter between cycles.
func Decide(reading model.SensorReading, params model.CropParameters) (bool, error) {
	if reading.Temperature < MinPlausibleTemp || reading.Temperature > MaxPlausibleTemp {
		return false, fmt.Errorf("%w: %.1f C", ErrTemperatureOutOfRange, reading.Temperature)
	}
	if reading.Humidity < MinPlausibleHumidity || reading.Humidity > MaxPlausibleHumidity {
		return false, fmt.Errorf("%w: %.1f %%", ErrHumidityOutOfRange, reading.Humidity)
	}

	inTempBand := reading.Temperature >= params.MinTemp && reading.Temperature <= params.MaxTemp
	return inTempBand && reading.Humidity <= params.MaxHumidity, nil
}

// Package sensor converts raw ADC counts into calibrated physical units.
package sensor

import (
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker"

	"github.com/greenstem/irrigator/internal/hal"
	"github.com/greenstem/irrigator/internal/model"
)

// TempOffset is the additive correction for the TMP36-style temperature
// channel: 0 raw counts map to -50 °C.
const TempOffset = -50.0

// Calibration is the linear raw→unit transfer function
// value = (raw * VCC / ADCMax) * 100 + Offset.
type Calibration struct {
	VCC    float64
	ADCMax int
	Offset float64
}

// Convert maps one raw count to physical units. Pure; monotonic
// non-decreasing in raw.
func (c Calibration) Convert(raw int) float64 {
	return (float64(raw)*c.VCC/float64(c.ADCMax))*100.0 + c.Offset
}

// Reader samples the two analog channels on demand. Every call re-samples;
// nothing is cached. A circuit breaker guards the ADC so a dead bus fails
// fast instead of being hammered every cycle.
type Reader struct {
	adc         hal.AnalogReader
	tempChannel int
	humChannel  int
	tempCal     Calibration
	humCal      Calibration
	breaker     *gobreaker.CircuitBreaker
}

func NewReader(adc hal.AnalogReader, vcc float64, adcMax, tempChannel, humChannel int) *Reader {
	return &Reader{
		adc:         adc,
		tempChannel: tempChannel,
		humChannel:  humChannel,
		tempCal:     Calibration{VCC: vcc, ADCMax: adcMax, Offset: TempOffset},
		humCal:      Calibration{VCC: vcc, ADCMax: adcMax},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "adc",
			MaxRequests: 1,
			Interval:    60 * time.Second,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("sensor: breaker %s %s -> %s", name, from, to)
			},
		}),
	}
}

// Temperature samples the temperature channel, in °C.
func (r *Reader) Temperature() (float64, error) {
	return r.sample(r.tempChannel, r.tempCal)
}

// Humidity samples the soil-moisture channel, in %.
func (r *Reader) Humidity() (float64, error) {
	return r.sample(r.humChannel, r.humCal)
}

// Read samples both channels into one reading.
func (r *Reader) Read() (model.SensorReading, error) {
	t, err := r.Temperature()
	if err != nil {
		return model.SensorReading{}, err
	}
	h, err := r.Humidity()
	if err != nil {
		return model.SensorReading{}, err
	}
	return model.SensorReading{Temperature: t, Humidity: h}, nil
}

func (r *Reader) sample(channel int, cal Calibration) (float64, error) {
	v, err := r.breaker.Execute(func() (interface{}, error) {
		return r.adc.ReadRaw(channel)
	})
	if err != nil {
		return 0, fmt.Errorf("sample channel %d: %w", channel, err)
	}
	return cal.Convert(v.(int)), nil
}

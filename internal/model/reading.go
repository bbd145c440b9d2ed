package model

// SensorReading is one calibrated sample pair. Recomputed every cycle, no
// history kept.
type SensorReading struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // %
}

//go:build !linux || (!arm && !arm64)

package hal

import (
	"log"
	"os"
)

// Open builds the simulated rig: synthetic analog traces, stdin keypad,
// logging display. Pump writes feed back into the moisture trace.
func Open(cfg Config) (*Devices, error) {
	log.Printf("hal: simulated hardware (keypad on stdin)")

	adc := NewSimADC(cfg.VCC, cfg.ADCMax, 45)
	pump := NewMemoryLine(func(high bool) { adc.SetIrrigating(high) })

	return &Devices{
		Keys:   NewReaderKeypad(os.Stdin),
		Screen: LogDisplay{},
		ADC:    adc,
		Pump:   pump,
	}, nil
}

// Package hal wraps the controller's physical collaborators: the matrix
// keypad, the 16x2 character display, the two analog sensor channels and the
// pump output line. Open returns either real gobot-backed devices or a
// simulated rig depending on the build target.
package hal

// KeyPoller is a non-blocking single-key poll. ok is false when no key is
// currently pressed.
type KeyPoller interface {
	PollKey() (key rune, ok bool)
}

// Display renders two fixed-width text lines. Implementations own cursor and
// geometry details; callers only supply content.
type Display interface {
	ShowLines(line1, line2 string)
}

// AnalogReader samples one raw ADC count from the given channel.
type AnalogReader interface {
	ReadRaw(channel int) (int, error)
}

// DigitalLine drives a single binary output, high = actuate.
type DigitalLine interface {
	Write(high bool) error
}

// Config carries the hardware wiring and the electrical constants shared with
// the calibration code.
type Config struct {
	VCC    float64
	ADCMax int

	TempChannel     int
	HumidityChannel int

	// Raspberry Pi physical pin numbers, as gobot expects them.
	PumpPin string

	LCDRS string
	LCDEN string
	LCDD4 string
	LCDD5 string
	LCDD6 string
	LCDD7 string

	KeypadRowPins [4]string
	KeypadColPins [4]string
}

// Devices is the opened hardware set.
type Devices struct {
	Keys   KeyPoller
	Screen Display
	ADC    AnalogReader
	Pump   DigitalLine

	closeFn func()
}

// Close releases the underlying hardware.
func (d *Devices) Close() {
	if d.closeFn != nil {
		d.closeFn()
	}
}

// keypadLayout is the fixed 4x4 key matrix.
var keypadLayout = [4][4]rune{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

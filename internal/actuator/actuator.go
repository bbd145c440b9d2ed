// Package actuator drives the irrigation pump line.
package actuator

import (
	"fmt"

	"github.com/greenstem/irrigator/internal/hal"
)

// Driver applies the actuation boolean to the pump's digital line. There is
// no feedback read-back; the commanded state is trusted.
type Driver struct {
	line hal.DigitalLine
}

func NewDriver(line hal.DigitalLine) *Driver {
	return &Driver{line: line}
}

// Apply sets the line high (irrigate) or low (idle). Idempotent: reapplying
// the current state is a no-op at the line level.
func (d *Driver) Apply(on bool) error {
	if err := d.line.Write(on); err != nil {
		return fmt.Errorf("pump line: %w", err)
	}
	return nil
}

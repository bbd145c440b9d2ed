// Package controller runs the sampling loop: read sensors, decide, display,
// actuate, wait. One cycle at a time, no overlap.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/greenstem/irrigator/internal/actuator"
	"github.com/greenstem/irrigator/internal/engine"
	"github.com/greenstem/irrigator/internal/hal"
	"github.com/greenstem/irrigator/internal/model"
	"github.com/greenstem/irrigator/internal/sensor"
	"github.com/greenstem/irrigator/pkg/throttle"
)

const noticeTTL = 30 * time.Second

type Controller struct {
	reader *sensor.Reader
	pump   *actuator.Driver
	screen hal.Display

	params model.CropParameters
	state  model.SystemState

	interval     time.Duration
	messageDelay time.Duration

	notices *throttle.Limiter
	sleep   func(time.Duration)
}

// New wires a controller for the confirmed crop. params must already be
// validated by the catalog.
func New(reader *sensor.Reader, pump *actuator.Driver, screen hal.Display,
	cropID int, params model.CropParameters, interval, messageDelay time.Duration) *Controller {
	return &Controller{
		reader:       reader,
		pump:         pump,
		screen:       screen,
		params:       params,
		interval:     interval,
		messageDelay: messageDelay,
		notices:      throttle.New(noticeTTL),
		sleep:        time.Sleep,
		state: model.SystemState{
			SelectionConfirmed: true,
			SelectedCropID:     cropID,
		},
	}
}

// State returns a copy of the controller state after the last cycle.
func (c *Controller) State() model.SystemState { return c.state }

// Start runs the loop until ctx is cancelled, then leaves the pump off.
func (c *Controller) Start(ctx context.Context) {
	log.Printf("controller: sampling every %s for crop %d", c.interval, c.state.SelectedCropID)
	for {
		select {
		case <-ctx.Done():
			if err := c.pump.Apply(false); err != nil {
				log.Printf("controller: shutdown pump off: %v", err)
			}
			return
		case <-time.After(c.interval):
			c.cycle()
		}
	}
}

// cycle performs one read→decide→display→actuate pass.
func (c *Controller) cycle() {
	reading, err := c.reader.Read()
	if err != nil {
		log.Printf("controller: sensor read failed: %v", err)
		c.notice("read-fault", "Sensor", "read fault")
		c.apply(false)
		return
	}
	c.state.ActiveReading = reading

	on, err := engine.Decide(reading, c.params)
	switch {
	case errors.Is(err, engine.ErrTemperatureOutOfRange):
		log.Printf("controller: %v", err)
		c.notice("temp-range", "Temp out of", "range")
	case errors.Is(err, engine.ErrHumidityOutOfRange):
		log.Printf("controller: %v", err)
		c.notice("hum-range", "Humidity out of", "range")
	default:
		c.notices.Reset("read-fault")
		c.notices.Reset("temp-range")
		c.notices.Reset("hum-range")
		c.screen.ShowLines(
			fmt.Sprintf("Temp: %.1f C", reading.Temperature),
			fmt.Sprintf("Humidity: %.1f %%", reading.Humidity),
		)
	}

	c.apply(on)
}

// notice shows a throttled two-line display notice with message pacing.
func (c *Controller) notice(key, line1, line2 string) {
	if !c.notices.Allow(key) {
		return
	}
	c.screen.ShowLines(line1, line2)
	c.sleep(c.messageDelay)
}

func (c *Controller) apply(on bool) {
	if err := c.pump.Apply(on); err != nil {
		log.Printf("controller: actuate: %v", err)
		return
	}
	if on != c.state.ActuatorOn {
		log.Printf("controller: pump %s", onOff(on))
	}
	c.state.ActuatorOn = on
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

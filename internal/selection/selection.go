// Package selection implements the startup crop-selection state machine. It
// runs exactly once per process, before the sampling loop, and terminates
// only on a confirmed valid selection.
package selection

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/greenstem/irrigator/internal/catalog"
	"github.com/greenstem/irrigator/internal/hal"
	"github.com/greenstem/irrigator/internal/model"
)

// State of the machine. Invalid input is not a resting state: it re-prompts
// and falls straight back to AwaitingInput.
type State int

const (
	AwaitingInput State = iota
	Confirmed
)

func (s State) String() string {
	switch s {
	case Confirmed:
		return "confirmed"
	default:
		return "awaiting-input"
	}
}

// Machine solicits a crop id from the keypad until a valid one is confirmed.
type Machine struct {
	catalog *catalog.Catalog
	keys    hal.KeyPoller
	screen  hal.Display

	pollDelay    time.Duration
	messageDelay time.Duration

	sleep func(time.Duration)
	state State
}

func NewMachine(cat *catalog.Catalog, keys hal.KeyPoller, screen hal.Display, pollDelay, messageDelay time.Duration) *Machine {
	return &Machine{
		catalog:      cat,
		keys:         keys,
		screen:       screen,
		pollDelay:    pollDelay,
		messageDelay: messageDelay,
		sleep:        time.Sleep,
	}
}

// State reports the current machine state.
func (m *Machine) State() State { return m.state }

// Run walks the crop menu, then polls the keypad until a valid id is pressed.
// It returns the confirmed id and its parameter set. The only other way out
// is ctx cancellation.
func (m *Machine) Run(ctx context.Context) (int, model.CropParameters, error) {
	m.showMenu()

	for {
		select {
		case <-ctx.Done():
			return 0, model.CropParameters{}, ctx.Err()
		default:
		}

		m.screen.ShowLines("Select a valid", "crop")

		key, ok := m.keys.PollKey()
		if !ok {
			m.sleep(m.pollDelay)
			continue
		}

		id, params, err := m.resolve(key)
		if err != nil {
			log.Printf("selection: %v", err)
			m.screen.ShowLines("Invalid", "selection")
			m.sleep(m.messageDelay)
			continue
		}

		m.state = Confirmed
		log.Printf("selection: confirmed crop %d (%s)", id, m.catalog.Name(id))
		m.screen.ShowLines("You selected:", m.catalog.Name(id))
		m.sleep(m.messageDelay)
		m.screen.ShowLines("Loading...", "")
		m.sleep(m.messageDelay)
		return id, params, nil
	}
}

// resolve maps one key press to a validated crop id. Non-digit keys and
// digits outside the catalog are both invalid selections.
func (m *Machine) resolve(key rune) (int, model.CropParameters, error) {
	if key < '0' || key > '9' {
		return 0, model.CropParameters{}, fmt.Errorf("%w: key %q is not a digit", catalog.ErrInvalidSelection, key)
	}
	id := int(key - '0')
	params, err := m.catalog.Lookup(id)
	if err != nil {
		return 0, model.CropParameters{}, err
	}
	return id, params, nil
}

// showMenu announces each catalog entry on its own screen.
func (m *Machine) showMenu() {
	m.screen.ShowLines("Select a", "crop")
	m.sleep(m.messageDelay)
	for _, e := range m.catalog.Entries() {
		m.screen.ShowLines(fmt.Sprintf("Crop %d", e.Crop.ID), e.Crop.Name)
		m.sleep(m.messageDelay)
	}
}

//go:build linux && (arm || arm64)

package hal

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gobot.io/x/gobot/v2/drivers/gpio"
	"gobot.io/x/gobot/v2/drivers/spi"
	"gobot.io/x/gobot/v2/platforms/raspi"
)

// Open brings up the Raspberry Pi hardware: MCP3008 ADC on SPI for the two
// analog channels, HD44780 LCD in 4-bit mode, the pump relay line and the
// matrix keypad on plain GPIO. Bring-up is retried with exponential backoff
// since the SPI/GPIO buses are not always ready right at boot.
func Open(cfg Config) (*Devices, error) {
	adaptor := raspi.NewAdaptor()
	adc := spi.NewMCP3008Driver(adaptor)
	lcd := gpio.NewHD44780Driver(
		adaptor,
		16, 2,
		gpio.HD44780_4BITMODE,
		cfg.LCDRS, cfg.LCDEN,
		gpio.HD44780DataPin{
			D4: cfg.LCDD4,
			D5: cfg.LCDD5,
			D6: cfg.LCDD6,
			D7: cfg.LCDD7,
		},
	)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	err := backoff.Retry(func() error {
		if err := adaptor.Connect(); err != nil {
			log.Printf("hal: adaptor connect failed: %v", err)
			return err
		}
		if err := adc.Start(); err != nil {
			log.Printf("hal: adc start failed: %v", err)
			return err
		}
		if err := lcd.Start(); err != nil {
			log.Printf("hal: lcd start failed: %v", err)
			return err
		}
		return nil
	}, backoff.WithMaxRetries(bo, 4))
	if err != nil {
		return nil, fmt.Errorf("hardware bring-up: %w", err)
	}

	keys := newMatrixKeypad(adaptor, cfg.KeypadRowPins, cfg.KeypadColPins)

	return &Devices{
		Keys:   keys,
		Screen: &lcdDisplay{lcd: lcd},
		ADC:    &mcpReader{adc: adc},
		Pump:   &pinLine{adaptor: adaptor, pin: cfg.PumpPin},
		closeFn: func() {
			if err := lcd.Halt(); err != nil {
				log.Printf("hal: lcd halt: %v", err)
			}
			if err := adc.Halt(); err != nil {
				log.Printf("hal: adc halt: %v", err)
			}
			if err := adaptor.Finalize(); err != nil {
				log.Printf("hal: adaptor finalize: %v", err)
			}
		},
	}, nil
}

type mcpReader struct {
	adc *spi.MCP3008Driver
}

func (r *mcpReader) ReadRaw(channel int) (int, error) {
	return r.adc.AnalogRead(strconv.Itoa(channel))
}

type lcdDisplay struct {
	lcd *gpio.HD44780Driver
}

func (d *lcdDisplay) ShowLines(line1, line2 string) {
	if err := d.lcd.Clear(); err != nil {
		log.Printf("hal: lcd clear: %v", err)
		return
	}
	if err := d.lcd.Write(line1); err != nil {
		log.Printf("hal: lcd write: %v", err)
		return
	}
	if err := d.lcd.SetCursor(0, 1); err != nil {
		log.Printf("hal: lcd cursor: %v", err)
		return
	}
	if err := d.lcd.Write(line2); err != nil {
		log.Printf("hal: lcd write: %v", err)
	}
}

type pinLine struct {
	adaptor *raspi.Adaptor
	pin     string
}

func (l *pinLine) Write(high bool) error {
	v := byte(0)
	if high {
		v = 1
	}
	return l.adaptor.DigitalWrite(l.pin, v)
}

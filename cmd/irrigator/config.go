package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/greenstem/irrigator/internal/hal"
)

type Config struct {
	CycleInterval time.Duration
	MessageDelay  time.Duration
	KeyPollDelay  time.Duration

	Hardware hal.Config
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvFloat(k string, d float64) float64 {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil {
			return f
		}
	}
	return d
}

func getenvDuration(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
	}
	return d
}

// getenvPins parses a comma-separated list of 4 pin numbers.
func getenvPins(k, d string) [4]string {
	v := getenv(k, d)
	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		parts = strings.Split(d, ",")
	}
	var out [4]string
	for i := range out {
		out[i] = strings.TrimSpace(parts[i])
	}
	return out
}

func loadConfig() Config {
	return Config{
		CycleInterval: getenvDuration("CYCLE_INTERVAL", time.Second),
		MessageDelay:  getenvDuration("MESSAGE_DELAY", 2*time.Second),
		KeyPollDelay:  getenvDuration("KEY_POLL_DELAY", 150*time.Millisecond),

		Hardware: hal.Config{
			VCC:    getenvFloat("SENSOR_VCC", 5.0),
			ADCMax: getenvInt("ADC_MAX", 1023),

			TempChannel:     getenvInt("TEMP_CHANNEL", 0),
			HumidityChannel: getenvInt("HUMIDITY_CHANNEL", 1),

			PumpPin: getenv("PUMP_PIN", "29"),

			LCDRS: getenv("LCD_RS_PIN", "18"),
			LCDEN: getenv("LCD_EN_PIN", "22"),
			LCDD4: getenv("LCD_D4_PIN", "16"),
			LCDD5: getenv("LCD_D5_PIN", "15"),
			LCDD6: getenv("LCD_D6_PIN", "13"),
			LCDD7: getenv("LCD_D7_PIN", "11"),

			KeypadRowPins: getenvPins("KEYPAD_ROW_PINS", "40,38,36,32"),
			KeypadColPins: getenvPins("KEYPAD_COL_PINS", "37,35,33,31"),
		},
	}
}

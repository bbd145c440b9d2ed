//go:build linux && (arm || arm64)

package hal

import (
	"log"
	"time"
)

// matrixKeypad scans a 4x4 key matrix: rows are driven low one at a time and
// the column inputs (external pull-ups) are read back. A held key reports
// once per debounce window, not once per scan.
type matrixKeypad struct {
	adaptor  digitalPins
	rows     [4]string
	cols     [4]string
	lastKey  rune
	lastSeen time.Time
}

// digitalPins is the slice of the raspi adaptor the keypad needs.
type digitalPins interface {
	DigitalWrite(pin string, val byte) error
	DigitalRead(pin string) (int, error)
}

const keypadDebounce = 250 * time.Millisecond

func newMatrixKeypad(adaptor digitalPins, rows, cols [4]string) *matrixKeypad {
	k := &matrixKeypad{adaptor: adaptor, rows: rows, cols: cols}
	for _, r := range rows {
		if err := adaptor.DigitalWrite(r, 1); err != nil {
			log.Printf("hal: keypad row init %s: %v", r, err)
		}
	}
	return k
}

func (k *matrixKeypad) PollKey() (rune, bool) {
	for ri, row := range k.rows {
		if err := k.adaptor.DigitalWrite(row, 0); err != nil {
			log.Printf("hal: keypad row %s: %v", row, err)
			continue
		}
		for ci, col := range k.cols {
			v, err := k.adaptor.DigitalRead(col)
			if err != nil {
				log.Printf("hal: keypad col %s: %v", col, err)
				continue
			}
			if v == 0 {
				_ = k.adaptor.DigitalWrite(row, 1)
				key := keypadLayout[ri][ci]
				now := time.Now()
				if key == k.lastKey && now.Sub(k.lastSeen) < keypadDebounce {
					k.lastSeen = now
					return 0, false
				}
				k.lastKey = key
				k.lastSeen = now
				return key, true
			}
		}
		if err := k.adaptor.DigitalWrite(row, 1); err != nil {
			log.Printf("hal: keypad row %s: %v", row, err)
		}
	}
	return 0, false
}

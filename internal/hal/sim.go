package hal

import (
	"bufio"
	"io"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"
)

// SimADC synthesizes raw counts for both sensor channels so the controller
// can run off-hardware. Temperature drifts slowly around a midpoint; soil
// moisture decays while the pump is off and recovers while it is on.
type SimADC struct {
	mu sync.Mutex

	vcc    float64
	adcMax int

	start      time.Time
	last       time.Time
	moisture   float64 // %
	irrigating bool
}

const (
	simDecayPerMin = 0.8 // % lost per minute with the pump off
	simGainPerMin  = 6.0 // % gained per minute with the pump on
)

// NewSimADC seeds the moisture trace at startMoisture percent.
func NewSimADC(vcc float64, adcMax int, startMoisture float64) *SimADC {
	now := time.Now()
	return &SimADC{
		vcc:      vcc,
		adcMax:   adcMax,
		start:    now,
		last:     now,
		moisture: startMoisture,
	}
}

// SetIrrigating couples the pump state back into the moisture trace.
func (g *SimADC) SetIrrigating(on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advance(time.Now())
	g.irrigating = on
}

func (g *SimADC) ReadRaw(channel int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	g.advance(now)

	var value float64
	switch channel {
	case 0:
		// °C: slow drift around 21 with a little jitter
		t := now.Sub(g.start).Seconds()
		value = 21 + 4*math.Sin(t/300) + rand.Float64() - 0.5
		value += 50 // undo the TMP36 calibration offset
	default:
		value = g.moisture + rand.Float64() - 0.5
	}

	raw := int(math.Round(value / 100 * float64(g.adcMax) / g.vcc))
	if raw < 0 {
		raw = 0
	}
	if raw > g.adcMax {
		raw = g.adcMax
	}
	return raw, nil
}

// advance integrates the moisture trace up to now. Caller holds the lock.
func (g *SimADC) advance(now time.Time) {
	mins := now.Sub(g.last).Minutes()
	g.last = now
	if mins <= 0 {
		return
	}
	if g.irrigating {
		g.moisture += simGainPerMin * mins
	} else {
		g.moisture -= simDecayPerMin * mins
	}
	g.moisture = math.Max(0, math.Min(100, g.moisture))
}

// ReaderKeypad feeds keys from an io.Reader (normally stdin) through a
// buffered channel so PollKey stays non-blocking. Whitespace is skipped.
type ReaderKeypad struct {
	keys chan rune
}

func NewReaderKeypad(r io.Reader) *ReaderKeypad {
	k := &ReaderKeypad{keys: make(chan rune, 16)}
	go func() {
		br := bufio.NewReader(r)
		for {
			ch, _, err := br.ReadRune()
			if err != nil {
				close(k.keys)
				return
			}
			if ch == '\n' || ch == '\r' || ch == ' ' || ch == '\t' {
				continue
			}
			k.keys <- ch
		}
	}()
	return k
}

func (k *ReaderKeypad) PollKey() (rune, bool) {
	select {
	case ch, ok := <-k.keys:
		if !ok {
			return 0, false
		}
		return ch, true
	default:
		return 0, false
	}
}

// LogDisplay writes display traffic to the process log.
type LogDisplay struct{}

func (LogDisplay) ShowLines(line1, line2 string) {
	log.Printf("display: %-16s | %-16s", line1, line2)
}

// MemoryLine records digital writes, for the simulator and for tests.
type MemoryLine struct {
	mu      sync.Mutex
	high    bool
	writes  int
	onWrite func(high bool)
}

// NewMemoryLine creates a line; onWrite may be nil.
func NewMemoryLine(onWrite func(high bool)) *MemoryLine {
	return &MemoryLine{onWrite: onWrite}
}

func (l *MemoryLine) Write(high bool) error {
	l.mu.Lock()
	l.high = high
	l.writes++
	cb := l.onWrite
	l.mu.Unlock()
	if cb != nil {
		cb(high)
	}
	return nil
}

// High reports the last written state.
func (l *MemoryLine) High() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.high
}

// Writes reports how many writes were applied.
func (l *MemoryLine) Writes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writes
}

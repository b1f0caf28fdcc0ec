package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine blip with a linear fade-out, used for UI clicks.
type tone struct {
	rate  beep.SampleRate
	freq  float64
	gain  float64
	total int
	pos   int
}

func newTone(rate beep.SampleRate, freq float64, d time.Duration, gain float64) *tone {
	return &tone{
		rate:  rate,
		freq:  freq,
		gain:  gain,
		total: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		fade := 1 - float64(t.pos)/float64(t.total)
		v := t.gain * fade * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

package converter

import (
	"fmt"
	"math"
)

type polarity int

const (
	polarityHigh polarity = iota
	polarityLow
)

func (p polarity) String() string {
	switch p {
	case polarityHigh:
		return "high"
	default:
		return "low"
	}
}

// polarityOf maps the level that starts a pulse to its polarity: 0 is high,
// anything else is low.
func polarityOf(level int) polarity {
	if level == 0 {
		return polarityHigh
	}
	return polarityLow
}

// pulse is the interval between two consecutive samples
type pulse struct {
	Duration int64
	Polarity polarity
}

func (p pulse) String() string {
	return fmt.Sprintf("&%s_pulse(%d)?,", p.Polarity, p.Duration)
}

// roundMicros rounds half to even.
func roundMicros(micros float64) int64 {
	return int64(math.RoundToEven(micros))
}

// toPulses converts timestamps to microseconds and pairs consecutive samples.
// Fewer than two samples give no pulses.
func toPulses(samples []sample) []pulse {
	if len(samples) < 2 {
		return nil
	}
	pulses := make([]pulse, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		last := samples[i-1]
		pulses[i-1] = pulse{
			Duration: roundMicros(samples[i].Seconds*microsPerSecond - last.Seconds*microsPerSecond),
			Polarity: polarityOf(last.Level),
		}
	}
	return pulses
}

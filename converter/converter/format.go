package converter

import (
	"bufio"
	"io"
)

// writePulses prints one line per pulse and nothing else.
func writePulses(w io.Writer, pulses []pulse) error {
	bw := bufio.NewWriter(w)
	for _, p := range pulses {
		if _, err := bw.WriteString(p.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

package converter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const microsPerSecond = 1000 * 1000

// maxSeconds bounds timestamps so the span between any two of them, in
// microseconds, fits in an int64.
const maxSeconds = float64(1<<61) / microsPerSecond

var (
	errFieldCount     = errors.New("expected 2 comma separated fields")
	errNotFinite      = errors.New("timestamp is not a finite number")
	errTimestampRange = fmt.Errorf("timestamp magnitude must be below %g seconds", maxSeconds)

	errIsDirectory = errors.New("is a directory")
)

// sample is one row of a logic capture
type sample struct {
	Seconds float64
	Level   int
}

func loadCapture(path string) ([]sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer file.Close()
	if info, err := file.Stat(); err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	} else if info.IsDir() {
		return nil, &NotFoundError{Path: path, Err: errIsDirectory}
	}
	return readCapture(file)
}

// scanLines splits on "\n", "\r\n" or a lone "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// a trailing '\r' may be the first half of "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// readCapture parses a Saleae Logic export. The first line is a header and
// is skipped whatever it contains.
func readCapture(r io.Reader) ([]sample, error) {
	lineScanner := bufio.NewScanner(r)
	lineScanner.Split(scanLines)
	samples := make([]sample, 0)
	lineNumber := 0
	for lineScanner.Scan() {
		lineNumber++
		if lineNumber == 1 {
			continue
		}
		s, err := parseSample(lineScanner.Text())
		if err != nil {
			return nil, &ParseError{Line: lineNumber, Text: lineScanner.Text(), Err: err}
		}
		samples = append(samples, s)
	}
	if err := lineScanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Line: lineNumber + 1, Err: err}
		}
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	if len(samples) < 2 {
		return nil, &InsufficientDataError{Samples: len(samples)}
	}
	return samples, nil
}

func parseSample(line string) (sample, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return sample{}, errFieldCount
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return sample{}, err
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return sample{}, errNotFinite
	}
	if math.Abs(seconds) >= maxSeconds {
		return sample{}, errTimestampRange
	}
	level, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return sample{}, err
	}
	return sample{Seconds: seconds, Level: level}, nil
}

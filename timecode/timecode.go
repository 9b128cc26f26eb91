// Package timecode formats and parses the absolute offsets used across a
// production package: HH:MM:SS.mmm for script and timeline, m:ss / h:mm:ss
// for chapter markers.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// FromMinutes converts whole minutes to milliseconds.
func FromMinutes(minutes int) int64 {
	return int64(minutes) * msPerMinute
}

// Format renders ms as a zero-padded HH:MM:SS.mmm time code.
// Negative input is clamped to zero.
func Format(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / msPerHour
	m := (ms % msPerHour) / msPerMinute
	s := (ms % msPerMinute) / msPerSecond
	milli := ms % msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, milli)
}

// Parse reads an HH:MM:SS.mmm time code back into milliseconds.
func Parse(code string) (int64, error) {
	clock, frac, ok := strings.Cut(code, ".")
	if !ok || len(frac) != 3 {
		return 0, fmt.Errorf("time code %q: expected HH:MM:SS.mmm", code)
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("time code %q: expected HH:MM:SS.mmm", code)
	}

	fields := append(parts, frac)
	limits := []int64{-1, 59, 59, 999}
	values := make([]int64, len(fields))
	for i, f := range fields {
		if len(f) < 2 {
			return 0, fmt.Errorf("time code %q: field %q is not zero-padded", code, f)
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("time code %q: invalid field %q", code, f)
		}
		if limits[i] >= 0 && v > limits[i] {
			return 0, fmt.Errorf("time code %q: field %q out of range", code, f)
		}
		values[i] = v
	}
	return values[0]*msPerHour + values[1]*msPerMinute + values[2]*msPerSecond + values[3], nil
}

// Chapter renders ms in the coarser chapter-marker form: m:ss below one hour,
// h:mm:ss from one hour on. Fractional seconds are truncated.
func Chapter(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / msPerHour
	m := (ms % msPerHour) / msPerMinute
	s := (ms % msPerMinute) / msPerSecond
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

package utils

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// ErrInvalidInput is returned when a duration can't be decomposed
var ErrInvalidInput = errors.New("invalid input")

// Decomposed is a duration split into whole hours, minutes and seconds.
// Minutes and Seconds are always in [0, 60).
type Decomposed struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose splits a number of seconds into hours, minutes and seconds.
// Negative values are rejected with ErrInvalidInput.
func Decompose(totalSeconds int64) (Decomposed, error) {
	if totalSeconds < 0 {
		return Decomposed{}, errors.Wrapf(ErrInvalidInput, "negative duration %d", totalSeconds)
	}
	remainder := totalSeconds % secondsPerHour
	return Decomposed{
		Hours:   totalSeconds / secondsPerHour,
		Minutes: remainder / secondsPerMinute,
		Seconds: remainder % secondsPerMinute,
	}, nil
}

// Total returns the number of seconds d represents
func (d Decomposed) Total() int64 {
	return d.Hours*secondsPerHour + d.Minutes*secondsPerMinute + d.Seconds
}

// Clock renders d as H:MM:SS, hours are never wrapped
func (d Decomposed) Clock() string {
	return fmt.Sprintf("%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

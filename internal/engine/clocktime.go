package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tartampluch/go-analogclock/internal/config"
)

// Validation errors returned by ValidateTime. Use errors.Is to match them.
var (
	ErrHourRange   = errors.New(config.ErrHourRange)
	ErrMinuteRange = errors.New(config.ErrMinuteRange)
	ErrSecondRange = errors.New(config.ErrSecondRange)
)

// ClockTime is a wall-clock reading without a date.
// It is passed by value: each frame is rasterized from its own copy.
type ClockTime struct {
	Hours   int // 0-23
	Minutes int // 0-59
	Seconds int // 0-59
}

// ValidateTime reports the first field outside its range, or nil.
func ValidateTime(hours, minutes, seconds int) error {
	if hours < config.MinHour || hours > config.MaxHour {
		return fmt.Errorf("%w: got %d", ErrHourRange, hours)
	}
	if minutes < config.MinMinute || minutes > config.MaxMinute {
		return fmt.Errorf("%w: got %d", ErrMinuteRange, minutes)
	}
	if seconds < config.MinSecond || seconds > config.MaxSecond {
		return fmt.Errorf("%w: got %d", ErrSecondRange, seconds)
	}
	return nil
}

// NewClockTime builds a validated ClockTime.
func NewClockTime(hours, minutes, seconds int) (ClockTime, error) {
	if err := ValidateTime(hours, minutes, seconds); err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hours: hours, Minutes: minutes, Seconds: seconds}, nil
}

// Validate checks the receiver's fields with ValidateTime.
func (t ClockTime) Validate() error {
	return ValidateTime(t.Hours, t.Minutes, t.Seconds)
}

// Next returns the time one second later, wrapping from 23:59:59 to 00:00:00.
func (t ClockTime) Next() ClockTime {
	t.Seconds++
	if t.Seconds >= config.SecondsPerMinute {
		t.Seconds = 0
		t.Minutes++
		if t.Minutes >= config.MinutesPerHour {
			t.Minutes = 0
			t.Hours++
			if t.Hours >= config.HoursPerDay {
				t.Hours = 0
			}
		}
	}
	return t
}

// String formats the time as HH:MM:SS.
func (t ClockTime) String() string {
	return fmt.Sprintf(config.TimeFormat, t.Hours, t.Minutes, t.Seconds)
}

// HourAngle is the hour hand angle in radians, 0 at 12 o'clock, clockwise.
// The hour hand creeps forward with the minutes but ignores the seconds.
func (t ClockTime) HourAngle() float64 {
	hours := float64(t.Hours%config.HoursOnFace) + float64(t.Minutes)/config.MinutesPerHour
	return degreesToRadians(hours * config.DegreesPerHour)
}

// MinuteAngle is the minute hand angle in radians.
func (t ClockTime) MinuteAngle() float64 {
	return degreesToRadians(float64(t.Minutes) * config.DegreesPerMinute)
}

// SecondAngle is the second hand angle in radians.
func (t ClockTime) SecondAngle() float64 {
	return degreesToRadians(float64(t.Seconds) * config.DegreesPerSecond)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

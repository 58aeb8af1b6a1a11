package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSlot is one bookable window, both ends formatted "HH:MM".
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// BookedInterval is an existing appointment's window on the requested day.
type BookedInterval struct {
	StartTime string
	EndTime   string
}

// MinuteOfDay parses an "HH:MM" wall-clock value into minutes since
// midnight. All slot arithmetic runs on these integers rather than on
// formatted strings.
func MinuteOfDay(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatMinute renders minutes since midnight back to zero-padded "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// BuildSlots emits candidate slots of width duration (minutes) between open
// and close, dropping every candidate that overlaps a booked interval.
// Candidates are spaced exactly duration apart starting at open, so no two
// emitted slots overlap each other; a trailing window shorter than duration
// is never emitted.
func BuildSlots(openTime, closeTime string, duration int, booked []BookedInterval) ([]TimeSlot, error) {
	open, err := MinuteOfDay(openTime)
	if err != nil {
		return nil, err
	}
	close, err := MinuteOfDay(closeTime)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, fmt.Errorf("invalid service duration %d", duration)
	}

	type interval struct{ start, end int }
	taken := make([]interval, 0, len(booked))
	for _, b := range booked {
		start, err := MinuteOfDay(b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := MinuteOfDay(b.EndTime)
		if err != nil {
			return nil, err
		}
		taken = append(taken, interval{start, end})
	}

	slots := []TimeSlot{}
	for start := open; start+duration <= close; start += duration {
		end := start + duration
		isBooked := false
		for _, t := range taken {
			// Half-open overlap test between [t.start, t.end) and [start, end)
			if t.start < end && t.end > start {
				isBooked = true
				break
			}
		}
		if !isBooked {
			slots = append(slots, TimeSlot{
				StartTime: FormatMinute(start),
				EndTime:   FormatMinute(end),
			})
		}
	}
	return slots, nil
}

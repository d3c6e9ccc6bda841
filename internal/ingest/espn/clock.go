package espn

import (
	"strconv"
	"strings"
)

// TimeInSeconds converts a period number and display clock into seconds
// elapsed since the start of the match.
//
// The API only exposes the display clock. Some leagues count up from zero
// (NHL), others count down from the period length (NBA). The usual format is
// "MM:SS"; under one minute only seconds remain, possibly with a fractional
// part ("2.3") which is dropped. Every period beyond the regulation count
// uses the overtime length. Inconsistent period/periodCount input is not
// clamped and propagates arithmetically.
func TimeInSeconds(period int, clock string, periodCount, regulationLength, overtimeLength int, countsUp bool) int {
	parts := strings.Split(clock, ":")

	var minutes, seconds int
	if len(parts) > 1 {
		minutes = parseClockNumber(parts[0])
		seconds = parseClockNumber(parts[1])
	} else {
		seconds = parseClockNumber(parts[0])
	}

	currentPeriodLength := regulationLength
	if period > periodCount {
		currentPeriodLength = overtimeLength
	}

	currentTime := minutes*60 + seconds
	secondsFromPeriodStart := currentTime
	if !countsUp {
		secondsFromPeriodStart = currentPeriodLength - currentTime
	}

	pastRegulationPeriods := min(period-1, periodCount)
	pastOvertimePeriods := max(period-1-periodCount, 0)

	secondsInPastPeriods := pastRegulationPeriods*regulationLength + pastOvertimePeriods*overtimeLength
	return secondsInPastPeriods + secondsFromPeriodStart
}

// parseClockNumber reads the leading integer of a clock field, ignoring any
// fractional part.
func parseClockNumber(s string) int {
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

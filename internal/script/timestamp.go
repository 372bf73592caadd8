package script

import (
	"regexp"
	"strconv"
	"time"
)

var timestampPattern = regexp.MustCompile(`(\d+):(\d+)`)

// ParseTimestamp reads the first minutes:seconds pair found in s. Text
// without such a pair yields zero rather than an error.
func ParseTimestamp(s string) time.Duration {
	match := timestampPattern.FindStringSubmatch(s)
	if match == nil {
		return 0
	}

	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	seconds, err := strconv.Atoi(match[2])
	if err != nil {
		return 0
	}

	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
}

// Seconds is ParseTimestamp expressed in whole seconds.
func Seconds(s string) float64 {
	return ParseTimestamp(s).Seconds()
}

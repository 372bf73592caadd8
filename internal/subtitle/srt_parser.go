package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timingRegex = regexp.MustCompile(
	`^(-?\d{2,}:\d{2}:\d{2},\d{3})\s*-->\s*(-?\d{2,}:\d{2}:\d{2},\d{3})`,
)

var srtTimeRegex = regexp.MustCompile(`^(-?)(\d+):(\d{2}):(\d{2}),(\d{3})$`)

// ReadFile parses cues from an SRT file on disk.
func ReadFile(path string) ([]Cue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads SRT cues. Each cue needs an index line and a timing line;
// text lines are joined with newlines.
func Parse(r io.Reader) ([]Cue, error) {
	var cues []Cue
	scanner := bufio.NewScanner(r)

	var current *Cue
	var textLines []string
	timed := false
	lineNum := 0

	flush := func() {
		if current != nil && timed {
			current.Text = strings.Join(textLines, "\n")
			cues = append(cues, *current)
		}
		current = nil
		textLines = nil
		timed = false
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if current == nil {
			index, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf(
					"line %d: expected cue index, got %q",
					lineNum,
					line,
				)
			}
			current = &Cue{Index: index}
			continue
		}

		if !timed {
			matches := timingRegex.FindStringSubmatch(strings.TrimSpace(line))
			if matches == nil {
				return nil, fmt.Errorf(
					"line %d: expected timing line, got %q",
					lineNum,
					line,
				)
			}
			start, err := parseSRTTime(matches[1])
			if err != nil {
				return nil, fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
			}
			end, err := parseSRTTime(matches[2])
			if err != nil {
				return nil, fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
			}
			current.Start = start
			current.End = end
			timed = true
			continue
		}

		textLines = append(textLines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	flush()

	return cues, nil
}

// inverse of formatSRTTime
func parseSRTTime(s string) (time.Duration, error) {
	m := srtTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("malformed timestamp %q", s)
	}

	var parts [4]int
	for i := range parts {
		n, err := strconv.Atoi(m[i+2])
		if err != nil {
			return 0, err
		}
		parts[i] = n
	}

	d := time.Duration(parts[0])*time.Hour +
		time.Duration(parts[1])*time.Minute +
		time.Duration(parts[2])*time.Second +
		time.Duration(parts[3])*time.Millisecond
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}

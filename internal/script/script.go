package script

import (
	"fmt"
	"regexp"
	"strings"
)

// one parsed line of dialogue
type Entry struct {
	Timestamp string
	Speaker   string
	Dialogue  string
}

// copy of the entry with different dialogue text
func (e Entry) WithDialogue(dialogue string) Entry {
	e.Dialogue = dialogue
	return e
}

// display text for the cue built from this entry
func (e Entry) Text() string {
	return e.Speaker + ": " + e.Dialogue
}

var (
	blockSeparator = regexp.MustCompile(`\n{2,}`)

	// (m:ss) Speaker: "dialogue", dialogue may span lines
	entryPattern = regexp.MustCompile(`(?s)^\(([^)]+)\)\s*([^:]+):\s*"?(.+?)"?$`)
)

// ParseEntries splits raw script text into blank-line separated blocks and
// extracts one Entry per block. Blocks that do not have the entry shape are
// skipped and reported in warnings, in source order.
func ParseEntries(raw string) ([]Entry, []string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var entries []Entry
	var warnings []string

	for _, block := range blockSeparator.Split(raw, -1) {
		entry, ok := parseBlock(block)
		if !ok {
			warnings = append(
				warnings,
				fmt.Sprintf("invalid subtitle format: %s", block),
			)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, warnings
}

func parseBlock(block string) (Entry, bool) {
	match := entryPattern.FindStringSubmatch(strings.TrimSpace(block))
	if match == nil {
		return Entry{}, false
	}

	return Entry{
		Timestamp: match[1],
		Speaker:   strings.TrimSpace(match[2]),
		Dialogue:  stripQuotes(strings.TrimSpace(match[3])),
	}, true
}

// removes one leading and one trailing double quote
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

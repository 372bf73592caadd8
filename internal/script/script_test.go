package script

import (
	"strings"
	"testing"
)

func TestParseEntries(t *testing.T) {
	input := `(0:06) Subaru: "Hello there."

(0:12) Beako: "Indeed."


(1:05) Emilia: Plain line without quotes`

	entries, warnings := ParseEntries(input)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []Entry{
		{Timestamp: "0:06", Speaker: "Subaru", Dialogue: "Hello there."},
		{Timestamp: "0:12", Speaker: "Beako", Dialogue: "Indeed."},
		{
			Timestamp: "1:05",
			Speaker:   "Emilia",
			Dialogue:  "Plain line without quotes",
		},
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParseEntriesSkipsMalformedBlock(t *testing.T) {
	input := `(0:01) A: "one"

this block has no timestamp

(0:02) B: "two"

(0:03) no colon here

(0:04) C: "three"`

	entries, warnings := ParseEntries(input)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "this block has no timestamp") {
		t.Errorf("warning should name the block, got %q", warnings[0])
	}
	if !strings.Contains(warnings[1], "(0:03) no colon here") {
		t.Errorf("warning should name the block, got %q", warnings[1])
	}

	for i, speaker := range []string{"A", "B", "C"} {
		if entries[i].Speaker != speaker {
			t.Errorf("entry %d: speaker %q, want %q", i, entries[i].Speaker, speaker)
		}
	}
}

func TestParseEntriesSingleMalformedAmongMany(t *testing.T) {
	blocks := []string{
		`(0:01) Rem: "one"`,
		`(0:02) Rem: "two"`,
		"garbage",
		`(0:03) Rem: "three"`,
		`(0:04) Rem: "four"`,
		`(0:05) Rem: "five"`,
	}

	entries, warnings := ParseEntries(strings.Join(blocks, "\n\n"))
	if len(entries) != 5 {
		t.Errorf("expected 5 entries, got %d", len(entries))
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(warnings))
	}
}

func TestParseEntriesMultilineDialogue(t *testing.T) {
	input := "(0:10) Subaru: \"first line\nsecond line\"\n\n(0:20) Rem: \"next\""

	entries, warnings := ParseEntries(input)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Dialogue != "first line\nsecond line" {
		t.Errorf("dialogue = %q", entries[0].Dialogue)
	}
}

func TestParseEntriesEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\n"} {
		entries, warnings := ParseEntries(input)
		if len(entries) != 0 || len(warnings) != 0 {
			t.Errorf(
				"ParseEntries(%q) = %d entries, %d warnings; want none",
				input,
				len(entries),
				len(warnings),
			)
		}
	}
}

func TestParseBlockQuotes(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{"quoted", `(0:01) A: "Hi."`, "Hi."},
		{"unquoted", `(0:01) A: Hi.`, "Hi."},
		{"opening quote only", `(0:01) A: "Hi.`, "Hi."},
		{"no space after colon", `(0:40) Petra:"What do you mean?"`, "What do you mean?"},
		{"inner quotes kept", `(0:01) A: "She said "no" twice"`, `She said "no" twice`},
		{"padded", "  (0:01)   A  :   \"Hi.\"  ", "Hi."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := parseBlock(tt.block)
			if !ok {
				t.Fatalf("parseBlock(%q) did not match", tt.block)
			}
			if entry.Dialogue != tt.want {
				t.Errorf("dialogue = %q, want %q", entry.Dialogue, tt.want)
			}
			if entry.Speaker != "A" && entry.Speaker != "Petra" {
				t.Errorf("speaker not trimmed: %q", entry.Speaker)
			}
		})
	}
}

func TestParseBlockRejects(t *testing.T) {
	for _, block := range []string{
		"Subaru: no timestamp",
		"(0:01) no colon",
		"(0:01)",
		"() A: empty timestamp",
	} {
		if _, ok := parseBlock(block); ok {
			t.Errorf("parseBlock(%q) matched, want rejection", block)
		}
	}
}

func TestEntryWithDialogue(t *testing.T) {
	original := Entry{Timestamp: "0:01", Speaker: "Rem", Dialogue: "Hello"}
	translated := original.WithDialogue("Hola")

	if original.Dialogue != "Hello" {
		t.Error("WithDialogue mutated the original entry")
	}
	if translated.Text() != "Rem: Hola" {
		t.Errorf("Text() = %q", translated.Text())
	}
}

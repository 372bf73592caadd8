package subtitle

import (
	"fmt"
	"strings"
	"time"

	"github.com/mgpai22/scriptsrt/internal/script"
)

// gap between a cue's end and the next cue's start
const cueGap = time.Millisecond

// BuildCues times each entry from its own timestamp to just before the next
// entry's timestamp. The last cue runs until videoDuration. Out-of-order
// timestamps are kept as given, so a cue may end before it starts.
func BuildCues(entries []script.Entry, videoDuration time.Duration) []Cue {
	cues := make([]Cue, 0, len(entries))

	for i, entry := range entries {
		start := script.ParseTimestamp(entry.Timestamp)

		end := videoDuration
		if i+1 < len(entries) {
			end = script.ParseTimestamp(entries[i+1].Timestamp) - cueGap
		}

		cues = append(cues, Cue{
			Index: i + 1,
			Start: start,
			End:   end,
			Text:  entry.Text(),
		})
	}

	return cues
}

// Render serializes cues as a SubRip document without trailing whitespace.
func Render(cues []Cue) string {
	var sb strings.Builder
	for _, cue := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", cue.Index))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(cue.Start),
			formatSRTTime(cue.End)))

		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}

	return strings.TrimSpace(sb.String())
}

// RenderDocument turns parsed entries into the final SRT text.
func RenderDocument(entries []script.Entry, videoDuration time.Duration) string {
	return Render(BuildCues(entries, videoDuration))
}

// negative instants keep their sign in front of the magnitude
func formatSRTTime(d time.Duration) string {
	if d < 0 {
		return "-" + formatSRTTime(-d)
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

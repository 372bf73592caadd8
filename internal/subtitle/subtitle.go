package subtitle

import (
	"errors"
	"fmt"
	"time"
)

// represents single rendered subtitle cue
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// file extension of rendered documents
const Extension = ".srt"

// returned when the video duration cannot bound the final cue
var ErrInvalidDuration = errors.New("invalid video duration")

// ValidateDuration rejects durations that are not positive. Rendering itself
// accepts any value, callers check before handing a duration over.
func ValidateDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidDuration, d)
	}
	return nil
}

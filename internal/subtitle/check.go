package subtitle

import "fmt"

// kind of timing defect found in a rendered document
type FindingKind string

const (
	FindingNegative FindingKind = "negative"
	FindingInverted FindingKind = "inverted"
	FindingOverlap  FindingKind = "overlap"
)

// timing defect of a single cue
type Finding struct {
	Index   int
	Kind    FindingKind
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("cue %d: %s: %s", f.Index, f.Kind, f.Message)
}

// Check reports cues that start or end before zero, end before they start,
// or still show when the following cue starts. Rendering never corrects
// these, so this is the place they surface.
func Check(cues []Cue) []Finding {
	var findings []Finding

	for i, cue := range cues {
		if cue.Start < 0 || cue.End < 0 {
			findings = append(findings, Finding{
				Index: cue.Index,
				Kind:  FindingNegative,
				Message: fmt.Sprintf(
					"%s --> %s has a negative instant",
					formatSRTTime(cue.Start),
					formatSRTTime(cue.End),
				),
			})
		}

		if cue.End < cue.Start {
			findings = append(findings, Finding{
				Index: cue.Index,
				Kind:  FindingInverted,
				Message: fmt.Sprintf(
					"ends at %s before it starts at %s",
					formatSRTTime(cue.End),
					formatSRTTime(cue.Start),
				),
			})
		}

		if i+1 < len(cues) && cue.End >= cues[i+1].Start {
			next := cues[i+1]
			findings = append(findings, Finding{
				Index: cue.Index,
				Kind:  FindingOverlap,
				Message: fmt.Sprintf(
					"ends at %s, not before cue %d starts at %s",
					formatSRTTime(cue.End),
					next.Index,
					formatSRTTime(next.Start),
				),
			})
		}
	}

	return findings
}

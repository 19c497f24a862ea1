package feed

type SkipReason string

const (
	SkipNotPost    SkipReason = "not_post"
	SkipChild      SkipReason = "child"
	SkipEmptyTitle SkipReason = "empty_title"
	SkipDraft      SkipReason = "draft"
)

// One-time notices, keyed by the skip reason that triggers them.
var skipNotices = map[SkipReason]string{
	SkipEmptyTitle: "Ignoring posts with empty titles",
	SkipDraft:      "WARNING: unpublished drafts are not imported",
}

// Diagnostics accumulates what happened to the records of one run.
type Diagnostics struct {
	Notices []string
	Skipped map[SkipReason]int
}

func (d *Diagnostics) recordSkip(reason SkipReason) {
	if d.Skipped == nil {
		d.Skipped = make(map[SkipReason]int)
	}
	d.Skipped[reason]++

	if d.Skipped[reason] == 1 {
		if notice, ok := skipNotices[reason]; ok {
			d.Notices = append(d.Notices, notice)
		}
	}
}

func (d *Diagnostics) SkippedTotal() int {
	total := 0
	for _, n := range d.Skipped {
		total += n
	}
	return total
}

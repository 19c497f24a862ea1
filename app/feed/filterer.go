package feed

import "strconv"

type filterRule struct {
	reason  SkipReason
	rejects func(item Item, opts Options) bool
}

// Rules run in order; the first one that rejects an item decides its skip
// reason.
var filterRules = []filterRule{
	{
		reason: SkipNotPost,
		rejects: func(item Item, _ Options) bool {
			return item.Type != "post"
		},
	},
	{
		reason: SkipChild,
		rejects: func(item Item, _ Options) bool {
			return leadingInt(item.ParentID) > 0
		},
	},
	{
		reason: SkipEmptyTitle,
		rejects: func(item Item, opts Options) bool {
			return opts.IgnoreEmptyTitle && item.Title == ""
		},
	},
	{
		reason: SkipDraft,
		rejects: func(item Item, _ Options) bool {
			return item.Status == "draft"
		},
	},
}

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run returns the items that pass every rule, in source order. Skipped items
// are counted on diag.
func (f *Filterer) Run(items []Item, opts Options, diag *Diagnostics) []Item {
	accepted := make([]Item, 0, len(items))
	for _, item := range items {
		if rejected, reason := f.applyFilters(item, opts); rejected {
			diag.recordSkip(reason)
			continue
		}
		accepted = append(accepted, item)
	}

	return accepted
}

func (f *Filterer) applyFilters(item Item, opts Options) (bool, SkipReason) {
	for _, rule := range filterRules {
		if rule.rejects(item, opts) {
			return true, rule.reason
		}
	}

	return false, ""
}

// leadingInt reads the integer at the start of s, ignoring leading spaces
// and anything after the digits. It returns 0 when there is none.
func leadingInt(s string) int64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}

	// Out-of-range values saturate, which keeps their sign.
	n, _ := strconv.ParseInt(s[start:i], 10, 64)
	return n
}

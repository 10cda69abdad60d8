package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type feeTier struct {
	DaysBefore int
	Percent    int
}

// CancellationPolicy is the tiered fee schedule, e.g. "7:0,3:30,0:80":
// free at seven or more days before the earliest usage, 30% inside the
// three-to-six-day window, 80% at two days or closer. Tiers are matched
// from the most distant threshold down.
type CancellationPolicy struct {
	tiers []feeTier
}

// ParseCancellationPolicy parses a comma-separated "daysBefore:percent"
// list. The schedule must contain a 0-day tier and percentages must not
// decrease as the usage date draws closer.
func ParseCancellationPolicy(raw string) (CancellationPolicy, error) {
	parts := strings.Split(raw, ",")
	tiers := make([]feeTier, 0, len(parts))

	for _, part := range parts {
		pair := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(pair) != 2 {
			return CancellationPolicy{}, fmt.Errorf("invalid cancellation tier %q", part)
		}

		days, err := strconv.Atoi(pair[0])
		if err != nil || days < 0 {
			return CancellationPolicy{}, fmt.Errorf("invalid cancellation tier days %q", pair[0])
		}

		percent, err := strconv.Atoi(pair[1])
		if err != nil || percent < 0 || percent > 100 {
			return CancellationPolicy{}, fmt.Errorf("invalid cancellation tier percent %q", pair[1])
		}

		tiers = append(tiers, feeTier{DaysBefore: days, Percent: percent})
	}

	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].DaysBefore > tiers[j].DaysBefore
	})

	for i := 1; i < len(tiers); i++ {
		if tiers[i].DaysBefore == tiers[i-1].DaysBefore {
			return CancellationPolicy{}, fmt.Errorf("duplicate cancellation tier for %d days", tiers[i].DaysBefore)
		}

		if tiers[i].Percent < tiers[i-1].Percent {
			return CancellationPolicy{}, fmt.Errorf("cancellation fee must not decrease closer to the usage date")
		}
	}

	if len(tiers) == 0 || tiers[len(tiers)-1].DaysBefore != 0 {
		return CancellationPolicy{}, fmt.Errorf("cancellation schedule requires a 0-day tier")
	}

	return CancellationPolicy{tiers: tiers}, nil
}

// FeePercent returns the percentage charged when cancelling daysBefore
// days ahead of the earliest usage date. Same-day and past usages fall
// into the 0-day tier.
func (p CancellationPolicy) FeePercent(daysBefore int) int {
	for _, tier := range p.tiers {
		if daysBefore >= tier.DaysBefore {
			return tier.Percent
		}
	}

	return p.tiers[len(p.tiers)-1].Percent
}

// Breakdown computes the fee and refund for a total amount in whole yen.
func (p CancellationPolicy) Breakdown(total, daysBefore int) (fee, refund, percent int) {
	percent = p.FeePercent(daysBefore)
	fee = total * percent / 100
	refund = total - fee

	return fee, refund, percent
}

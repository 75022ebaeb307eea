package booking

// AdjustStartLookaheadDays bounds the day-by-day search for an alternative
// conflict-free start date.
const AdjustStartLookaheadDays = 365

// Shorten proposes keeping only the leading run of available dates. Count
// is 0 when the very first requested date already conflicts.
type Shorten struct {
	Count int
	Dates []BookingDate
}

// ContiguousBlock proposes the longest correctly-spaced run of available
// dates anywhere in the requested span. Ties keep the earliest run.
type ContiguousBlock struct {
	StartDate BookingDate
	Count     int
	Dates     []BookingDate
}

// AdjustStart proposes shifting the whole series to the nearest start date
// whose re-expansion has zero conflicts.
type AdjustStart struct {
	StartDate BookingDate
	Dates     []BookingDate
}

// Suggestions bundles the three independent remediation proposals. A nil
// field means the proposal was not computed, which is distinct from a
// Shorten with Count 0.
type Suggestions struct {
	Shorten         *Shorten
	ContiguousBlock *ContiguousBlock
	AdjustStart     *AdjustStart
}

// Suggest derives remediation proposals from a plan and the seat index the
// plan was built against. The only possible error is the weekday stepping
// guard tripping during adjust-start re-expansion.
func Suggest(plan *Plan, index BookingIndex) (*Suggestions, error) {
	if plan == nil || len(plan.TargetDates) == 0 {
		return &Suggestions{}, nil
	}

	available := make([]bool, len(plan.TargetDates))
	for i, date := range plan.TargetDates {
		available[i] = plan.isAvailable(date)
	}

	suggestions := &Suggestions{
		Shorten: shortenPrefix(plan, available),
	}
	if block := longestBlock(plan, available); block != nil {
		suggestions.ContiguousBlock = block
	}

	adjust, err := adjustedStart(plan, index)
	if err != nil {
		return nil, err
	}
	suggestions.AdjustStart = adjust

	return suggestions, nil
}

// shortenPrefix is anchored at the requested start date: the first
// conflicting target date terminates the run. Target dates are correctly
// spaced by construction, so the prefix needs no extra spacing check.
func shortenPrefix(plan *Plan, available []bool) *Shorten {
	prefix := make([]BookingDate, 0, len(plan.TargetDates))
	for i, ok := range available {
		if !ok {
			break
		}
		prefix = append(prefix, plan.TargetDates[i])
		if plan.Spec == nil {
			break
		}
	}
	return &Shorten{Count: len(prefix), Dates: prefix}
}

func longestBlock(plan *Plan, available []bool) *ContiguousBlock {
	bestStart, bestLen := -1, 0
	i := 0
	for i < len(available) {
		if !available[i] {
			i++
			continue
		}
		runStart := i
		runLen := 1
		if plan.Spec != nil {
			for i+1 < len(available) && available[i+1] {
				i++
				runLen++
			}
		}
		if runLen > bestLen {
			bestStart, bestLen = runStart, runLen
		}
		i++
	}

	if bestLen == 0 {
		return nil
	}
	dates := plan.TargetDates[bestStart : bestStart+bestLen]
	return &ContiguousBlock{
		StartDate: dates[0],
		Count:     bestLen,
		Dates:     dates,
	}
}

// adjustedStart searches day-by-day from the original start for a start
// date whose full re-expansion is conflict-free, and reports it only when
// it adds information: the plan had conflicts, or the found start differs
// from the requested one.
func adjustedStart(plan *Plan, index BookingIndex) (*AdjustStart, error) {
	for offset := 0; offset <= AdjustStartLookaheadDays; offset++ {
		candidate := plan.StartDate.AddDays(offset)
		dates, err := ExpandDates(candidate, plan.Spec)
		if err != nil {
			return nil, err
		}

		free := true
		for _, date := range dates {
			if _, taken := index.Lookup(date); taken {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		if !plan.HasConflicts() && candidate.Equal(plan.StartDate) {
			return nil, nil
		}
		return &AdjustStart{StartDate: candidate, Dates: dates}, nil
	}

	// No conflict-free window within the lookahead; absence is not an error.
	return nil, nil
}

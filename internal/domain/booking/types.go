package booking

// Frequency is the recurrence stepping rule for a booking series.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekday Frequency = "weekday"
	FrequencyWeekly  Frequency = "weekly"
)

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekday, FrequencyWeekly:
		return true
	default:
		return false
	}
}

// CancellationSource records whether a cancellation removed one booking or
// was part of a series cutoff.
type CancellationSource string

const (
	SourceSingle CancellationSource = "single"
	SourceSeries CancellationSource = "series"
)

func (s CancellationSource) String() string {
	return string(s)
}

func (s CancellationSource) IsValid() bool {
	switch s {
	case SourceSingle, SourceSeries:
		return true
	default:
		return false
	}
}

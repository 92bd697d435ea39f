package domain

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"LOW": true, "MEDIUM": true, "HIGH": true,
}

// Rank orders priorities for sorting: HIGH > MEDIUM > LOW.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type Recurrence string

const (
	RecurrenceNone   Recurrence = "NONE"
	RecurrenceDaily  Recurrence = "DAILY"
	RecurrenceWeekly Recurrence = "WEEKLY"
)

// ValidRecurrences is the canonical set of accepted recurrence strings.
var ValidRecurrences = map[string]bool{
	"NONE": true, "DAILY": true, "WEEKLY": true,
}

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

type Tone string

const (
	ToneMotivational Tone = "motivational"
	ToneReflective   Tone = "reflective"
	ToneCelebratory  Tone = "celebratory"
)

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// TimeOfDayAt buckets an hour of the day into its named segment.
func TimeOfDayAt(hour int) TimeOfDay {
	switch {
	case hour < 5:
		return TimeNight
	case hour < 12:
		return TimeMorning
	case hour < 17:
		return TimeAfternoon
	case hour < 21:
		return TimeEvening
	default:
		return TimeNight
	}
}

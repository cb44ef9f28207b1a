package constants

type Urgency string

type Importance string

const (
	UrgencyUrgent    Urgency = "urgent"
	UrgencyNotUrgent Urgency = "not_urgent"

	ImportanceImportant    Importance = "important"
	ImportanceNotImportant Importance = "not_important"
)

// DefaultMaxPerQuadrant caps open tasks per Eisenhower quadrant.
const DefaultMaxPerQuadrant = 10

const MaxTitleLength = 200

const MaxEstimatedHours = 999.99

func ValidUrgency(u Urgency) bool {
	return u == UrgencyUrgent || u == UrgencyNotUrgent
}

func ValidImportance(i Importance) bool {
	return i == ImportanceImportant || i == ImportanceNotImportant
}

package proposal

// Mood selects the picture shown above the question.
type Mood int

const (
	MoodInitial Mood = iota
	MoodSad
	MoodSuccess
)

func (m Mood) String() string {
	switch m {
	case MoodInitial:
		return "INITIAL"
	case MoodSad:
		return "SAD"
	case MoodSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// View is the top-level screen variant.
type View int

const (
	ViewAsking View = iota
	ViewCelebrating
)

func (v View) String() string {
	if v == ViewCelebrating {
		return "celebrating"
	}
	return "asking"
}

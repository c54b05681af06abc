package coach

// Mode selects the coaching persona and which annotation gates apply.
type Mode string

const (
	Career  Mode = "career"
	Fitness Mode = "fitness"
	Finance Mode = "finance"
	Mental  Mode = "mental"
	General Mode = "general"
)

// ParseMode maps a client-supplied mode string onto a known Mode. Anything
// unrecognized falls back to General rather than failing the request.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case Career, Fitness, Finance, Mental, General:
		return Mode(s)
	default:
		return General
	}
}

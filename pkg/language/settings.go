package language

// Settings selects per-call processing options. It is passed explicitly to
// every public operation; nothing is read from package-level state, so
// several configurations can share one Language instance.
type Settings struct {
	// Normalize selects the Unicode-normalized cache family: dictionary
	// keys and simplification rules are re-keyed through NormalizeUnicode
	// before matching. Callers are expected to pass input text through
	// NormalizeUnicode themselves when this is set; the API layer does so.
	Normalize bool
}

// DefaultSettings returns the raw-mode settings.
func DefaultSettings() Settings { return Settings{} }

// Cache families are indexed by mode so the raw and normalized variants
// never mix.
const (
	modeRaw = iota
	modeNormalized
	modeCount
)

func (s Settings) mode() int {
	if s.Normalize {
		return modeNormalized
	}
	return modeRaw
}

// Package threat defines threat profiles and the per-category item
// relevance mapping that narrows the checklist to a selected risk posture.
package threat

// Level identifies a threat profile. "all" is the universal profile and
// the default/sentinel value: it selects every item in every category.
type Level string

const (
	LevelAll         Level = "all"
	LevelBasic       Level = "basic"
	LevelDeveloper   Level = "developer"
	LevelPrivacy     Level = "privacy"
	LevelHighValue   Level = "highValue"
	LevelInstitution Level = "institution"
)

// Levels lists every profile including the universal one, in display order.
func Levels() []Level {
	return []Level{LevelAll, LevelBasic, LevelDeveloper, LevelPrivacy, LevelHighValue, LevelInstitution}
}

// ConcreteLevels lists the profiles that actually filter (everything but
// "all").
func ConcreteLevels() []Level {
	return []Level{LevelBasic, LevelDeveloper, LevelPrivacy, LevelHighValue, LevelInstitution}
}

// ParseLevel validates a stored or user-supplied level tag. Unknown tags
// fall back to LevelAll so bad persisted data never blocks the UI.
func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	switch l {
	case LevelAll, LevelBasic, LevelDeveloper, LevelPrivacy, LevelHighValue, LevelInstitution:
		return l, true
	}
	return LevelAll, false
}

// Profile carries display metadata for a threat level.
type Profile struct {
	ID          Level  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Profiles returns every profile with its display metadata.
func Profiles() []Profile {
	return []Profile{
		{ID: LevelAll, Name: "Complete Checklist", Description: "Every item across every category, unfiltered."},
		{ID: LevelBasic, Name: "Everyday User", Description: "The baseline for anyone holding or trading crypto."},
		{ID: LevelDeveloper, Name: "Developer", Description: "For people who write, review or deploy code around crypto."},
		{ID: LevelPrivacy, Name: "Privacy Focused", Description: "For users minimizing their identity and data footprint."},
		{ID: LevelHighValue, Name: "High-Value Holder", Description: "For holdings large enough to attract targeted attacks."},
		{ID: LevelInstitution, Name: "Institution", Description: "For teams managing funds with shared operational controls."},
	}
}

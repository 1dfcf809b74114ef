package catalog

// Level is the priority tag on a checklist item, independent of threat
// profile. It drives presets and the "critical remaining" counts.
type Level string

const (
	LevelEssential   Level = "essential"
	LevelRecommended Level = "recommended"
	LevelOptional    Level = "optional"
	LevelAdvanced    Level = "advanced"
)

// Valid reports whether the level is one of the four enumerated values.
// Anything else in catalog data is a data-integrity defect.
func (l Level) Valid() bool {
	switch l {
	case LevelEssential, LevelRecommended, LevelOptional, LevelAdvanced:
		return true
	}
	return false
}

// Icon is the closed set of category symbols. The core only carries the
// tag; UI layers resolve it to an actual glyph.
type Icon string

const (
	IconKey       Icon = "key"
	IconGlobe     Icon = "globe"
	IconMail      Icon = "mail"
	IconPhone     Icon = "phone"
	IconUsers     Icon = "users"
	IconWallet    Icon = "wallet"
	IconMonitor   Icon = "monitor"
	IconCoins     Icon = "coins"
	IconBriefcase Icon = "briefcase"
	IconCode      Icon = "code"
	IconEyeOff    Icon = "eye-off"
)

// Link points an item at supporting reading.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// SecurityItem is one checklist entry. IDs are globally unique and stable
// ("wallet-1"); they never move between categories. Completed is a derived
// overlay written by the materializer, never stored on the catalog itself.
type SecurityItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Details      string   `json:"details,omitempty"`
	Level        Level    `json:"level"`
	Completed    bool     `json:"completed"`
	Links        []Link   `json:"links,omitempty"`
	ThreatLevels []string `json:"threatLevels,omitempty"`
}

// SecurityCategory is a named grouping of items. Item order is
// display-significant but carries no scoring meaning.
type SecurityCategory struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Icon            Icon           `json:"icon"`
	LongDescription string         `json:"longDescription,omitempty"`
	Items           []SecurityItem `json:"items"`
}

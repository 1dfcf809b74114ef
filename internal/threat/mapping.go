package threat

// categoryMappings is the static relevance table: per category, the item
// IDs that apply under each concrete threat level. A missing or empty list
// means "all items relevant" (see Filter), never "no items" — an empty UI
// over incomplete mapping data would be worse than an unfiltered one.
//
// Known gaps (social/institution, jobs/privacy) are tracked upstream in the
// content backlog; the runtime fallback covers them.
var categoryMappings = map[string]Mapping{
	"authentication": {
		LevelBasic:       {"auth-1", "auth-2", "auth-4", "auth-5", "auth-6"},
		LevelDeveloper:   {"auth-1", "auth-2", "auth-3", "auth-4", "auth-6", "auth-9", "auth-10", "auth-14"},
		LevelPrivacy:     {"auth-1", "auth-2", "auth-3", "auth-4", "auth-6", "auth-7", "auth-10"},
		LevelHighValue:   {"auth-1", "auth-2", "auth-3", "auth-4", "auth-5", "auth-6", "auth-8", "auth-9", "auth-10", "auth-11", "auth-12", "auth-14"},
		LevelInstitution: {"auth-1", "auth-2", "auth-3", "auth-4", "auth-9", "auth-10", "auth-11", "auth-12", "auth-14"},
	},
	"browsing": {
		LevelBasic:       {"browsing-1", "browsing-4", "browsing-6", "browsing-7", "browsing-10", "browsing-12"},
		LevelDeveloper:   {"browsing-1", "browsing-2", "browsing-4", "browsing-5", "browsing-7", "browsing-10", "browsing-12", "browsing-13", "browsing-14"},
		LevelPrivacy:     {"browsing-1", "browsing-2", "browsing-3", "browsing-4", "browsing-5", "browsing-6", "browsing-7", "browsing-8", "browsing-10", "browsing-11", "browsing-12", "browsing-14"},
		LevelHighValue:   {"browsing-1", "browsing-2", "browsing-3", "browsing-4", "browsing-5", "browsing-6", "browsing-7", "browsing-9", "browsing-10", "browsing-12"},
		LevelInstitution: {"browsing-1", "browsing-2", "browsing-4", "browsing-5", "browsing-6", "browsing-7", "browsing-10", "browsing-12"},
	},
	"email": {
		LevelBasic:       {"email-2", "email-3", "email-4", "email-10"},
		LevelDeveloper:   {"email-1", "email-2", "email-3", "email-4", "email-6", "email-10"},
		LevelPrivacy:     {"email-1", "email-2", "email-3", "email-4", "email-5", "email-6", "email-7", "email-8", "email-9", "email-10"},
		LevelHighValue:   {"email-1", "email-2", "email-3", "email-4", "email-6", "email-7", "email-10", "email-12"},
		LevelInstitution: {"email-1", "email-2", "email-3", "email-4", "email-6", "email-7", "email-10", "email-11", "email-12"},
	},
	"mobile": {
		LevelBasic:       {"mobile-1", "mobile-2", "mobile-3", "mobile-4"},
		LevelDeveloper:   {"mobile-1", "mobile-2", "mobile-3", "mobile-4", "mobile-5", "mobile-6"},
		LevelPrivacy:     {"mobile-1", "mobile-2", "mobile-3", "mobile-4", "mobile-5", "mobile-7", "mobile-9", "mobile-12", "mobile-13"},
		LevelHighValue:   {"mobile-1", "mobile-2", "mobile-3", "mobile-4", "mobile-5", "mobile-7", "mobile-8", "mobile-9", "mobile-10", "mobile-12", "mobile-13", "mobile-14"},
		LevelInstitution: {"mobile-1", "mobile-2", "mobile-3", "mobile-4", "mobile-5", "mobile-8", "mobile-9", "mobile-10"},
	},
	"social": {
		LevelBasic:     {"social-1", "social-2", "social-3", "social-4", "social-12"},
		LevelDeveloper: {"social-2", "social-3", "social-4", "social-10", "social-11", "social-12"},
		LevelPrivacy:   {"social-1", "social-2", "social-5", "social-6", "social-7", "social-8", "social-13"},
		LevelHighValue: {"social-1", "social-2", "social-3", "social-4", "social-5", "social-6", "social-9", "social-10", "social-12", "social-13"},
	},
	"wallet": {
		LevelBasic:       {"wallet-1", "wallet-2", "wallet-3", "wallet-4", "wallet-5", "wallet-16"},
		LevelDeveloper:   {"wallet-1", "wallet-2", "wallet-3", "wallet-4", "wallet-6", "wallet-8", "wallet-13", "wallet-16"},
		LevelPrivacy:     {"wallet-1", "wallet-2", "wallet-3", "wallet-4", "wallet-6", "wallet-11", "wallet-16"},
		LevelHighValue:   {"wallet-1", "wallet-2", "wallet-3", "wallet-4", "wallet-5", "wallet-6", "wallet-7", "wallet-8", "wallet-9", "wallet-10", "wallet-11", "wallet-12", "wallet-13", "wallet-14", "wallet-15", "wallet-16"},
		LevelInstitution: {"wallet-1", "wallet-2", "wallet-4", "wallet-7", "wallet-8", "wallet-9", "wallet-12", "wallet-14", "wallet-15", "wallet-16"},
	},
	"os": {
		LevelBasic:       {"os-1", "os-2", "os-4"},
		LevelDeveloper:   {"os-1", "os-2", "os-3", "os-4", "os-5", "os-7", "os-10", "os-14"},
		LevelPrivacy:     {"os-1", "os-2", "os-3", "os-5", "os-8", "os-13"},
		LevelHighValue:   {"os-1", "os-2", "os-3", "os-4", "os-5", "os-6", "os-7", "os-8", "os-9", "os-10", "os-13"},
		LevelInstitution: {"os-1", "os-2", "os-3", "os-5", "os-6", "os-8", "os-9", "os-10", "os-14"},
	},
	"defi": {
		LevelBasic:       {"defi-1", "defi-2", "defi-11"},
		LevelDeveloper:   {"defi-1", "defi-2", "defi-3", "defi-4", "defi-5", "defi-6", "defi-8", "defi-9", "defi-12"},
		LevelPrivacy:     {"defi-1", "defi-2", "defi-4", "defi-11"},
		LevelHighValue:   {"defi-1", "defi-2", "defi-3", "defi-4", "defi-5", "defi-6", "defi-7", "defi-8", "defi-11", "defi-12", "defi-14"},
		LevelInstitution: {"defi-1", "defi-2", "defi-3", "defi-5", "defi-6", "defi-7", "defi-8", "defi-11", "defi-14"},
	},
	"jobs": {
		LevelBasic:       {"jobs-1", "jobs-2", "jobs-5"},
		LevelDeveloper:   {"jobs-1", "jobs-2", "jobs-3", "jobs-4", "jobs-6", "jobs-9", "jobs-11", "jobs-12"},
		LevelHighValue:   {"jobs-1", "jobs-2", "jobs-3", "jobs-5", "jobs-6", "jobs-8", "jobs-11"},
		LevelInstitution: {"jobs-1", "jobs-2", "jobs-4", "jobs-6", "jobs-7", "jobs-10", "jobs-12"},
	},
	"developers": {
		LevelBasic:       {"dev-1", "dev-2", "dev-7"},
		LevelDeveloper:   {"dev-1", "dev-2", "dev-3", "dev-4", "dev-5", "dev-6", "dev-7", "dev-8", "dev-9", "dev-10", "dev-11", "dev-12"},
		LevelPrivacy:     {"dev-1", "dev-2", "dev-5", "dev-7"},
		LevelHighValue:   {"dev-1", "dev-2", "dev-3", "dev-4", "dev-5", "dev-6", "dev-7", "dev-10"},
		LevelInstitution: {"dev-1", "dev-2", "dev-3", "dev-4", "dev-6", "dev-8", "dev-9", "dev-10"},
	},
	"opsec": {
		LevelBasic:       {"opsec-1", "opsec-5"},
		LevelDeveloper:   {"opsec-1", "opsec-2", "opsec-5", "opsec-12"},
		LevelPrivacy:     {"opsec-1", "opsec-2", "opsec-3", "opsec-4", "opsec-5", "opsec-7", "opsec-8", "opsec-9", "opsec-10", "opsec-13"},
		LevelHighValue:   {"opsec-1", "opsec-2", "opsec-3", "opsec-4", "opsec-5", "opsec-6", "opsec-8", "opsec-9", "opsec-11", "opsec-12", "opsec-14"},
		LevelInstitution: {"opsec-1", "opsec-2", "opsec-5", "opsec-11", "opsec-12", "opsec-14"},
	},
}

package catalog

func loadJobs() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "jobs",
		Title:       "Job Offers & Recruitment",
		Description: "Fake jobs are a first-class attack vector in crypto.",
		Icon:        IconBriefcase,
		LongDescription: "State-sponsored groups and commodity scammers both use recruitment as " +
			"an entry point, targeting both your device and your employer's.",
		Items: []SecurityItem{
			{
				ID:          "jobs-1",
				Title:       "Never run take-home code without sandboxing it",
				Description: "\"Technical assessments\" from recruiters ship infostealers in npm hooks.",
				Details: "Run unknown repos in a disposable VM with no wallet, no SSH keys and no " +
					"password manager session. Several major breaches started exactly here.",
				Level: LevelEssential,
			},
			{
				ID:          "jobs-2",
				Title:       "Verify recruiters through the company's official channels",
				Description: "Confirm the person exists and the role is real before any call.",
				Level:       LevelEssential,
			},
			{
				ID:          "jobs-3",
				Title:       "Treat unsolicited, overpaid offers as hostile",
				Description: "A generous offer for minimal work is bait, not luck.",
				Level:       LevelRecommended,
			},
			{
				ID:          "jobs-4",
				Title:       "Do not install interview software from direct links",
				Description: "Fake video-call apps are trojans; use the web client or official stores.",
				Level:       LevelRecommended,
			},
			{
				ID:          "jobs-5",
				Title:       "Never share wallet details for \"payment setup\"",
				Description: "Legitimate employers use payroll, not your seed phrase.",
				Level:       LevelEssential,
			},
			{
				ID:          "jobs-6",
				Title:       "Keep work and personal crypto strictly separated",
				Description: "A compromised work laptop should not be able to reach personal funds.",
				Level:       LevelRecommended,
			},
			{
				ID:          "jobs-7",
				Title:       "Be careful what your public resume reveals",
				Description: "Advertising treasury access makes you the phishing target for your org.",
				Level:       LevelOptional,
			},
			{
				ID:          "jobs-8",
				Title:       "Scrutinize crypto-denominated payment requests",
				Description: "Upfront \"equipment fees\" or crypto-only salaries are scam markers.",
				Level:       LevelRecommended,
			},
			{
				ID:          "jobs-9",
				Title:       "Check that interview domains match the company",
				Description: "Look-alike domains host fake portals that harvest credentials.",
				Level:       LevelOptional,
			},
			{
				ID:          "jobs-10",
				Title:       "Report impersonation to the real company",
				Description: "Fake postings in your name or theirs persist until someone reports them.",
				Level:       LevelOptional,
			},
			{
				ID:          "jobs-11",
				Title:       "Never run take-home assignments outside a sandbox",
				Description: "\"Technical challenges\" with a prepared repo are a common malware vector.",
				Details: "Clone and run unknown interview code in a throwaway VM or container with no " +
					"wallet, no SSH keys and no saved sessions.",
				Level: LevelEssential,
			},
			{
				ID:          "jobs-12",
				Title:       "Refuse interviews that require an unknown video app",
				Description: "Insisting on a niche \"meeting client\" download is an infection attempt.",
				Level:       LevelRecommended,
			},
		},
	}, nil
}

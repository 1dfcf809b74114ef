package catalog

func loadSocial() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "social",
		Title:       "Social Media & Messaging",
		Description: "Most crypto theft starts with a conversation.",
		Icon:        IconUsers,
		Items: []SecurityItem{
			{
				ID:          "social-1",
				Title:       "Never discuss your holdings publicly",
				Description: "Posting gains paints a target on you and everyone in your house.",
				Level:       LevelEssential,
			},
			{
				ID:          "social-2",
				Title:       "Assume every unsolicited DM is a scam",
				Description: "Support staff, admins and founders do not DM first. Ever.",
				Details: "Fake support is the most common attack on Discord and Telegram. The real " +
					"team will never ask you to verify your wallet or share a screen.",
				Level: LevelEssential,
			},
			{
				ID:          "social-3",
				Title:       "Verify project links through official channels only",
				Description: "Cross-check announcements against the project's pinned, verified sources.",
				Level:       LevelEssential,
			},
			{
				ID:          "social-4",
				Title:       "Ignore giveaway and doubling scams",
				Description: "Nobody is sending back twice what you send them. Including Elon.",
				Level:       LevelEssential,
			},
			{
				ID:           "social-5",
				Title:        "Lock down privacy settings on every platform",
				Description:  "Restrict who can see your posts, friends list and contact details.",
				Level:        LevelRecommended,
				ThreatLevels: []string{"privacy"},
			},
			{
				ID:           "social-6",
				Title:        "Separate crypto identity from real identity",
				Description:  "Use a pseudonym for crypto accounts with no cross-links to your name.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy", "highValue"},
			},
			{
				ID:          "social-7",
				Title:       "Scrub metadata and backgrounds from photos",
				Description: "Screens, documents and street views in photos leak more than you think.",
				Level:       LevelOptional,
			},
			{
				ID:          "social-8",
				Title:       "Disable phone-number discoverability in messengers",
				Description: "Stop strangers from resolving your number to your profile.",
				Level:       LevelRecommended,
			},
			{
				ID:          "social-9",
				Title:       "Beware of long-con \"pig butchering\" relationships",
				Description: "Investment advice from a new online friend always ends the same way.",
				Details: "These operations run for months before the pitch. Any conversation that " +
					"drifts toward a trading platform you have never heard of is the script.",
				Level: LevelRecommended,
			},
			{
				ID:          "social-10",
				Title:       "Verify voice and video requests independently",
				Description: "Deepfaked calls from \"colleagues\" precede wire and crypto fraud.",
				Level:       LevelOptional,
			},
			{
				ID:          "social-11",
				Title:       "Audit third-party app access to social accounts",
				Description: "Old OAuth grants can post links to your followers on an attacker's behalf.",
				Level:       LevelRecommended,
			},
			{
				ID:          "social-12",
				Title:       "Lock down who can DM you",
				Description: "Most wallet-drainer campaigns open with an unsolicited direct message.",
				Level:       LevelRecommended,
			},
			{
				ID:           "social-13",
				Title:        "Scrub old posts that reveal holdings or habits",
				Description:  "Years-old screenshots of balances and trade wins still mark you as a target.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy", "highValue"},
			},
		},
	}, nil
}

package catalog

func loadOpsec() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "opsec",
		Title:       "Personal OpSec",
		Description: "Security that holds up when the attacker is targeting you specifically.",
		Icon:        IconEyeOff,
		Items: []SecurityItem{
			{
				ID:          "opsec-1",
				Title:       "Build a personal threat model",
				Description: "Decide who realistically targets you and what they would go for.",
				Details: "Defenses without a threat model are superstition. A holder of meaningful " +
					"size faces different adversaries than a casual user, and the checklist " +
					"priorities shift accordingly.",
				Level: LevelRecommended,
			},
			{
				ID:          "opsec-2",
				Title:       "Minimize your public financial footprint",
				Description: "Your name should not be searchable next to the word crypto.",
				Level:       LevelRecommended,
			},
			{
				ID:           "opsec-3",
				Title:        "Remove yourself from data brokers",
				Description:  "Home addresses from people-search sites enable physical attacks.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy", "highValue"},
			},
			{
				ID:           "opsec-4",
				Title:        "Use a PO box or virtual address for deliveries",
				Description:  "Hardware-wallet shipments have leaked customer addresses before.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy", "highValue"},
			},
			{
				ID:          "opsec-5",
				Title:       "Use end-to-end encrypted messengers for sensitive talk",
				Description: "Move coordination about funds off SMS and email.",
				Links: []Link{
					{Text: "Signal", URL: "https://signal.org"},
				},
				Level: LevelRecommended,
			},
			{
				ID:          "opsec-6",
				Title:       "Prepare for physical coercion scenarios",
				Description: "A decoy wallet with a plausible balance is cheaper than a standoff.",
				Details: "Wrench attacks target known holders. Time-locks, multisig and funds that " +
					"cannot be moved under duress change the attacker's calculus.",
				Level:        LevelAdvanced,
				ThreatLevels: []string{"highValue"},
			},
			{
				ID:          "opsec-7",
				Title:       "Compartmentalize identities and wallets",
				Description: "Separate addresses and personas per activity; do not link them on-chain.",
				Level:       LevelAdvanced,
				ThreatLevels: []string{
					"privacy",
				},
			},
			{
				ID:          "opsec-8",
				Title:       "Travel with minimal crypto access",
				Description: "Cross borders with nothing sensitive on the devices you carry.",
				Level:       LevelOptional,
			},
			{
				ID:          "opsec-9",
				Title:       "Do not wear or display crypto branding",
				Description: "Conference merch is a targeting beacon in the wrong neighborhood.",
				Level:       LevelOptional,
			},
			{
				ID:          "opsec-10",
				Title:       "Shred documents with account details",
				Description: "Paper statements and failed seed-phrase drafts go in a shredder.",
				Level:       LevelOptional,
			},
			{
				ID:          "opsec-11",
				Title:       "Review physical home security",
				Description: "Safes, cameras and alarm coverage for wherever backups live.",
				Level:       LevelRecommended,
			},
			{
				ID:          "opsec-12",
				Title:       "Keep an incident response plan",
				Description: "Write down, in advance, what you do in the first hour after a compromise.",
				Details: "Which keys rotate first, which accounts freeze, who you call. Deciding " +
					"during the incident wastes the minutes that matter.",
				Level: LevelRecommended,
			},
			{
				ID:          "opsec-13",
				Title:       "Check what your smart home and wearables leak",
				Description: "Location history and routine patterns support physical targeting.",
				Level:       LevelOptional,
			},
			{
				ID:           "opsec-14",
				Title:        "Rehearse your story for social engineering calls",
				Description:  "Decide now that you never confirm holdings or security setups by phone.",
				Level:        LevelOptional,
				ThreatLevels: []string{"highValue", "institution"},
			},
		},
	}, nil
}

package catalog

func loadOS() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "os",
		Title:       "Operating System",
		Description: "A clean OS is the floor everything else stands on.",
		Icon:        IconMonitor,
		Items: []SecurityItem{
			{
				ID:          "os-1",
				Title:       "Apply OS updates promptly",
				Description: "Enable automatic updates; attackers weaponize patches within days.",
				Level:       LevelEssential,
			},
			{
				ID:          "os-2",
				Title:       "Enable full-disk encryption",
				Description: "FileVault, BitLocker or LUKS protects keys and sessions on a lost machine.",
				Level:       LevelEssential,
			},
			{
				ID:          "os-3",
				Title:       "Run as a standard user, not administrator",
				Description: "Malware inherits your privileges; give it fewer.",
				Level:       LevelRecommended,
			},
			{
				ID:          "os-4",
				Title:       "Never install pirated or cracked software",
				Description: "Cracks are the favorite delivery vehicle for clipboard hijackers and stealers.",
				Level:       LevelEssential,
			},
			{
				ID:          "os-5",
				Title:       "Keep the built-in firewall enabled",
				Description: "Block inbound connections by default on every network.",
				Level:       LevelRecommended,
			},
			{
				ID:          "os-6",
				Title:       "Use reputable anti-malware protection",
				Description: "Built-in defenders are fine; disabled defenders are not.",
				Level:       LevelRecommended,
			},
			{
				ID:          "os-7",
				Title:       "Verify checksums and signatures of downloaded software",
				Description: "Especially wallets: compare the published hash before running installers.",
				Level:       LevelAdvanced,
				ThreatLevels: []string{
					"developer", "highValue",
				},
			},
			{
				ID:          "os-8",
				Title:       "Set a short auto-lock timeout",
				Description: "An unlocked machine is an open wallet.",
				Level:       LevelRecommended,
			},
			{
				ID:          "os-9",
				Title:       "Keep regular, tested backups",
				Description: "Ransomware negotiation is optional when restores work.",
				Details: "Back up documents and configs, never seed phrases. Test a restore at " +
					"least once a year.",
				Level: LevelRecommended,
			},
			{
				ID:           "os-10",
				Title:        "Use a separate OS user or VM for crypto activity",
				Description:  "Isolate signing and portfolio work from gaming and downloads.",
				Level:        LevelAdvanced,
				ThreatLevels: []string{"highValue", "developer", "institution"},
			},
			{
				ID:          "os-11",
				Title:       "Disable office-document macros",
				Description: "Macro-laden attachments remain a top initial-access technique.",
				Level:       LevelOptional,
			},
			{
				ID:          "os-12",
				Title:       "Uninstall software you no longer use",
				Description: "Every installed package is attack surface with an update cadence you ignore.",
				Level:       LevelOptional,
			},
			{
				ID:           "os-13",
				Title:        "Consider a security-focused OS for key operations",
				Description:  "Qubes or a live Linux image for signing reduces persistent-malware risk.",
				Level:        LevelAdvanced,
				ThreatLevels: []string{"highValue", "privacy"},
				Links: []Link{
					{Text: "Qubes OS", URL: "https://www.qubes-os.org"},
				},
			},
			{
				ID:          "os-14",
				Title:       "Review startup items and background services",
				Description: "Persistence mechanisms live in launch agents and scheduled tasks.",
				Level:       LevelOptional,
			},
		},
	}, nil
}

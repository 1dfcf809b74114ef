package catalog

func loadMobile() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "mobile",
		Title:       "Mobile Security",
		Description: "Your phone is a wallet, a 2FA device and a recovery path in one.",
		Icon:        IconPhone,
		Items: []SecurityItem{
			{
				ID:          "mobile-1",
				Title:       "Keep the OS and apps updated",
				Description: "Mobile exploit chains target known, already-patched bugs first.",
				Level:       LevelEssential,
			},
			{
				ID:          "mobile-2",
				Title:       "Install apps only from official stores",
				Description: "Sideloaded wallet apps are a common theft vector.",
				Level:       LevelEssential,
			},
			{
				ID:          "mobile-3",
				Title:       "Use a strong screen lock with short auto-lock",
				Description: "Biometrics plus a 6+ digit PIN, never pattern unlock.",
				Level:       LevelEssential,
			},
			{
				ID:          "mobile-4",
				Title:       "Protect against SIM swapping",
				Description: "Carrier PIN, port freeze, and no SMS-based recovery anywhere.",
				Details: "A ported number can reset exchange and email accounts within minutes. " +
					"This is the single most exploited mobile weakness in crypto.",
				Level: LevelEssential,
			},
			{
				ID:          "mobile-5",
				Title:       "Review app permissions quarterly",
				Description: "Remove camera, SMS and accessibility access from apps that do not need it.",
				Details: "Accessibility permissions in particular let malware read screens and " +
					"automate taps, including inside wallet apps.",
				Level: LevelRecommended,
			},
			{
				ID:          "mobile-6",
				Title:       "Do not use rooted or jailbroken devices for crypto",
				Description: "Root access breaks the app sandbox your wallet depends on.",
				Level:       LevelRecommended,
			},
			{
				ID:          "mobile-7",
				Title:       "Hide notification previews on the lock screen",
				Description: "2FA codes and balance alerts should not be readable off a table.",
				Level:       LevelRecommended,
			},
			{
				ID:          "mobile-8",
				Title:       "Enable remote locate and wipe",
				Description: "A lost phone should be a nuisance, not a breach.",
				Level:       LevelRecommended,
			},
			{
				ID:          "mobile-9",
				Title:       "Verify device encryption is on",
				Description: "Modern phones encrypt by default, but only with a passcode set.",
				Level:       LevelRecommended,
			},
			{
				ID:           "mobile-10",
				Title:        "Use a separate device for high-value operations",
				Description:  "A clean phone or tablet that only runs wallet and authenticator apps.",
				Level:        LevelAdvanced,
				ThreatLevels: []string{"highValue", "institution"},
			},
			{
				ID:          "mobile-11",
				Title:       "Avoid public USB charging ports",
				Description: "Use your own charger or a data-blocking adapter when traveling.",
				Level:       LevelOptional,
			},
			{
				ID:           "mobile-12",
				Title:        "Restart the phone regularly",
				Description:  "Many mobile implants do not survive a reboot.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy", "highValue"},
			},
			{
				ID:          "mobile-13",
				Title:       "Review app permissions quarterly",
				Description: "Revoke camera, contacts and location from apps that have no business asking.",
				Level:       LevelRecommended,
			},
			{
				ID:          "mobile-14",
				Title:       "Disable lock-screen notification previews",
				Description: "2FA codes readable from a locked screen defeat the second factor.",
				Level:       LevelOptional,
			},
		},
	}, nil
}

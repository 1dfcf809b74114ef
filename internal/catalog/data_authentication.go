package catalog

func loadAuthentication() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "authentication",
		Title:       "Authentication",
		Description: "Lock down every account that touches your crypto.",
		Icon:        IconKey,
		LongDescription: "Exchange and email accounts are taken over through weak or reused " +
			"credentials far more often than through exotic exploits.",
		Items: []SecurityItem{
			{
				ID:          "auth-1",
				Title:       "Use a password manager",
				Description: "Generate and store a unique random password for every account.",
				Details: "Reused passwords turn any site breach into an exchange takeover. A manager " +
					"makes uniqueness free.",
				Level: LevelEssential,
			},
			{
				ID:          "auth-2",
				Title:       "Enable 2FA on every exchange and email account",
				Description: "A second factor stops credential-stuffing attacks cold.",
				Level:       LevelEssential,
			},
			{
				ID:          "auth-3",
				Title:       "Prefer hardware security keys over app-based 2FA",
				Description: "FIDO2 keys are phishing-resistant; codes typed into a fake site are not.",
				Details: "A YubiKey or similar binds authentication to the real origin, so even a " +
					"pixel-perfect phishing page gets nothing usable.",
				Level: LevelRecommended,
				Links: []Link{
					{Text: "FIDO Alliance", URL: "https://fidoalliance.org/fido2/"},
				},
			},
			{
				ID:          "auth-4",
				Title:       "Remove SMS as a 2FA or recovery method",
				Description: "SIM-swap attacks make phone numbers the weakest factor.",
				Details: "Attackers socially engineer carriers to port your number, then reset every " +
					"account that trusts it. Strip the number from recovery paths entirely.",
				Level: LevelEssential,
			},
			{
				ID:          "auth-5",
				Title:       "Store 2FA backup codes offline",
				Description: "Print or write backup codes and keep them with other offline secrets.",
				Level:       LevelRecommended,
			},
			{
				ID:          "auth-6",
				Title:       "Use a strong, unique master password",
				Description: "The password-manager master password is the one you must actually memorize.",
				Details:     "A long passphrase of random words beats any clever substitution scheme.",
				Level:       LevelEssential,
			},
			{
				ID:          "auth-7",
				Title:       "Adopt passkeys where supported",
				Description: "Passkeys remove passwords from the phishing equation entirely.",
				Level:       LevelOptional,
			},
			{
				ID:          "auth-8",
				Title:       "Set a PIN or port-freeze with your mobile carrier",
				Description: "Make number porting require in-person verification.",
				Level:       LevelRecommended,
			},
			{
				ID:          "auth-9",
				Title:       "Review active sessions and authorized devices",
				Description: "Periodically kick unknown sessions from exchanges and email.",
				Level:       LevelRecommended,
			},
			{
				ID:          "auth-10",
				Title:       "Use separate credentials for high-value accounts",
				Description: "Your main exchange login should share nothing with everyday accounts.",
				Level:       LevelRecommended,
			},
			{
				ID:           "auth-11",
				Title:        "Keep a dedicated 2FA device",
				Description:  "Run authenticator apps on a device that never browses or sideloads.",
				Level:        LevelAdvanced,
				ThreatLevels: []string{"highValue", "institution"},
			},
			{
				ID:          "auth-12",
				Title:       "Enable withdrawal allow-lists on exchanges",
				Description: "Restrict withdrawals to pre-approved addresses with a time-locked change window.",
				Level:       LevelRecommended,
			},
			{
				ID:          "auth-13",
				Title:       "Set an anti-phishing code on exchange emails",
				Description: "Legitimate exchange mail will carry your chosen code; phishing will not.",
				Level:       LevelOptional,
			},
			{
				ID:          "auth-14",
				Title:       "Audit account recovery paths end to end",
				Description: "Walk the full reset flow for each critical account and close weak links.",
				Details: "Recovery is authentication. If your email resets via a phone number, the " +
					"number is the real password.",
				Level:        LevelAdvanced,
				ThreatLevels: []string{"highValue"},
			},
		},
	}, nil
}

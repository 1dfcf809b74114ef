package catalog

func loadEmail() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "email",
		Title:       "Email Security",
		Description: "Email is the master key to almost every account recovery flow.",
		Icon:        IconMail,
		Items: []SecurityItem{
			{
				ID:          "email-1",
				Title:       "Use a dedicated email address for exchanges",
				Description: "An address that exists nowhere else cannot be found in breach dumps.",
				Details: "Credential-stuffing lists are built from leaked addresses. An exchange-only " +
					"mailbox never appears in them.",
				Level: LevelRecommended,
			},
			{
				ID:          "email-2",
				Title:       "Secure the email account like a bank account",
				Description: "Strong unique password plus hardware-key 2FA on the mailbox itself.",
				Level:       LevelEssential,
			},
			{
				ID:          "email-3",
				Title:       "Never click links in crypto-related emails",
				Description: "Navigate to the site from your bookmarks instead.",
				Level:       LevelEssential,
			},
			{
				ID:          "email-4",
				Title:       "Check the real sender address, not the display name",
				Description: "Display names are free text; the domain after @ is what matters.",
				Level:       LevelEssential,
			},
			{
				ID:           "email-5",
				Title:        "Use email aliases per service",
				Description:  "Aliases reveal which service leaked and let you burn addresses cheaply.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy"},
				Links: []Link{
					{Text: "SimpleLogin", URL: "https://simplelogin.io"},
				},
			},
			{
				ID:          "email-6",
				Title:       "Monitor your addresses for breaches",
				Description: "Get notified when your email shows up in a new dump.",
				Links: []Link{
					{Text: "Have I Been Pwned", URL: "https://haveibeenpwned.com"},
				},
				Level: LevelRecommended,
			},
			{
				ID:          "email-7",
				Title:       "Separate recovery email from daily email",
				Description: "The mailbox that can reset your accounts should be unknown and unused elsewhere.",
				Level:       LevelRecommended,
			},
			{
				ID:           "email-8",
				Title:        "Consider an encrypted email provider",
				Description:  "Providers with zero-access encryption limit what a breach can expose.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy"},
			},
			{
				ID:          "email-9",
				Title:       "Disable automatic remote image loading",
				Description: "Tracking pixels confirm your address is live and leak your IP.",
				Level:       LevelOptional,
			},
			{
				ID:          "email-10",
				Title:       "Treat urgency as a phishing signal",
				Description: "\"Your account will be suspended in 24 hours\" is the oldest hook there is.",
				Details: "Real exchanges do not threaten. When a mail demands immediate action, slow " +
					"down and verify through the app or site directly.",
				Level: LevelEssential,
			},
			{
				ID:          "email-11",
				Title:       "Report and delete phishing instead of engaging",
				Description: "Replying or clicking unsubscribe confirms a live target.",
				Level:       LevelOptional,
			},
			{
				ID:          "email-12",
				Title:       "Review mailbox forwarding and filter rules",
				Description: "A hidden forward-all rule survives a password change and keeps leaking.",
				Details: "After any suspected compromise, check forwarding addresses, filters and " +
					"delegated access. Attackers plant rules that quietly copy recovery mails out.",
				Level: LevelRecommended,
			},
			{
				ID:          "email-13",
				Title:       "Keep an offline copy of critical account addresses",
				Description: "If the mailbox is lost, you still need to know which accounts point at it.",
				Level:       LevelOptional,
			},
		},
	}, nil
}

package catalog

func loadBrowsing() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "browsing",
		Title:       "Safe Browsing",
		Description: "Keep the browser between you and attackers honest.",
		Icon:        IconGlobe,
		Items: []SecurityItem{
			{
				ID:          "browsing-1",
				Title:       "Bookmark official sites and use only the bookmarks",
				Description: "Never reach an exchange or dapp through search results or chat links.",
				Details: "Sponsored search results routinely impersonate wallets and exchanges. A " +
					"bookmark set up once from a verified URL removes the whole class of risk.",
				Level: LevelEssential,
			},
			{
				ID:          "browsing-2",
				Title:       "Use a dedicated browser profile for crypto",
				Description: "Separate crypto activity from everyday browsing and its extensions.",
				Details: "A clean profile with only the wallet extension installed keeps random " +
					"extensions from reading or rewriting dapp pages.",
				Level: LevelRecommended,
			},
			{
				ID:          "browsing-3",
				Title:       "Install a reputable content blocker",
				Description: "Block malvertising before it renders.",
				Links: []Link{
					{Text: "uBlock Origin", URL: "https://ublockorigin.com"},
				},
				Level: LevelRecommended,
			},
			{
				ID:          "browsing-4",
				Title:       "Audit browser extensions ruthlessly",
				Description: "Every extension can read every page, including wallet pop-ups.",
				Details: "Remove what you do not use. Extensions get sold and turn malicious in " +
					"silent updates.",
				Level: LevelEssential,
			},
			{
				ID:          "browsing-5",
				Title:       "Enable HTTPS-only mode",
				Description: "Refuse plaintext connections that can be rewritten in transit.",
				Level:       LevelRecommended,
			},
			{
				ID:          "browsing-6",
				Title:       "Never ignore certificate warnings",
				Description: "A TLS error on a financial site means stop, not proceed.",
				Level:       LevelEssential,
			},
			{
				ID:          "browsing-7",
				Title:       "Keep the browser updated",
				Description: "Browser exploits are patched weekly; stale versions are open doors.",
				Level:       LevelEssential,
			},
			{
				ID:           "browsing-8",
				Title:        "Use a VPN or trusted network for sensitive operations",
				Description:  "Avoid transacting over open Wi-Fi you do not control.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy"},
			},
			{
				ID:          "browsing-9",
				Title:       "Treat airdrop and claim sites as hostile by default",
				Description: "Isolate claim flows in a throwaway wallet and verify announcements twice.",
				Level:       LevelRecommended,
			},
			{
				ID:          "browsing-10",
				Title:       "Type exchange URLs or use bookmarks, never chat links",
				Description: "Links in Discord, Telegram and email are the top phishing vector.",
				Level:       LevelEssential,
			},
			{
				ID:           "browsing-11",
				Title:        "Use encrypted DNS",
				Description:  "DoH/DoT stops local networks from silently redirecting lookups.",
				Level:        LevelOptional,
				ThreatLevels: []string{"privacy"},
			},
			{
				ID:          "browsing-12",
				Title:       "Read the wallet prompt before every signature",
				Description: "Check the domain, the method and the assets a signature exposes.",
				Details: "Blind-signing a setApprovalForAll or permit message is equivalent to " +
					"handing over the keys for that asset.",
				Level: LevelEssential,
			},
			{
				ID:          "browsing-13",
				Title:       "Disable or sandbox in-app browsers",
				Description: "Open links in your hardened browser, not inside social apps.",
				Level:       LevelOptional,
			},
			{
				ID:          "browsing-14",
				Title:       "Audit installed extensions quarterly",
				Description: "Extensions get sold and updated into spyware long after you installed them.",
				Level:       LevelRecommended,
			},
		},
	}, nil
}

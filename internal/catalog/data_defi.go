package catalog

func loadDefi() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "defi",
		Title:       "DeFi & Smart Contracts",
		Description: "On-chain, every signature is a legal document you wrote yourself.",
		Icon:        IconCoins,
		Items: []SecurityItem{
			{
				ID:          "defi-1",
				Title:       "Verify contract addresses from official sources",
				Description: "Interact only with addresses published by the project's verified channels.",
				Level:       LevelEssential,
			},
			{
				ID:          "defi-2",
				Title:       "Never grant unlimited token approvals casually",
				Description: "Approve exact amounts where the UI allows it.",
				Details: "An unlimited approval outlives the transaction. If the contract is later " +
					"exploited, your whole balance of that token is exposed.",
				Level: LevelEssential,
			},
			{
				ID:          "defi-3",
				Title:       "Revoke stale approvals regularly",
				Description: "Walk your approval list monthly and cut everything you no longer use.",
				Level:       LevelRecommended,
			},
			{
				ID:          "defi-4",
				Title:       "Use a separate wallet for experimental protocols",
				Description: "Degen plays get a wallet whose total loss you have pre-accepted.",
				Level:       LevelRecommended,
			},
			{
				ID:          "defi-5",
				Title:       "Simulate transactions before signing",
				Description: "Preview what a transaction actually moves before you approve it.",
				Level:       LevelRecommended,
			},
			{
				ID:          "defi-6",
				Title:       "Check audit status and history before depositing",
				Description: "Unaudited forks of audited code are where deposits go to die.",
				Details: "An audit is not a guarantee, but no audit plus anonymous team plus " +
					"unsustainable yield is a pattern with one ending.",
				Level: LevelRecommended,
			},
			{
				ID:          "defi-7",
				Title:       "Use a hardware wallet for DeFi positions",
				Description: "Extension-only wallets expose positions to every browser compromise.",
				Level:       LevelRecommended,
			},
			{
				ID:          "defi-8",
				Title:       "Beware of front-end compromises",
				Description: "The contract can be safe while the website serves a draining transaction.",
				Details: "DNS hijacks and poisoned frontends have hit major protocols. Address and " +
					"calldata verification on the signing device is the backstop.",
				Level: LevelAdvanced,
				ThreatLevels: []string{
					"developer", "highValue",
				},
			},
			{
				ID:          "defi-9",
				Title:       "Understand permit and signature-based approvals",
				Description: "Off-chain signatures can move funds without an on-chain approval step.",
				Level:       LevelAdvanced,
				ThreatLevels: []string{
					"developer",
				},
			},
			{
				ID:          "defi-10",
				Title:       "Recognize rug-pull mechanics",
				Description: "Mint authority, upgradable proxies and locked-liquidity claims deserve a read.",
				Level:       LevelOptional,
			},
			{
				ID:          "defi-11",
				Title:       "Keep long-term holdings out of farming wallets",
				Description: "Yield strategies and cold storage should never share keys.",
				Level:       LevelEssential,
			},
			{
				ID:          "defi-12",
				Title:       "Bookmark dapp frontends; never use search",
				Description: "Typosquatted dapp domains are indistinguishable at a glance.",
				Level:       LevelRecommended,
			},
			{
				ID:          "defi-13",
				Title:       "Double-check bridge and L2 flows",
				Description: "Bridges concentrate risk; prefer canonical bridges and small test amounts.",
				Level:       LevelOptional,
			},
			{
				ID:           "defi-14",
				Title:        "Track positions from a watch-only setup",
				Description:  "Monitoring balances should never require a signing key to be present.",
				Level:        LevelOptional,
				ThreatLevels: []string{"highValue", "institution"},
			},
		},
	}, nil
}

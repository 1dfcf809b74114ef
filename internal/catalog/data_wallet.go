package catalog

func loadWallet() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "wallet",
		Title:       "Wallet Security",
		Description: "Protect the keys that control your funds.",
		Icon:        IconWallet,
		LongDescription: "Self-custody means the seed phrase is the money. Almost every " +
			"catastrophic loss traces back to a key that was generated, stored or used " +
			"on a compromised surface.",
		Items: []SecurityItem{
			{
				ID:          "wallet-1",
				Title:       "Use a hardware wallet for meaningful balances",
				Description: "Keep private keys on a dedicated signing device, never in a browser extension alone.",
				Details: "A hardware wallet keeps keys in a secure element and forces physical " +
					"confirmation of every signature, so a compromised computer cannot silently drain funds.",
				Level: LevelEssential,
				Links: []Link{
					{Text: "How hardware wallets work", URL: "https://www.ledger.com/academy/basic-basics/about-hardware-wallets"},
				},
			},
			{
				ID:          "wallet-2",
				Title:       "Back up your seed phrase offline",
				Description: "Write the recovery phrase on paper or steel and store it somewhere safe.",
				Details: "Never photograph, type, or cloud-sync a seed phrase. A stamped metal backup " +
					"survives fire and water; paper in a safe is an acceptable minimum.",
				Level: LevelEssential,
			},
			{
				ID:          "wallet-3",
				Title:       "Never enter your seed phrase on any website",
				Description: "No legitimate service ever asks for your recovery phrase.",
				Details: "Phishing sites imitate wallet vendors and support portals. The phrase belongs " +
					"in exactly two places: the signing device and the offline backup.",
				Level: LevelEssential,
			},
			{
				ID:          "wallet-4",
				Title:       "Verify receiving addresses on the device screen",
				Description: "Confirm the full address on the hardware wallet display before sending.",
				Details: "Clipboard-replacement malware swaps addresses as you paste them. The device " +
					"screen is the only display an attacker on the host cannot alter.",
				Level: LevelEssential,
			},
			{
				ID:          "wallet-5",
				Title:       "Send a test transaction before large transfers",
				Description: "Move a small amount first and confirm arrival before sending the rest.",
				Level:       LevelRecommended,
			},
			{
				ID:          "wallet-6",
				Title:       "Split funds between hot and cold wallets",
				Description: "Keep spending money in a hot wallet and savings in cold storage.",
				Details: "A hot wallet holding only what you can afford to lose bounds the damage of " +
					"any single signing mistake or approval exploit.",
				Level: LevelRecommended,
			},
			{
				ID:          "wallet-7",
				Title:       "Buy hardware wallets directly from the vendor",
				Description: "Avoid marketplaces and second-hand devices that may be tampered with.",
				Level:       LevelRecommended,
			},
			{
				ID:          "wallet-8",
				Title:       "Verify firmware and vendor signatures before updating",
				Description: "Only install wallet firmware through the official app and check release notes.",
				Level:       LevelRecommended,
			},
			{
				ID:          "wallet-9",
				Title:       "Do a dry-run recovery of your backup",
				Description: "Prove the seed backup actually restores the wallet before you need it.",
				Details: "Restore onto a spare or wiped device and confirm the derived addresses match. " +
					"A backup that has never been tested is a hope, not a backup.",
				Level: LevelRecommended,
			},
			{
				ID:          "wallet-10",
				Title:       "Check first and last characters of pasted addresses",
				Description: "Address-poisoning attacks rely on look-alike addresses in your history.",
				Details: "Attackers dust your wallet from vanity addresses matching the start and end of " +
					"addresses you use, hoping you copy theirs from the transaction list.",
				Level: LevelRecommended,
			},
			{
				ID:           "wallet-11",
				Title:        "Use a BIP39 passphrase for high-value storage",
				Description:  "Add a memorized passphrase on top of the seed so a found backup alone is not enough.",
				Details:      "The passphrase derives a hidden wallet. Losing it loses the funds, so weigh the operational risk before adopting it.",
				Level:        LevelAdvanced,
				ThreatLevels: []string{"highValue", "privacy"},
			},
			{
				ID:           "wallet-12",
				Title:        "Use multisig for treasury-sized holdings",
				Description:  "Require multiple independent keys to move significant funds.",
				Details:      "A 2-of-3 across separate devices and locations removes every single point of failure, including yourself on a bad day.",
				Level:        LevelAdvanced,
				ThreatLevels: []string{"highValue", "institution"},
				Links: []Link{
					{Text: "Multisig guide", URL: "https://bitcoiner.guide/multisig/"},
				},
			},
			{
				ID:          "wallet-13",
				Title:       "Review and revoke token approvals periodically",
				Description: "Old unlimited approvals let compromised contracts spend your tokens.",
				Links: []Link{
					{Text: "Revoke.cash", URL: "https://revoke.cash"},
				},
				Level: LevelRecommended,
			},
			{
				ID:          "wallet-14",
				Title:       "Keep a dedicated, clean machine or profile for signing",
				Description: "Sign large transactions from an environment that does nothing else.",
				Level:       LevelAdvanced,
				ThreatLevels: []string{
					"highValue", "institution",
				},
			},
			{
				ID:          "wallet-15",
				Title:       "Document an inheritance and emergency access plan",
				Description: "Make sure funds are recoverable by the right people if you are not available.",
				Details: "Without a plan, self-custodied funds die with their holder. With a careless one, " +
					"they leak early. Use sealed instructions or a lawyer, never a shared note.",
				Level: LevelOptional,
			},
			{
				ID:          "wallet-16",
				Title:       "Keep wallet software updated",
				Description: "Track releases of the wallet apps and companion software you rely on.",
				Level:       LevelEssential,
			},
		},
	}, nil
}

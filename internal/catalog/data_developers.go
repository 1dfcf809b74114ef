package catalog

func loadDevelopers() (SecurityCategory, error) {
	return SecurityCategory{
		ID:          "developers",
		Title:       "Developer Security",
		Description: "Developers hold keys, push code and make unusually valuable targets.",
		Icon:        IconCode,
		Items: []SecurityItem{
			{
				ID:          "dev-1",
				Title:       "Never commit secrets or private keys",
				Description: "Keys pushed to a public repo are drained in seconds, private repos in weeks.",
				Details: "Bots watch the GitHub firehose for key material. Use environment variables " +
					"and secret managers, plus a scanner in pre-commit and CI.",
				Level: LevelEssential,
			},
			{
				ID:          "dev-2",
				Title:       "Enable 2FA and signing on your code hosting account",
				Description: "Your GitHub account is a supply-chain attack on everyone who trusts you.",
				Level:       LevelEssential,
			},
			{
				ID:          "dev-3",
				Title:       "Audit dependencies before adding them",
				Description: "Check maintenance, provenance and install hooks, not just the README.",
				Level:       LevelRecommended,
			},
			{
				ID:          "dev-4",
				Title:       "Pin dependency versions and review lockfile changes",
				Description: "Floating versions turn someone else's compromise into yours overnight.",
				Level:       LevelRecommended,
			},
			{
				ID:          "dev-5",
				Title:       "Separate development machines from wallet machines",
				Description: "npm install should never run on the box that signs transactions.",
				Level:       LevelRecommended,
			},
			{
				ID:          "dev-6",
				Title:       "Protect CI/CD secrets and deploy keys",
				Description: "Scope tokens tightly; CI logs and forks leak more than code does.",
				Level:       LevelRecommended,
			},
			{
				ID:          "dev-7",
				Title:       "Use testnets and throwaway keys for development",
				Description: "Development keys will leak eventually; make sure they hold nothing.",
				Level:       LevelEssential,
			},
			{
				ID:          "dev-8",
				Title:       "Review pull requests for malicious changes, not just bugs",
				Description: "Build scripts, postinstall hooks and workflow files deserve extra eyes.",
				Level:       LevelAdvanced,
				ThreatLevels: []string{
					"developer", "institution",
				},
			},
			{
				ID:          "dev-9",
				Title:       "Sign your commits and releases",
				Description: "Signed artifacts let downstream users detect tampering.",
				Level:       LevelOptional,
			},
			{
				ID:          "dev-10",
				Title:       "Run local secret scanning",
				Description: "Catch the key before the push, not after the drain.",
				Links: []Link{
					{Text: "gitleaks", URL: "https://github.com/gitleaks/gitleaks"},
				},
				Level: LevelRecommended,
			},
			{
				ID:          "dev-11",
				Title:       "Harden your shell and package-manager configuration",
				Description: "Disable lifecycle scripts where possible; prefer --ignore-scripts.",
				Level:       LevelAdvanced,
				ThreatLevels: []string{
					"developer",
				},
			},
			{
				ID:          "dev-12",
				Title:       "Threat-model your own projects",
				Description: "Know which secrets, signers and pipelines an attacker would go for first.",
				Level:       LevelOptional,
			},
		},
	}, nil
}

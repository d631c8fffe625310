package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "talenttrack",
		},
		"ai": map[string]any{
			"apiKey": "",
		},
		"leaderboard": map[string]any{
			"limit": 50,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "AI_APIKEY", want: "ai.apiKey"},
		{envKey: "LEADERBOARD_LIMIT", want: "leaderboard.limit"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Leaderboard.Limit != defaultLeaderboardLimit {
		t.Fatalf("leaderboard limit = %d, want %d", cfg.Leaderboard.Limit, defaultLeaderboardLimit)
	}
	if cfg.AI.Model != defaultAIModel {
		t.Fatalf("ai model = %q, want %q", cfg.AI.Model, defaultAIModel)
	}
	if cfg.AI.Timeout != defaultAITimeout {
		t.Fatalf("ai timeout = %s, want %s", cfg.AI.Timeout, defaultAITimeout)
	}
	if cfg.AI.Enabled {
		t.Fatal("ai should stay disabled by default")
	}
}

package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{
		ManageUsers: &ClientConfig{BaseURL: "http://manage-users"},
		Redis:       &RedisConfig{URL: "redis://localhost:6379/0"},
	}

	applyDefaults(cfg)

	if cfg.PubSub == nil || cfg.PubSub.Provider != "none" {
		t.Fatalf("expected pubsub provider none, got %+v", cfg.PubSub)
	}
	if cfg.Outbox.RelayInterval != defaultRelayInterval || cfg.Outbox.MaxAttempts != defaultMaxAttempts {
		t.Fatalf("outbox defaults not applied: %+v", cfg.Outbox)
	}
	if cfg.ManageUsers.Timeout != defaultClientTimeout {
		t.Fatalf("client timeout = %v, want %v", cfg.ManageUsers.Timeout, defaultClientTimeout)
	}
	if cfg.PrisonerSearch != nil {
		t.Fatalf("prisoner search should stay unset")
	}
	if cfg.Redis.TTL != defaultRedisTTL {
		t.Fatalf("redis ttl = %v, want %v", cfg.Redis.TTL, defaultRedisTTL)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		PubSub: &PubSubConfig{Provider: "google"},
		Outbox: &OutboxConfig{RelayBatchSize: 5, MaxAttempts: 3},
	}

	applyDefaults(cfg)

	if cfg.PubSub.Provider != "google" {
		t.Fatalf("provider overwritten: %q", cfg.PubSub.Provider)
	}
	if cfg.Outbox.RelayBatchSize != 5 || cfg.Outbox.MaxAttempts != 3 {
		t.Fatalf("explicit outbox values overwritten: %+v", cfg.Outbox)
	}
}

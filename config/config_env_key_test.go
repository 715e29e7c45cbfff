package config

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"reminder": map[string]any{
			"sendRatePerSecond": 0,
		},
		"scheduler": map[string]any{
			"dailyAt":  "10:00",
			"timeZone": "UTC",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "REMINDER_SENDRATEPERSECOND", want: "reminder.sendRatePerSecond"},
		{envKey: "SCHEDULER_TIMEZONE", want: "scheduler.timeZone"},
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
	cfg := &Config{Firebase: &FirebaseConfig{ProjectID: "linkup-dev"}}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Reminder)
	require.NotNil(t, cfg.Scheduler)
	assert.Equal(t, 24*time.Hour, cfg.Reminder.Cooldown)
	assert.Equal(t, 1, cfg.Reminder.Concurrency)
	assert.Equal(t, 500, cfg.Reminder.BatchSize)
	assert.Equal(t, "10:00", cfg.Scheduler.DailyAt)
	assert.Equal(t, "UTC", cfg.Scheduler.TimeZone)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Firebase: &FirebaseConfig{},
		Reminder: &ReminderConfig{Cooldown: time.Hour, Concurrency: 4, BatchSize: 100},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Reminder.Cooldown)
	assert.Equal(t, 4, cfg.Reminder.Concurrency)
	assert.Equal(t, 100, cfg.Reminder.BatchSize)
}

func TestValidate_GoogleProviderRequiresTopic(t *testing.T) {
	cfg := &Config{
		Firebase: &FirebaseConfig{},
		PubSub:   &PubSubConfig{Provider: "google", ProjectID: "linkup-dev"},
	}
	applyDefaults(cfg)

	err := validator.New().Struct(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TopicID")
}

func TestValidate_RejectsOversizedBatch(t *testing.T) {
	cfg := &Config{
		Firebase: &FirebaseConfig{},
		Reminder: &ReminderConfig{BatchSize: 1000},
	}
	applyDefaults(cfg)

	assert.Error(t, validator.New().Struct(cfg))
}

func TestValidate_MissingFirebase(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Error(t, validator.New().Struct(cfg))
}

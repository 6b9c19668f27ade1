package config_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, 3, cfg.Quota.InternshipLimit)
	assert.Equal(t, 2, cfg.Quota.ProjectLimit)
	assert.Equal(t, 0, cfg.Quota.ApplicationsPerMonth)
	assert.Equal(t, config.QuotaStorePostgres, cfg.Quota.Store)
	assert.Equal(t, 30*time.Second, cfg.Workflow.DwellTime)
	assert.Equal(t, 50.0, cfg.Workflow.ScrollThreshold)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("QUOTA_LIMIT_INTERNSHIP", "5")
	t.Setenv("QUOTA_STORE", "redis")
	t.Setenv("WORKFLOW_DWELL_TIME", "45s")
	t.Setenv("QUOTA_TIMEZONE", "Asia/Kolkata")
	t.Setenv("QUOTA_LIMIT_PROJECT", "many")

	cfg := config.Load()

	assert.Equal(t, 5, cfg.Quota.InternshipLimit)
	assert.Equal(t, 2, cfg.Quota.ProjectLimit, "invalid values fall back to the default")
	assert.Equal(t, config.QuotaStoreRedis, cfg.Quota.Store)
	assert.Equal(t, 45*time.Second, cfg.Workflow.DwellTime)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
}

package app

import (
	"testing"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/config"
	"github.com/SyedqaderEng/financeOS-sub001/internal/db/dbtest"
	"github.com/SyedqaderEng/financeOS-sub001/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher_LogsWithoutBroker(t *testing.T) {
	publisher, err := newPublisher(&config.Config{})
	require.NoError(t, err)

	_, ok := publisher.(*events.LogPublisher)
	assert.True(t, ok)
}

func TestBuild(t *testing.T) {
	cfg := &config.Config{AppEnv: "development", JWTSecret: "secret", JWTExpiry: time.Hour}
	publisher, err := newPublisher(cfg)
	require.NoError(t, err)

	a := Build(cfg, dbtest.New(t), publisher)

	assert.NotNil(t, a.ContributionService)
	assert.NotNil(t, a.LedgerAuditor)
	mismatches, err := a.LedgerAuditor.Audit(t.Context())
	require.NoError(t, err)
	assert.Empty(t, mismatches)
	assert.NoError(t, a.Close())
}

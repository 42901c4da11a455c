package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	config := Default()
	require.NotNil(s.T(), config)

	assert.Equal(s.T(), 60*time.Second, config.Submitter.PreviewCooldown)
	assert.True(s.T(), config.Submitter.ServerCooldownExempt)
	assert.Equal(s.T(), 2*time.Minute, config.Session.ProcessingTimeout)
	assert.Equal(s.T(), uint64(5000), config.Reconciler.TxScanWindow)
	assert.True(s.T(), config.Reconciler.RecoverTransactionIds)
	assert.Equal(s.T(), "0.0.0.0:4000", config.Gateway.ListenAddress)
	assert.Equal(s.T(), "application-status", config.Redis.ChannelName)
	assert.Equal(s.T(), 10*time.Second, config.Database.QueryTimeout)
	assert.False(s.T(), config.Redis.Enabled)
}

func (s *ConfigTestSuite) TestEnvOverride() {
	s.T().Setenv("BMB_SUBMITTER_PREVIEW_COOLDOWN", "90s")
	s.T().Setenv("BMB_SUBMITTER_SERVER_COOLDOWN_EXEMPT", "false")
	s.T().Setenv("BMB_GATEWAY_LISTEN_ADDRESS", "127.0.0.1:9000")

	config, err := Load("")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 90*time.Second, config.Submitter.PreviewCooldown)
	assert.False(s.T(), config.Submitter.ServerCooldownExempt)
	assert.Equal(s.T(), "127.0.0.1:9000", config.Gateway.ListenAddress)
}

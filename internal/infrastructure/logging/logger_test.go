package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		level   zapcore.Level
	}{
		{"default", DefaultConfig(), false, zapcore.InfoLevel},
		{"development", DevelopmentConfig(), false, zapcore.DebugLevel},
		{"warn", Config{Level: "warn", OutputPaths: []string{"stdout"}}, false, zapcore.WarnLevel},
		{"bad level", Config{Level: "loud", OutputPaths: []string{"stdout"}}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestFromLevelFallsBackToInfo(t *testing.T) {
	logger := FromLevel("nonsense", false)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestFromLevelDevelopment(t *testing.T) {
	logger := FromLevel("", true)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

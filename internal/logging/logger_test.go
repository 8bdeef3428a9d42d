package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"addressbook/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := logging.ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		logger, err := logging.New(mode, "debug")
		require.NoError(t, err, mode)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), mode)
	}
}

func TestContact_OmitsPhoneAndEmail(t *testing.T) {
	fields := logging.Contact("Personal", "John", "Doe")
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	assert.ElementsMatch(t, []string{"book", "first_name", "last_name"}, keys)
}

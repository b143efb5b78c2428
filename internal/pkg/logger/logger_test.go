package logger_test

import (
	"testing"

	"autoservice/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		mode      string
		debugOpen bool
	}{
		{mode: "prod", debugOpen: false},
		{mode: " Production ", debugOpen: false},
		{mode: "dev", debugOpen: true},
		{mode: "", debugOpen: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			l, err := logger.New(tt.mode)

			require.NoError(t, err)
			assert.Equal(t, tt.debugOpen, l.Core().Enabled(zap.DebugLevel))
		})
	}
}

package util

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Level(t *testing.T) {
	original := logger
	defer func() { logger = original }()

	InitLogger("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, Logger().GetLevel())

	InitLogger("WARN", "console")
	assert.Equal(t, zerolog.WarnLevel, Logger().GetLevel())

	InitLogger("nonsense", "")
	assert.Equal(t, zerolog.InfoLevel, Logger().GetLevel())
}

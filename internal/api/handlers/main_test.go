package handlers

import (
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/userweb/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

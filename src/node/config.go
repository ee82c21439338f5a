package node

import (
	"testing"
	"time"

	"github.com/mosaicnetworks/midline/src/common"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HeartbeatTimeout time.Duration `mapstructure:"heartbeat"`
	CacheSize        int           `mapstructure:"cache-size"`
	Bootstrap        bool          `mapstructure:"bootstrap"`
	MaintenanceMode  bool          `mapstructure:"maintenance-mode"`
	Moniker          string        `mapstructure:"moniker"`
	Logger           *logrus.Logger
}

func NewConfig(heartbeat time.Duration,
	cacheSize int,
	bootstrap bool,
	maintenanceMode bool,
	moniker string,
	logger *logrus.Logger) *Config {

	return &Config{
		HeartbeatTimeout: heartbeat,
		CacheSize:        cacheSize,
		Bootstrap:        bootstrap,
		MaintenanceMode:  maintenanceMode,
		Moniker:          moniker,
		Logger:           logger,
	}
}

func DefaultConfig() *Config {
	logger := logrus.New()
	logger.Level = logrus.DebugLevel

	return &Config{
		HeartbeatTimeout: 10 * time.Millisecond,
		CacheSize:        5000,
		Logger:           logger,
	}
}

func TestConfig(t *testing.T) *Config {
	config := DefaultConfig()
	config.Logger = common.NewTestLogger(t, common.TestLogLevel)
	return config
}

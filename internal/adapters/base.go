package adapters

import (
	"go.uber.org/zap"
)

// BaseAdapter provides common functionality for platform adapters
type BaseAdapter struct {
	platformName string
	logger       *zap.Logger
}

// NewBaseAdapter creates a new BaseAdapter
func NewBaseAdapter(platformName string, logger *zap.Logger) BaseAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return BaseAdapter{
		platformName: platformName,
		logger:       logger.With(zap.String("platform", platformName)),
	}
}

// PlatformName returns the name of the platform
func (b *BaseAdapter) PlatformName() string {
	return b.platformName
}

// Logger returns the adapter logger tagged with the platform name
func (b *BaseAdapter) Logger() *zap.Logger {
	return b.logger
}

package logger

import "go.uber.org/zap"

// NewLogger returns a zap logger. Verbose mode builds the human-readable
// development config at debug level; otherwise a production JSON logger.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopmentConfig().Build()
	}
	return zap.NewProduction()
}

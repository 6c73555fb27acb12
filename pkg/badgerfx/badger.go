package badgerfx

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// SeekEnd is appended to a prefix to start a reverse iteration after every
// key sharing that prefix.
const SeekEnd = byte(0xFF)

func New(config Config, logger *zapLogger) (*badger.DB, error) {
	opts := config.Build().
		WithLogger(logger)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	return db, nil
}

// Open opens a database outside of fx, logging through the given zap logger.
func Open(config Config, logger *zap.Logger) (*badger.DB, error) {
	return New(config, newLogger(logger))
}

// Package channel implements the integration operations the helpdesk
// platform drives: pull, channelback, clickthrough resolution and account
// linking. Each operation is stateless per call; connection metadata and sync
// state are passed by value and never cached in process memory.
package channel

import (
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/aster/pkg/wordpress"
)

// Service wires the WordPress client into the channel operations.
type Service struct {
	client *wordpress.Client
	logger ectologger.Logger
}

// NewService creates a new channel service
func NewService(client *wordpress.Client, logger ectologger.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

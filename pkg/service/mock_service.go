package service

import (
	"github.com/ranorsolutions/route-common-go/pkg/log/logger"
	"github.com/ranorsolutions/route-common-go/pkg/route"
)

// NewMock creates a lightweight Service for testing: structured logger,
// empty route table, ephemeral port, no environment reads.
func NewMock() *Service {
	log, _ := logger.New("mock-service", "test", true)

	return &Service{
		Logger: log,
		Addr:   "127.0.0.1:0",
		table:  route.NewTable(),
	}
}

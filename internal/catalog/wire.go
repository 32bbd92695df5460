//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/catalog-service/pkg/config"
)

// InitializeApp wires the HTTP handler and the gRPC health server
func InitializeApp(cfg *config.Config, db *gorm.DB, reg prometheus.Registerer) (*App, func(), error) {
	wire.Build(
		RepositorySet,
		InfrastructureSet,
		QuerySet,
		CommandSet,
		DeliverySet,
	)
	return nil, nil, nil
}

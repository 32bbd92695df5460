package catalog

import (
	"database/sql"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/delivery/grpc"
	"github.com/tair/catalog-service/internal/catalog/delivery/http"
	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/events"
	"github.com/tair/catalog-service/internal/catalog/repository"
	"github.com/tair/catalog-service/internal/catalog/usecase/command"
	"github.com/tair/catalog-service/internal/catalog/usecase/query"
	"github.com/tair/catalog-service/pkg/auth"
	"github.com/tair/catalog-service/pkg/cache"
	"github.com/tair/catalog-service/pkg/config"
	"github.com/tair/catalog-service/pkg/logger"
	"github.com/tair/catalog-service/pkg/storage"
)

// App holds the assembled delivery layer
type App struct {
	HTTP *http.CatalogHandler
	GRPC *grpc.Server
}

// ProvideProductRepository provides the traced product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewTracingProductRepository(repository.NewGormProductRepository(db))
}

// ProvideProductCategoryRepository provides the traced association repository
func ProvideProductCategoryRepository(db *gorm.DB) domain.ProductCategoryRepository {
	return repository.NewTracingProductCategoryRepository(repository.NewGormProductCategoryRepository(db))
}

// ProvideBrandRepository provides the traced brand repository
func ProvideBrandRepository(db *gorm.DB) domain.BrandRepository {
	return repository.NewTracingBrandRepository(repository.NewGormBrandRepository(db))
}

// ProvideCategoryRepository provides the traced category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewTracingCategoryRepository(repository.NewGormCategoryRepository(db))
}

// ProvideUserRepository provides the traced user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewTracingUserRepository(repository.NewGormUserRepository(db))
}

// ProvideSQLDB exposes the pool behind db for health probes
func ProvideSQLDB(db *gorm.DB) (*sql.DB, error) {
	return db.DB()
}

// ProvideJWTManager provides the token manager
func ProvideJWTManager(cfg *config.Config) (*auth.JWTManager, error) {
	return auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)
}

// ProvideCache connects the listing cache; an empty REDIS_ADDR disables it
func ProvideCache(cfg *config.Config) (*cache.Cache, func(), error) {
	c, err := cache.New(cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Close() }, nil
}

// ProvideImageStore picks object storage when configured, inline data URIs otherwise
func ProvideImageStore(cfg *config.Config) (storage.ImageStore, error) {
	if !cfg.StorageEnabled() {
		logger.Logger.Info().Msg("Object storage not configured, images stay inline")
		return storage.NewInlineStore(), nil
	}

	storageConfig := storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		PublicURL: cfg.Storage.PublicURL,
		UseSSL:    cfg.Storage.UseSSL,
	}
	client, err := storage.NewMinioClient(storageConfig)
	if err != nil {
		return nil, err
	}

	logger.Logger.Info().
		Str("endpoint", cfg.Storage.Endpoint).
		Str("bucket", cfg.Storage.Bucket).
		Msg("Object storage enabled")
	return storage.NewObjectStore(client, storageConfig), nil
}

// ProvideEventPublisher connects to Kafka; no brokers means events are dropped
func ProvideEventPublisher(cfg *config.Config) (domain.EventPublisher, func(), error) {
	brokers := cfg.KafkaBrokers()
	if len(brokers) == 0 {
		logger.Logger.Info().Msg("Kafka brokers not set, catalog events disabled")
		return events.NopPublisher{}, func() {}, nil
	}

	publisher, err := events.NewPublisher(brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, nil, err
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Kafka producer")
		}
	}, nil
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideProductCategoryRepository,
	ProvideBrandRepository,
	ProvideCategoryRepository,
	ProvideUserRepository,
)

var InfrastructureSet = wire.NewSet(
	ProvideSQLDB,
	ProvideJWTManager,
	ProvideCache,
	ProvideImageStore,
	ProvideEventPublisher,
	wire.Bind(new(domain.ListingCache), new(*cache.Cache)),
	wire.Bind(new(command.TokenIssuer), new(*auth.JWTManager)),
	wire.Bind(new(http.TokenValidator), new(*auth.JWTManager)),
	wire.Bind(new(grpc.Pinger), new(*sql.DB)),
)

var QuerySet = wire.NewSet(
	query.NewListProductsHandler,
	query.NewSimpleSearchHandler,
	query.NewCheckBarcodeHandler,
	query.NewSearchProductsHandler,
	query.NewGetProductHandler,
	query.NewGetGalleryHandler,
	query.NewProductsByCategoryHandler,
	query.NewProductsByBrandHandler,
	query.NewListBrandsHandler,
	query.NewGetBrandHandler,
	query.NewListCategoriesHandler,
	query.NewGetCategoryHandler,
	query.NewImageMigrationStatusHandler,
	wire.Struct(new(http.Queries), "*"),
)

var CommandSet = wire.NewSet(
	command.NewLoginHandler,
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewProductCategoriesHandler,
	command.NewCreateBrandHandler,
	command.NewUpdateBrandHandler,
	command.NewDeactivateBrandHandler,
	command.NewCreateCategoryHandler,
	command.NewUpdateCategoryHandler,
	command.NewDeactivateCategoryHandler,
	command.NewImageHandler,
	command.NewGalleryHandler,
	command.NewMigrateProductImagesHandler,
	wire.Struct(new(http.Commands), "*"),
)

var DeliverySet = wire.NewSet(
	http.NewMetrics,
	http.NewCatalogHandler,
	grpc.NewInterceptors,
	grpc.NewServer,
	wire.Struct(new(App), "*"),
)

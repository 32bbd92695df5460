package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "repository."+name, trace.WithAttributes(attrs...))
}

// end records err on the span and closes it
func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// TracingProductRepository wraps a ProductRepository with tracing
type TracingProductRepository struct {
	next domain.ProductRepository
}

// NewTracingProductRepository creates a new repository with tracing
func NewTracingProductRepository(next domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{next: next}
}

func (r *TracingProductRepository) Create(ctx context.Context, product *domain.Product) (err error) {
	ctx, span := startSpan(ctx, "product.Create")
	defer func() { end(span, err) }()

	if err = r.next.Create(ctx, product); err == nil {
		span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	}
	return err
}

func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (_ *domain.Product, err error) {
	ctx, span := startSpan(ctx, "product.FindByID", attribute.Int("product.id", int(id)))
	defer func() { end(span, err) }()
	return r.next.FindByID(ctx, id)
}

func (r *TracingProductRepository) FindByBarcode(ctx context.Context, barcode string) (_ *domain.Product, err error) {
	ctx, span := startSpan(ctx, "product.FindByBarcode", attribute.String("product.barcode", barcode))
	defer func() { end(span, err) }()
	return r.next.FindByBarcode(ctx, barcode)
}

func (r *TracingProductRepository) FindByIDs(ctx context.Context, ids []uint, window domain.Window) (products []domain.Product, err error) {
	ctx, span := startSpan(ctx, "product.FindByIDs",
		attribute.Int("query.ids", len(ids)),
		attribute.Int("query.limit", window.Limit),
		attribute.Int("query.offset", window.Offset),
	)
	defer func() { end(span, err) }()

	products, err = r.next.FindByIDs(ctx, ids, window)
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, err
}

func (r *TracingProductRepository) ListAll(ctx context.Context) (products []domain.Product, err error) {
	ctx, span := startSpan(ctx, "product.ListAll")
	defer func() { end(span, err) }()

	products, err = r.next.ListAll(ctx)
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, err
}

func (r *TracingProductRepository) Find(ctx context.Context, pred domain.Predicate, window domain.Window) (products []domain.Product, err error) {
	ctx, span := startSpan(ctx, "product.Find",
		attribute.Int("query.limit", window.Limit),
		attribute.Int("query.offset", window.Offset),
	)
	defer func() { end(span, err) }()

	products, err = r.next.Find(ctx, pred, window)
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, err
}

func (r *TracingProductRepository) Count(ctx context.Context, pred domain.Predicate) (count int64, err error) {
	ctx, span := startSpan(ctx, "product.Count")
	defer func() { end(span, err) }()

	count, err = r.next.Count(ctx, pred)
	span.SetAttributes(attribute.Int64("result.count", count))
	return count, err
}

func (r *TracingProductRepository) Update(ctx context.Context, product *domain.Product) (err error) {
	ctx, span := startSpan(ctx, "product.Update", attribute.Int("product.id", int(product.ID)))
	defer func() { end(span, err) }()
	return r.next.Update(ctx, product)
}

func (r *TracingProductRepository) UpdateImage(ctx context.Context, id uint, ref *string) (err error) {
	ctx, span := startSpan(ctx, "product.UpdateImage",
		attribute.Int("product.id", int(id)),
		attribute.Bool("image.cleared", ref == nil),
	)
	defer func() { end(span, err) }()
	return r.next.UpdateImage(ctx, id, ref)
}

func (r *TracingProductRepository) UpdateGallery(ctx context.Context, id uint, images []string) (err error) {
	ctx, span := startSpan(ctx, "product.UpdateGallery",
		attribute.Int("product.id", int(id)),
		attribute.Int("gallery.size", len(images)),
	)
	defer func() { end(span, err) }()
	return r.next.UpdateGallery(ctx, id, images)
}

func (r *TracingProductRepository) FindInlineImageIDs(ctx context.Context, limit int) (ids []uint, err error) {
	ctx, span := startSpan(ctx, "product.FindInlineImageIDs", attribute.Int("query.limit", limit))
	defer func() { end(span, err) }()

	ids, err = r.next.FindInlineImageIDs(ctx, limit)
	span.SetAttributes(attribute.Int("result.count", len(ids)))
	return ids, err
}

func (r *TracingProductRepository) CountInlineImages(ctx context.Context) (count int64, err error) {
	ctx, span := startSpan(ctx, "product.CountInlineImages")
	defer func() { end(span, err) }()
	return r.next.CountInlineImages(ctx)
}

func (r *TracingProductRepository) ImageStats(ctx context.Context) (_ *domain.ImageStats, err error) {
	ctx, span := startSpan(ctx, "product.ImageStats")
	defer func() { end(span, err) }()
	return r.next.ImageStats(ctx)
}

// TracingProductCategoryRepository wraps a ProductCategoryRepository with tracing
type TracingProductCategoryRepository struct {
	next domain.ProductCategoryRepository
}

// NewTracingProductCategoryRepository creates a new repository with tracing
func NewTracingProductCategoryRepository(next domain.ProductCategoryRepository) *TracingProductCategoryRepository {
	return &TracingProductCategoryRepository{next: next}
}

func (r *TracingProductCategoryRepository) ProductIDsByCategory(ctx context.Context, categoryID uint) (ids []uint, err error) {
	ctx, span := startSpan(ctx, "productCategory.ProductIDsByCategory", attribute.Int("category.id", int(categoryID)))
	defer func() { end(span, err) }()

	ids, err = r.next.ProductIDsByCategory(ctx, categoryID)
	span.SetAttributes(attribute.Int("result.count", len(ids)))
	return ids, err
}

func (r *TracingProductCategoryRepository) CategoryIDsByProduct(ctx context.Context, productID uint) (_ []uint, err error) {
	ctx, span := startSpan(ctx, "productCategory.CategoryIDsByProduct", attribute.Int("product.id", int(productID)))
	defer func() { end(span, err) }()
	return r.next.CategoryIDsByProduct(ctx, productID)
}

func (r *TracingProductCategoryRepository) Add(ctx context.Context, productID uint, categoryIDs []uint) (err error) {
	ctx, span := startSpan(ctx, "productCategory.Add",
		attribute.Int("product.id", int(productID)),
		attribute.Int("category.count", len(categoryIDs)),
	)
	defer func() { end(span, err) }()
	return r.next.Add(ctx, productID, categoryIDs)
}

func (r *TracingProductCategoryRepository) Remove(ctx context.Context, productID, categoryID uint) (err error) {
	ctx, span := startSpan(ctx, "productCategory.Remove",
		attribute.Int("product.id", int(productID)),
		attribute.Int("category.id", int(categoryID)),
	)
	defer func() { end(span, err) }()
	return r.next.Remove(ctx, productID, categoryID)
}

func (r *TracingProductCategoryRepository) Replace(ctx context.Context, productID uint, categoryIDs []uint) (err error) {
	ctx, span := startSpan(ctx, "productCategory.Replace",
		attribute.Int("product.id", int(productID)),
		attribute.Int("category.count", len(categoryIDs)),
	)
	defer func() { end(span, err) }()
	return r.next.Replace(ctx, productID, categoryIDs)
}

// TracingBrandRepository wraps a BrandRepository with tracing
type TracingBrandRepository struct {
	next domain.BrandRepository
}

// NewTracingBrandRepository creates a new repository with tracing
func NewTracingBrandRepository(next domain.BrandRepository) *TracingBrandRepository {
	return &TracingBrandRepository{next: next}
}

func (r *TracingBrandRepository) Create(ctx context.Context, brand *domain.Brand) (err error) {
	ctx, span := startSpan(ctx, "brand.Create", attribute.String("brand.slug", brand.Slug))
	defer func() { end(span, err) }()
	return r.next.Create(ctx, brand)
}

func (r *TracingBrandRepository) FindByID(ctx context.Context, id uint) (_ *domain.Brand, err error) {
	ctx, span := startSpan(ctx, "brand.FindByID", attribute.Int("brand.id", int(id)))
	defer func() { end(span, err) }()
	return r.next.FindByID(ctx, id)
}

func (r *TracingBrandRepository) FindBySlug(ctx context.Context, slug string) (_ *domain.Brand, err error) {
	ctx, span := startSpan(ctx, "brand.FindBySlug", attribute.String("brand.slug", slug))
	defer func() { end(span, err) }()
	return r.next.FindBySlug(ctx, slug)
}

func (r *TracingBrandRepository) List(ctx context.Context, includeInactive bool) (brands []domain.Brand, err error) {
	ctx, span := startSpan(ctx, "brand.List", attribute.Bool("query.include_inactive", includeInactive))
	defer func() { end(span, err) }()

	brands, err = r.next.List(ctx, includeInactive)
	span.SetAttributes(attribute.Int("result.count", len(brands)))
	return brands, err
}

func (r *TracingBrandRepository) Update(ctx context.Context, brand *domain.Brand) (err error) {
	ctx, span := startSpan(ctx, "brand.Update", attribute.Int("brand.id", int(brand.ID)))
	defer func() { end(span, err) }()
	return r.next.Update(ctx, brand)
}

// TracingCategoryRepository wraps a CategoryRepository with tracing
type TracingCategoryRepository struct {
	next domain.CategoryRepository
}

// NewTracingCategoryRepository creates a new repository with tracing
func NewTracingCategoryRepository(next domain.CategoryRepository) *TracingCategoryRepository {
	return &TracingCategoryRepository{next: next}
}

func (r *TracingCategoryRepository) Create(ctx context.Context, category *domain.Category) (err error) {
	ctx, span := startSpan(ctx, "category.Create", attribute.String("category.slug", category.Slug))
	defer func() { end(span, err) }()
	return r.next.Create(ctx, category)
}

func (r *TracingCategoryRepository) FindByID(ctx context.Context, id uint) (_ *domain.Category, err error) {
	ctx, span := startSpan(ctx, "category.FindByID", attribute.Int("category.id", int(id)))
	defer func() { end(span, err) }()
	return r.next.FindByID(ctx, id)
}

func (r *TracingCategoryRepository) FindBySlug(ctx context.Context, slug string) (_ *domain.Category, err error) {
	ctx, span := startSpan(ctx, "category.FindBySlug", attribute.String("category.slug", slug))
	defer func() { end(span, err) }()
	return r.next.FindBySlug(ctx, slug)
}

func (r *TracingCategoryRepository) FindByIDs(ctx context.Context, ids []uint) (_ []domain.Category, err error) {
	ctx, span := startSpan(ctx, "category.FindByIDs", attribute.Int("query.ids", len(ids)))
	defer func() { end(span, err) }()
	return r.next.FindByIDs(ctx, ids)
}

func (r *TracingCategoryRepository) List(ctx context.Context, includeInactive bool) (categories []domain.Category, err error) {
	ctx, span := startSpan(ctx, "category.List", attribute.Bool("query.include_inactive", includeInactive))
	defer func() { end(span, err) }()

	categories, err = r.next.List(ctx, includeInactive)
	span.SetAttributes(attribute.Int("result.count", len(categories)))
	return categories, err
}

func (r *TracingCategoryRepository) Update(ctx context.Context, category *domain.Category) (err error) {
	ctx, span := startSpan(ctx, "category.Update", attribute.Int("category.id", int(category.ID)))
	defer func() { end(span, err) }()
	return r.next.Update(ctx, category)
}

// TracingUserRepository wraps a UserRepository with tracing
type TracingUserRepository struct {
	next domain.UserRepository
}

// NewTracingUserRepository creates a new repository with tracing
func NewTracingUserRepository(next domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{next: next}
}

func (r *TracingUserRepository) Create(ctx context.Context, user *domain.User) (err error) {
	ctx, span := startSpan(ctx, "user.Create")
	defer func() { end(span, err) }()
	return r.next.Create(ctx, user)
}

func (r *TracingUserRepository) FindByEmail(ctx context.Context, email string) (_ *domain.User, err error) {
	ctx, span := startSpan(ctx, "user.FindByEmail")
	defer func() { end(span, err) }()
	return r.next.FindByEmail(ctx, email)
}

func (r *TracingUserRepository) UpdatePassword(ctx context.Context, id uint, password string) (err error) {
	ctx, span := startSpan(ctx, "user.UpdatePassword", attribute.Int("user.id", int(id)))
	defer func() { end(span, err) }()
	return r.next.UpdatePassword(ctx, id, password)
}

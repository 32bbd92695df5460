package main

// @title Catalog Service API
// @version 1.0
// @description Inventory catalog API: products, brands, categories, images and inline image migration
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Administrator login

// @tag.name Products
// @tag.description Product search and maintenance

// @tag.name Brands
// @tag.description Brand maintenance

// @tag.name Categories
// @tag.description Category tree maintenance

// @tag.name Images
// @tag.description Image upload, gallery and migration

// @tag.name Health
// @tag.description Health check endpoints

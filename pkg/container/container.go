package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"recipe-backend/internal/config"
	infraCache "recipe-backend/internal/infrastructure/cache"
	"recipe-backend/internal/infrastructure/database"
	"recipe-backend/internal/infrastructure/sqlite"
	"recipe-backend/pkg/cache"

	"recipe-backend/internal/domains/author"
	authorHandler "recipe-backend/internal/domains/author/handler"
	authorRepo "recipe-backend/internal/domains/author/repository"
	authorService "recipe-backend/internal/domains/author/service"

	"recipe-backend/internal/domains/recipe"
	recipeHandler "recipe-backend/internal/domains/recipe/handler"
	recipeRepo "recipe-backend/internal/domains/recipe/repository"
	recipeService "recipe-backend/internal/domains/recipe/service"

	"recipe-backend/internal/domains/ingredient"
	ingredientHandler "recipe-backend/internal/domains/ingredient/handler"
	ingredientRepo "recipe-backend/internal/domains/ingredient/repository"
	ingredientService "recipe-backend/internal/domains/ingredient/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Exactly one of DB and SQLite is set, depending on Config.Store.Driver.

	Config *config.Config
	DB     *database.PostgresDB
	SQLite *sqlite.Store
	Cache  cache.Cache

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	AuthorRepo     author.Repository
	CascadeRepo    author.CascadeRepository
	RecipeRepo     recipe.Repository
	IngredientRepo ingredient.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	AuthorService     author.Service
	RecipeService     recipe.Service
	IngredientService ingredient.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	AuthorHandler     *authorHandler.AuthorHandler
	RecipeHandler     *recipeHandler.RecipeHandler
	IngredientHandler *ingredientHandler.IngredientHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// store, cache, repositories, services, handlers.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INITIALIZE STORE
	// ========================================
	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: INITIALIZE CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 3-5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().
		Str("store", cfg.Store.Driver).
		Bool("redis", cfg.Redis.Enabled).
		Msg("DI Container initialized successfully")
	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	switch c.Config.Store.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(c.Config.Store.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite store: %w", err)
		}
		c.SQLite = store
		return nil

	case config.DriverPostgres:
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := db.Connect(connectCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		if err := db.Ping(ctx); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported store driver %q", c.Config.Store.Driver)
	}
}

// initCache connects Redis when enabled. Redis failure is not critical: the
// repositories fall back to the store on every read.
func (c *Container) initCache(ctx context.Context) {
	c.Cache = cache.NewNoop()
	if !c.Config.Redis.Enabled {
		return
	}

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis connection failed (non-critical), caching disabled")
			_ = rc.Close()
			return
		}
	}
	c.Cache = redisCache
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	if c.SQLite != nil {
		db := c.SQLite.DB
		c.AuthorRepo = authorRepo.NewSQLiteRepository(db)
		c.CascadeRepo = authorRepo.NewSQLiteCascadeRepository(db, c.Cache)
		c.RecipeRepo = recipeRepo.NewSQLiteRepository(db)
		c.IngredientRepo = ingredientRepo.NewSQLiteRepository(db)
		return
	}

	pool := c.DB.Pool
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.CascadeRepo = authorRepo.NewPostgresCascadeRepository(pool, c.Cache)
	c.RecipeRepo = recipeRepo.NewPostgresRepository(pool, c.Cache)
	c.IngredientRepo = ingredientRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.CascadeRepo)
	c.RecipeService = recipeService.NewRecipeService(c.RecipeRepo, c.AuthorRepo)
	c.IngredientService = ingredientService.NewIngredientService(c.IngredientRepo, c.RecipeRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.RecipeHandler = recipeHandler.NewRecipeHandler(c.RecipeService)
	c.IngredientHandler = ingredientHandler.NewIngredientHandler(c.IngredientService)
}

// Cleanup releases store and cache connections. Safe to call on a partially
// built container.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.DB != nil {
		_ = c.DB.Close()
	}
	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close sqlite store")
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}
}

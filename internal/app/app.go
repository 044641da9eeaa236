package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/teams/internal/config"
	"github.com/aidar/teams/internal/domain"
	"github.com/aidar/teams/internal/migrate"
	"github.com/aidar/teams/internal/objectref"
	"github.com/aidar/teams/internal/repository/postgres"
	"github.com/aidar/teams/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config   *config.Config
	db       *pgxpool.Pool
	logger   *slog.Logger
	registry *objectref.Registry

	users      *service.UserService
	teams      *service.TeamService
	ownerships *service.OwnershipService
	stats      *service.StatsService
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	app := &App{
		config:   cfg,
		logger:   logger,
		registry: objectref.NewRegistry(),
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Подключаемся к базе данных
	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Применяем миграции схемы
	if a.config.Migrations.AutoApply {
		if err := a.applyMigrations(ctx); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	a.setupServices()

	a.logger.Info("Application initialized successfully")
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// applyMigrations применяет встроенные миграции
func (a *App) applyMigrations(ctx context.Context) error {
	runner, err := migrate.New(a.config.Database.DSN(), a.logger)
	if err != nil {
		return err
	}
	return runner.Up(ctx)
}

// setupServices инициализирует репозитории, реестр типов объектов и сервисы
func (a *App) setupServices() {
	// Инициализируем слой репозиториев (работа с БД)
	userRepo := postgres.NewUserRepository(a.db)
	teamRepo := postgres.NewTeamRepository(a.db)
	statusRepo := postgres.NewTeamStatusRepository(a.db)
	ownershipRepo := postgres.NewOwnershipRepository(a.db)

	// Регистрируем типы объектов, которыми могут владеть команды
	a.registry.Register(domain.ObjectTypeUser, func(ctx context.Context, id int64) (any, error) {
		return userRepo.GetByID(ctx, id)
	})
	a.registry.Register(domain.ObjectTypeTeam, func(ctx context.Context, id int64) (any, error) {
		return teamRepo.GetByID(ctx, id)
	})

	// Инициализируем слой сервисов (бизнес-логика)
	a.users = service.NewUserService(userRepo)
	a.teams = service.NewTeamService(teamRepo, statusRepo, ownershipRepo, a.logger)
	a.ownerships = service.NewOwnershipService(ownershipRepo, a.registry, a.logger)
	a.stats = service.NewStatsService(a.db)
}

// Users возвращает сервис пользователей
func (a *App) Users() *service.UserService { return a.users }

// Teams возвращает сервис команд
func (a *App) Teams() *service.TeamService { return a.teams }

// Ownerships возвращает сервис владения объектами
func (a *App) Ownerships() *service.OwnershipService { return a.ownerships }

// Stats возвращает сервис статистики
func (a *App) Stats() *service.StatsService { return a.stats }

// Registry возвращает реестр типов объектов.
// Приложение может регистрировать в нем собственные типы объектов.
func (a *App) Registry() *objectref.Registry { return a.registry }

// Logger возвращает логгер приложения
func (a *App) Logger() *slog.Logger { return a.logger }

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}

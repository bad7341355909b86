package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/avolkov/linkstats/internal/config"
	"github.com/avolkov/linkstats/internal/controllers"
	"github.com/avolkov/linkstats/internal/db"
	"github.com/avolkov/linkstats/internal/logs"
	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/services"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	Logger     *zap.Logger
}

func New(conf config.Config) (*App, error) {
	logger, logErr := logs.New()
	if logErr != nil {
		return nil, fmt.Errorf("init logger: %w", logErr)
	}

	dbServices, servicesErr := initServices(conf, logger)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     conf,
		dbServices: dbServices,
		Logger:     logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	server := controllers.SetupRouter(controllers.RouterParams{
		Services: a.dbServices,
		Config:   &a.config,
		Logger:   a.Logger,
	})

	go func() {
		if err := server.Run(a.config.ServerAddress); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.Error("router error", zap.Error(serverErr))
	}

	_ = a.Logger.Sync()
	return serverErr
}

// initServices создает подключение к базе данных и возвращает сервисный слой приложения.
func initServices(conf config.Config, logger *zap.Logger) (*services.Services, error) {
	dbConn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  whatIsDBStorageType(&conf),
		PostgresDSN:  &conf.DatabaseDSN,
		SQLiteDBPath: &conf.SQLiteDBPath,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	codeGen := services.NewCodeGenerator(models.ShortCodeLength)

	dbServices, dbServErr := services.Factory(dbConn, whatIsServiceType(&conf), codeGen, logger)
	if dbServErr != nil {
		return nil, dbServErr //nolint:wrapcheck
	}
	return dbServices, nil
}

// whatIsDBStorageType определяет тип хранилища. Заданный DSN postgres имеет
// приоритет над остальными настройками, затем путь к файлу sqlite.
func whatIsDBStorageType(conf *config.Config) db.StorageType {
	if conf.DatabaseDSN != "" {
		return db.StorageTypePostgres
	}
	if conf.SQLiteDBPath != "" || conf.DBType == config.DBTypeSQLite {
		return db.StorageTypeSQLite
	}
	return db.StorageTypeInMemory
}

func whatIsServiceType(conf *config.Config) services.ServiceType {
	if conf.DatabaseDSN != "" || conf.SQLiteDBPath != "" || conf.DBType == config.DBTypeSQLite {
		return services.ServiceTypeSQL
	}
	return services.ServiceTypeInMemory
}

package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avolkov/linkstats/internal/db"
	"github.com/avolkov/linkstats/internal/repositories/memstore"
	"github.com/avolkov/linkstats/internal/repositories/sql"
)

type ServiceType string

const (
	ServiceTypeSQL      ServiceType = "sql"
	ServiceTypeInMemory ServiceType = "inMemory"
)

// Services сервисный слой приложения.
type Services struct {
	AccountService   *AccountService
	MappingService   *MappingService
	AnalyticsService *AnalyticsService
	PingService      *PingService
}

// Factory собирает сервисный слой поверх переданного подключения.
// Для ServiceTypeSQL ожидается *gorm.DB (sqlite или postgres),
// для ServiceTypeInMemory - *db.MemoryStorage.
func Factory(conn any, sType ServiceType, codeGen *CodeGenerator, logger *zap.Logger) (*Services, error) {
	switch sType {
	case ServiceTypeSQL:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, codeGen, logger), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return getInMemoryServices(store, codeGen, logger), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, codeGen *CodeGenerator, logger *zap.Logger) *Services {
	accountRepo := sql.NewAccountRepo(conn, logger)
	mappingRepo := sql.NewMappingRepo(conn, logger)
	clickRepo := sql.NewClickEventRepo(conn, logger)
	return &Services{
		AccountService:   NewAccountService(accountRepo, logger),
		MappingService:   NewMappingService(mappingRepo, clickRepo, codeGen, logger),
		AnalyticsService: NewAnalyticsService(mappingRepo, clickRepo),
		PingService:      NewPingService(&gormPinger{db: conn}),
	}
}

func getInMemoryServices(store *db.MemoryStorage, codeGen *CodeGenerator, logger *zap.Logger) *Services {
	accountRepo := memstore.NewAccountRepo(store)
	mappingRepo := memstore.NewMappingRepo(store)
	clickRepo := memstore.NewClickEventRepo(store)
	return &Services{
		AccountService:   NewAccountService(accountRepo, logger),
		MappingService:   NewMappingService(mappingRepo, clickRepo, codeGen, logger),
		AnalyticsService: NewAnalyticsService(mappingRepo, clickRepo),
		PingService:      NewPingService(memPinger{}),
	}
}

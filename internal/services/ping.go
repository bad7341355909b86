package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Pinger проверка живости подключения к хранилищу.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingService сервис проверки работоспособности хранилища.
type PingService struct {
	conn Pinger
}

func NewPingService(conn Pinger) *PingService {
	return &PingService{conn: conn}
}

func (s *PingService) CheckConnection(ctx context.Context) error {
	if err := s.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping error: %w", err)
	}
	return nil
}

// gormPinger пингует настоящую БД через нижележащий database/sql пул.
type gormPinger struct {
	db *gorm.DB
}

func (g *gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx) //nolint:wrapcheck
}

// memPinger хранилище в памяти всегда живо.
type memPinger struct{}

func (memPinger) Ping(_ context.Context) error { return nil }

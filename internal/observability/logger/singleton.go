package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Init construye el logger del proceso. Idempotente: llamadas
// posteriores no tienen efecto. Se invoca desde main.
func Init(cfg Config) {
	once.Do(func() {
		instance = build(cfg)
	})
}

// L retorna el logger del proceso. Si Init no corrió todavía
// (tests, tools) arma uno de desarrollo con nivel info.
func L() *zap.Logger {
	if instance == nil {
		Init(Config{Env: "dev", Level: "info"})
	}
	return instance
}

// Sync flushea buffers pendientes. Va en defer en main.
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

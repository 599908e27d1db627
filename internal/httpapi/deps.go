package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/akshaynaik00018/cpms/internal/chat"
	"github.com/akshaynaik00018/cpms/internal/config"
	"github.com/akshaynaik00018/cpms/internal/events"
	"github.com/akshaynaik00018/cpms/internal/lifecycle"
	"github.com/akshaynaik00018/cpms/internal/stats"
)

type Deps struct {
	DB *sql.DB

	Hub   *events.Hub
	Relay *chat.Relay

	Lifecycle *lifecycle.Service
	Stats     *stats.Service

	// Atomic stores
	CfgVal       *atomic.Value // stores config.Config
	IntakeStatus *atomic.Value // stores httpapi.IntakeStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Inbox poll entrypoint (injected for testability)
	RunIntake func(ctx context.Context, db *sql.DB, cfg config.Config) error
}

package health

import (
	"context"
	"errors"
	"fmt"
	"messenger/internal/platform/health"

	"messenger/internal/adapters/database"
)

const NameDatabase = "db"

type ConnectionTester interface {
	TestConnection(ctx context.Context) error
}

type DatabaseProbe struct {
	db ConnectionTester
}

func NewDatabaseProbe(db ConnectionTester) *DatabaseProbe {
	return &DatabaseProbe{db: db}
}

func (p *DatabaseProbe) Name() string {
	return NameDatabase
}

func (p *DatabaseProbe) Check(ctx context.Context) health.ProbeResult {
	err := p.db.TestConnection(ctx)
	switch {
	case err == nil:
		return health.Healthy("database connection healthy")
	case errors.Is(err, database.ErrNotConnected):
		return health.Unhealthy(err.Error())
	default:
		return health.Unhealthy(fmt.Sprintf("database connection failed: %v", err))
	}
}

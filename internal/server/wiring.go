package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/server/config"
	"github.com/dmitrijs2005/spakiosk/internal/server/metrics"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/spakiosk/internal/server/services"
	"github.com/redis/go-redis/v9"
)

// Services bundles the ledger services built over one database handle.
type Services struct {
	Events   *services.EventLogService
	Policy   *services.CouponPolicyService
	Coupons  *services.CouponService
	Limits   *services.RateLimitService
	Archiver *services.EventArchiver
}

// NewServices wires the ledger services. met may be nil.
func NewServices(db *sql.DB, m repomanager.RepositoryManager, c *config.Config, met *metrics.Metrics, log logging.Logger) (*Services, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	events := services.NewEventLogService(db, m, log, services.WithPhoneHashKey(c.PhoneHashKey))
	policy := services.NewCouponPolicyService(db, m, events, log, c.PolicyCacheTTL)

	return &Services{
		Events:   events,
		Policy:   policy,
		Coupons:  services.NewCouponService(db, m, policy, events, met, log, c),
		Limits:   services.NewRateLimitService(db, m, loc, nil, events, met, log),
		Archiver: services.NewEventArchiver(db, m, c, log),
	}, nil
}

// Storage is an open database handle with its repository manager.
type Storage struct {
	DB      *sql.DB
	Manager repomanager.RepositoryManager
	redis   redis.UniversalClient
}

// OpenStorage connects to Postgres and, when configured, to Redis for the
// rate-limit counters.
func OpenStorage(ctx context.Context, c *config.Config) (*Storage, error) {
	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	st := &Storage{DB: db}
	var opts []repomanager.Option
	if c.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			_ = db.Close()
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		st.redis = rdb
		opts = append(opts, repomanager.WithRedisCounters(rdb))
	}
	st.Manager = repomanager.NewPostgresRepositoryManager(opts...)
	return st, nil
}

// Close releases the database and Redis connections.
func (s *Storage) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	errs = append(errs, s.DB.Close())
	return errors.Join(errs...)
}

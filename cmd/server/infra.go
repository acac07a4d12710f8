package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"afternote/internal/platform/config"
	"afternote/internal/platform/kafka"
	"afternote/internal/platform/objectstore"
	"afternote/internal/platform/postgres"
	redisclient "afternote/internal/platform/redis"
	"afternote/pkg/platform/httputil"
)

// infra holds the external backends. Any of db, pool, redis and kafka may be
// nil, in which case the in-memory implementations are used.
type infra struct {
	db        *sql.DB
	pool      *pgxpool.Pool
	redis     *redisclient.Client
	kafka     *kafka.Producer
	presigner *objectstore.S3Presigner
}

func openInfra(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	in := &infra{}
	ok := false
	defer func() {
		if !ok {
			in.Close()
		}
	}()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	in.db = db
	if db != nil && cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return nil, err
		}
		log.Info("database migrations applied")
	}

	if in.pool, err = postgres.NewPool(ctx, cfg.Database.DSN); err != nil {
		return nil, err
	}

	if in.redis, err = redisclient.New(ctx, cfg.Redis); err != nil {
		return nil, err
	}

	if in.kafka, err = kafka.NewProducer(ctx, cfg.Kafka.Brokers); err != nil {
		return nil, err
	}
	if in.kafka != nil {
		if err := in.kafka.EnsureTopic(ctx, cfg.Kafka.AuditTopic, cfg.Kafka.TopicPartitions); err != nil {
			return nil, err
		}
	}

	if in.presigner, err = objectstore.NewS3Presigner(ctx, cfg.S3); err != nil {
		return nil, fmt.Errorf("s3 presigner: %w", err)
	}

	log.Info("backends ready",
		"postgres", in.db != nil,
		"redis", in.redis != nil,
		"kafka", in.kafka != nil,
	)
	ok = true
	return in, nil
}

// handleHealth reports 503 when a configured backend stops answering.
func (in *infra) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checks := map[string]string{}
	healthy := true
	check := func(name string, err error) {
		if err != nil {
			checks[name] = "down"
			healthy = false
			return
		}
		checks[name] = "up"
	}
	if in.db != nil {
		check("postgres", in.db.PingContext(ctx))
	}
	if in.pool != nil {
		check("postgres_pool", in.pool.Ping(ctx))
	}
	if in.redis != nil {
		check("redis", in.redis.Health(ctx))
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, status, map[string]any{"healthy": healthy, "checks": checks})
}

func (in *infra) Close() {
	if in.kafka != nil {
		in.kafka.Close()
	}
	if in.redis != nil {
		_ = in.redis.Close()
	}
	if in.pool != nil {
		in.pool.Close()
	}
	if in.db != nil {
		_ = in.db.Close()
	}
}

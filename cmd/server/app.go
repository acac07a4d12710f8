package main

import (
	"context"
	"log/slog"

	conditionhandler "afternote/internal/condition/handler"
	conditionmetrics "afternote/internal/condition/metrics"
	conditionservice "afternote/internal/condition/service"
	conditionstore "afternote/internal/condition/store"
	jwttoken "afternote/internal/jwt_token"
	legacyhandler "afternote/internal/legacy/handler"
	legacymetrics "afternote/internal/legacy/metrics"
	legacyservice "afternote/internal/legacy/service"
	legacystore "afternote/internal/legacy/store"
	lockoutservice "afternote/internal/lockout/service"
	lockoutstore "afternote/internal/lockout/store"
	"afternote/internal/platform/config"
	receiverauthhandler "afternote/internal/receiverauth/handler"
	receiverauthmetrics "afternote/internal/receiverauth/metrics"
	receiverauthservice "afternote/internal/receiverauth/service"
	"afternote/internal/receiverauth/store/capability"
	"afternote/internal/receiverauth/store/emailcode"
	receiverstore "afternote/internal/receiverauth/store/receiver"
	reviewhandler "afternote/internal/review/handler"
	reviewmetrics "afternote/internal/review/metrics"
	reviewservice "afternote/internal/review/service"
	reviewstore "afternote/internal/review/store"
	"afternote/internal/review/store/statuscache"
	triggerhandler "afternote/internal/trigger/handler"
	triggermetrics "afternote/internal/trigger/metrics"
	triggermodels "afternote/internal/trigger/models"
	triggerservice "afternote/internal/trigger/service"
	triggerstore "afternote/internal/trigger/store"
	"afternote/pkg/platform/audit/outbox"
	"afternote/pkg/platform/audit/publisher"
	auditmemory "afternote/pkg/platform/audit/store/memory"
	auditpostgres "afternote/pkg/platform/audit/store/postgres"
)

const auditBufferSize = 256

// app is the wired service graph behind the router.
type app struct {
	conditions   *conditionhandler.Handler
	triggers     *triggerhandler.Handler
	receivers    *receiverauthhandler.Handler
	receiverAuth *receiverauthservice.Service
	reviews      *reviewhandler.Handler
	legacy       *legacyhandler.Handler
	jwt          *jwttoken.JWTServiceAdapter

	auditPublisher *publisher.Publisher
	outbox         *auditpostgres.Store
	producer       outbox.Producer
	log            *slog.Logger
}

type stores struct {
	conditions conditionservice.Store
	releases   triggerservice.Store
	lockouts   lockoutservice.Store
	receivers  interface {
		receiverauthservice.ReceiverStore
		legacyservice.ReceiverLookup
	}
	verifications reviewservice.Store
	legacy        legacyservice.Store
	tx            reviewservice.TxRunner
}

func buildStores(in *infra) stores {
	if in.db == nil {
		return stores{
			conditions:    conditionstore.NewInMemoryStore(),
			releases:      triggerstore.NewInMemoryStore(),
			lockouts:      lockoutstore.NewInMemoryStore(),
			receivers:     receiverstore.NewInMemoryStore(),
			verifications: reviewstore.NewInMemoryStore(),
			legacy:        legacystore.NewInMemoryStore(),
			tx:            newReviewMemoryTx(),
		}
	}
	s := stores{
		conditions:    conditionstore.NewPostgres(in.db),
		releases:      triggerstore.NewPostgres(in.db),
		lockouts:      lockoutstore.NewPostgres(in.db),
		receivers:     receiverstore.NewPostgres(in.db),
		verifications: reviewstore.NewPostgres(in.db),
		tx:            newReviewPostgresTx(in.db),
	}
	if in.pool != nil {
		s.legacy = legacystore.NewPostgres(in.pool)
	} else {
		s.legacy = legacystore.NewInMemoryStore()
	}
	return s
}

func buildApp(cfg config.Config, in *infra, log *slog.Logger) (*app, error) {
	a := &app{log: log}

	if in.db != nil {
		a.outbox = auditpostgres.New(in.db)
		// Synchronous so the outbox row joins the caller's transaction.
		a.auditPublisher = publisher.NewPublisher(a.outbox, publisher.WithLogger(log))
	} else {
		a.auditPublisher = publisher.NewPublisher(auditmemory.NewInMemoryStore(),
			publisher.WithAsyncBuffer(auditBufferSize),
			publisher.WithLogger(log),
		)
	}
	if in.kafka != nil {
		a.producer = in.kafka
	}

	st := buildStores(in)

	conditions, err := conditionservice.New(st.conditions,
		conditionservice.WithLogger(log),
		conditionservice.WithAuditPublisher(a.auditPublisher),
		conditionservice.WithMetrics(conditionmetrics.New()),
	)
	if err != nil {
		return nil, err
	}

	triggers, err := triggerservice.New(st.releases, conditions,
		triggerservice.WithLogger(log),
		triggerservice.WithAuditPublisher(a.auditPublisher),
		triggerservice.WithMetrics(triggermetrics.New()),
		triggerservice.WithPolicy(triggermodels.Policy{InactivityThresholdDays: cfg.Delivery.InactivityThresholdDays}),
		triggerservice.WithConcurrency(cfg.Delivery.EvaluationConcurrency),
	)
	if err != nil {
		return nil, err
	}

	reviewOpts := []reviewservice.Option{
		reviewservice.WithLogger(log),
		reviewservice.WithAuditPublisher(a.auditPublisher),
		reviewservice.WithMetrics(reviewmetrics.New()),
		reviewservice.WithTx(st.tx),
	}
	if in.redis != nil {
		reviewOpts = append(reviewOpts, reviewservice.WithStatusCache(statuscache.NewRedis(in.redis.Client), cfg.Delivery.StatusCacheTTL))
	}
	reviews, err := reviewservice.New(st.verifications, conditions, triggers, reviewOpts...)
	if err != nil {
		return nil, err
	}

	lockouts, err := lockoutservice.New(st.lockouts,
		lockoutservice.WithLogger(log),
		lockoutservice.WithAuditPublisher(a.auditPublisher),
		lockoutservice.WithConfig(cfg.Lockout),
	)
	if err != nil {
		return nil, err
	}

	authOpts := []receiverauthservice.Option{
		receiverauthservice.WithLogger(log),
		receiverauthservice.WithAuditPublisher(a.auditPublisher),
		receiverauthservice.WithMetrics(receiverauthmetrics.New()),
		receiverauthservice.WithConfig(cfg.Delivery),
		receiverauthservice.WithLockout(lockouts),
		receiverauthservice.WithPresigner(in.presigner),
	}
	if in.redis != nil {
		authOpts = append(authOpts,
			receiverauthservice.WithEmailCodes(emailcode.NewRedis(in.redis.Client), nil),
			receiverauthservice.WithCapabilityCache(capability.NewRedis(in.redis.Client)),
		)
	} else {
		authOpts = append(authOpts, receiverauthservice.WithEmailCodes(emailcode.NewInMemoryStore(), nil))
	}
	receiverAuth, err := receiverauthservice.New(st.receivers, receiverauthservice.AccessSources{
		Conditions: conditions,
		Releases:   triggers,
		Reviews:    reviews,
	}, []byte(cfg.Server.MasterKeyPepper), authOpts...)
	if err != nil {
		return nil, err
	}

	legacy, err := legacyservice.New(st.legacy,
		legacyservice.WithLogger(log),
		legacyservice.WithAuditPublisher(a.auditPublisher),
		legacyservice.WithMetrics(legacymetrics.New()),
		legacyservice.WithSenderNames(st.receivers),
	)
	if err != nil {
		return nil, err
	}

	a.conditions = conditionhandler.New(conditions, log)
	a.triggers = triggerhandler.New(triggers, log)
	a.receivers = receiverauthhandler.New(receiverAuth, log)
	a.receiverAuth = receiverAuth
	a.reviews = reviewhandler.New(reviews, log)
	a.legacy = legacyhandler.New(legacy, log)
	a.jwt = jwttoken.NewJWTServiceAdapter(jwttoken.NewJWTService(
		cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience,
	))
	return a, nil
}

// startRelay moves outbox rows to Kafka until ctx is cancelled. Without both
// postgres and Kafka there is nothing to relay and the returned channel is
// already closed.
func (a *app) startRelay(ctx context.Context, cfg config.KafkaConfig) <-chan struct{} {
	done := make(chan struct{})
	if a.outbox == nil || a.producer == nil {
		close(done)
		return done
	}
	relay := outbox.NewRelay(a.outbox, a.producer, cfg.AuditTopic,
		outbox.WithInterval(cfg.RelayInterval),
		outbox.WithLogger(a.log),
	)
	go func() {
		defer close(done)
		_ = relay.Run(ctx)
		a.log.Info("audit outbox relay stopped")
	}()
	return done
}

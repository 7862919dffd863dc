package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"helper-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names used by the mongo repositories
const (
	CollUsers        = "users"
	CollBookings     = "bookings"
	CollHelpRequests = "help_requests"
	CollVolunteers   = "volunteers"
	CollWallets      = "wallets"
	CollTransactions = "wallet_transactions"
	CollCounters     = "counters"
)

// ConnState tracks whether the live document store is reachable.
// It starts disconnected and is flipped by server heartbeat events,
// so every repository call can pick live vs fallback without a
// package-level global. Reads are lock-free.
type ConnState struct {
	connected atomic.Bool
	log       *zap.Logger
}

func NewConnState(log *zap.Logger) *ConnState {
	return &ConnState{log: log}
}

// Connected reports the current store mode
func (s *ConnState) Connected() bool {
	return s.connected.Load()
}

// Set records a connectivity transition, logging only actual changes
func (s *ConnState) Set(up bool, reason string) {
	if prev := s.connected.Swap(up); prev == up {
		return
	}

	if up {
		s.log.Info("Document store connected", zap.String("reason", reason))
	} else {
		s.log.Warn("Document store disconnected, serving from memory store",
			zap.String("reason", reason))
	}
}

// Mongo bundles the client, the application database handle and the
// connectivity state fed by the client's heartbeat monitor.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
	State  *ConnState
}

// Connect builds the mongo client with a heartbeat monitor wired into
// a fresh ConnState. An unreachable server is not an error: the client
// keeps retrying in the background and the state stays disconnected,
// which routes requests to the memory store until mongo comes up.
func Connect(cfg utils.MongoConfig, log *zap.Logger) (*Mongo, error) {
	state := NewConnState(log)

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	monitor := &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(*event.ServerHeartbeatSucceededEvent) {
			state.Set(true, "heartbeat succeeded")
		},
		ServerHeartbeatFailed: func(*event.ServerHeartbeatFailedEvent) {
			state.Set(false, "heartbeat failed")
		},
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(Registry()).
		SetServerMonitor(monitor).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	// Initial ping decides the starting mode
	pingCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		log.Warn("Document store unreachable at startup",
			zap.String("uri", cfg.URI),
			zap.Error(err))
	} else {
		state.Set(true, "startup ping")
	}

	return &Mongo{
		Client: client,
		DB:     client.Database(cfg.Database),
		State:  state,
	}, nil
}

// Ping checks the live store directly
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

// Close disconnects the client
func (m *Mongo) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = m.Client.Disconnect(ctx)
}

package mongodb

import (
	"context"
	"fmt"
	"time"

	"african-animals/internal/platform/logger"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect crea el cliente y registra eventos de conexión en el log.
// Un ping fallido no es fatal: el server arranca igual y cada request
// falla por su cuenta hasta que Mongo esté disponible.
func Connect(ctx context.Context, uri string, log logger.Logger) (*mongo.Client, error) {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With(map[string]any{"component": "mongo"})

	monitor := &event.ServerMonitor{
		ServerOpening: func(e *event.ServerOpeningEvent) {
			log.Info("mongo server opening", map[string]any{"address": e.Address.String()})
		},
		ServerClosed: func(e *event.ServerClosedEvent) {
			log.Info("mongo server closed", map[string]any{"address": e.Address.String()})
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			log.Warn("mongo heartbeat failed", map[string]any{
				"connection_id": e.ConnectionID,
				"err":           e.Failure,
			})
		},
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerMonitor(monitor).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Error("mongo not reachable yet", map[string]any{"err": err})
	} else {
		log.Info("connected to mongo", nil)
	}

	return client, nil
}

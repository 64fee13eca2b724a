// Package db handles the MongoDB connection bootstrap.
package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/phuslu/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 30 * time.Second

// Connect dials mongo, pings it and returns the named database. The
// caller owns disconnecting the client on shutdown.
func Connect(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	clientOptions := options.Client().
		ApplyURI(uri).
		SetTLSConfig(tlsConfig).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetTimeout(connectTimeout).
		SetConnectTimeout(connectTimeout)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 15*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info().Str("database", name).Msg("connected to mongodb")
	return client, client.Database(name), nil
}

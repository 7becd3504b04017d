package mongodb

import (
	"context"
	"fmt"
	"neodrive/config"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connection is the process-wide handle to the document store.
type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
	timeout  time.Duration
}

// New connects to MongoDB and pings the deployment. A failed ping is logged and the
// connection is still returned: routes stay registered and fail per request until the
// deployment becomes reachable. An unparsable URI is fatal.
func New(config *config.Config) *Connection {
	mongoConfig := config.DB.Mongo
	timeout := time.Duration(mongoConfig.ConnectTimeoutSeconds) * time.Second

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	clientOptions := options.Client().
		ApplyURI(mongoConfig.URI).
		SetAppName(config.App.Name).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(timeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB client")
	}

	conn := &Connection{
		Client:   client,
		Database: client.Database(mongoConfig.Database),
		timeout:  timeout,
	}

	if err := conn.Ping(ctx); err != nil {
		log.Error().Err(err).Str("database", mongoConfig.Database).Msg("Failed to ping MongoDB, continuing without a verified connection")

		return conn
	}

	log.Info().Str("database", mongoConfig.Database).Msg("Pinged your deployment. Connected to MongoDB")

	return conn
}

// Collection returns a handle to the named collection of the configured database.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

// Ping checks that the primary is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return nil
}

// Close disconnects the client, waiting at most the configured connect timeout.
func (c *Connection) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}

	log.Info().Msg("Disconnected from MongoDB")

	return nil
}

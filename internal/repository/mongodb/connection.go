package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connection is the shared handle to the document store. It is created
// once at startup, injected into every repository, and closed at
// shutdown. The driver owns pooling; the handle itself is read-only after
// construction.
type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewConnection(ctx context.Context, uri, database string) (*Connection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Connection{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("mongodb client is nil")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Collection returns a named collection in the configured database.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

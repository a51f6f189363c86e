package checker

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type mongoConn struct {
	client *mongo.Client
}

// dialMongo builds a client; the driver connects lazily on first use.
func dialMongo(_ context.Context, uri string) (Conn, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &mongoConn{client: client}, nil
}

// Ping runs the admin ping command.
func (c *mongoConn) Ping(ctx context.Context) error {
	return c.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (c *mongoConn) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

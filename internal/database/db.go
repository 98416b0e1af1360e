package database

import (
	"context"
	"fmt"

	"github.com/blog-platform-api/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// BlogCollection is the collection holding article documents
const BlogCollection = "blogs"

// DB wraps the MongoDB client with database-scoped helpers
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// New connects to MongoDB and verifies the connection
func New(cfg *config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	wrapper := &DB{
		client: client,
		db:     client.Database(cfg.Name),
		log:    log.With().Str("component", "database").Logger(),
	}

	wrapper.log.Info().
		Str("database", cfg.Name).
		Msg("MongoDB connection established")

	return wrapper, nil
}

// Collection returns a handle to a named collection
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// EnsureIndexes creates the indexes the application relies on. Slug
// uniqueness is enforced here rather than in application code: concurrent
// creates with the same slug race at the index, not in a read-then-write.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	d.log.Info().Msg("Ensuring MongoDB indexes")

	_, err := d.Collection(BlogCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create slug index: %w", err)
	}

	d.log.Info().Msg("Indexes ready")
	return nil
}

// HealthCheck verifies the database connection is healthy
func (d *DB) HealthCheck(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

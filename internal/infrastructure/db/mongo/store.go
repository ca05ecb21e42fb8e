// Package mongo implements the store repository on MongoDB.
//
// Collections mirror the relational tables: users (unique username), products
// and orders (integer ids drawn from the counters collection). Joins are
// $lookup stages followed by $unwind, which drops orders without a product.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

const (
	collectionUsers    = "users"
	collectionProducts = "products"
	collectionOrders   = "orders"
	collectionCounters = "counters"

	codeNamespaceExists  = 48
	codeValidationFailed = 121
)

// Store is the MongoDB store repository.
type Store struct {
	client   *mongo.Client
	db       *mongo.Database
	users    *mongo.Collection
	products *mongo.Collection
	orders   *mongo.Collection
	counters *mongo.Collection
	timeout  time.Duration
}

var _ ports.StoreRepository = (*Store)(nil)

// New wraps a connected client and database.
func New(client *mongo.Client, db *mongo.Database, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Store{
		client:   client,
		db:       db,
		users:    db.Collection(collectionUsers),
		products: db.Collection(collectionProducts),
		orders:   db.Collection(collectionOrders),
		counters: db.Collection(collectionCounters),
		timeout:  timeout,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// withSession runs fn inside a client session held for the duration of the
// call and ended on every path.
func (s *Store) withSession(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("mongo: start session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, fn)
}

// validators require the same fields the relational schema marks NOT NULL.
var validators = map[string]bson.M{
	collectionUsers: {"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"username", "password", "email", "role"},
		"properties": bson.M{
			"username": bson.M{"bsonType": "string", "minLength": 1},
			"password": bson.M{"bsonType": "string", "minLength": 1},
			"email":    bson.M{"bsonType": "string", "minLength": 1},
			"role":     bson.M{"bsonType": "string", "minLength": 1},
		},
	}},
	collectionProducts: {"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"_id", "name", "price"},
		"properties": bson.M{
			"name":  bson.M{"bsonType": "string", "minLength": 1},
			"price": bson.M{"bsonType": "decimal"},
		},
	}},
	collectionOrders: {"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"_id", "username", "product_id", "quantity", "placed_at"},
		"properties": bson.M{
			"username": bson.M{"bsonType": "string", "minLength": 1},
		},
	}},
}

// EnsureSchema creates the validated collections and their indexes when
// absent. Existing collections and documents are left as they are.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, name := range []string{collectionUsers, collectionProducts, collectionOrders} {
		opts := options.CreateCollection().SetValidator(validators[name])
		if err := s.db.CreateCollection(ctx, name, opts); err != nil && !hasCode(err, codeNamespaceExists) {
			return fmt.Errorf("ensure schema: create %s: %w", name, err)
		}
	}

	if _, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("ensure schema: users index: %w", err)
	}

	if _, err := s.orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}},
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("ensure schema: orders indexes: %w", err)
	}
	return nil
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// nextID draws the next integer id for the named sequence. Ids are never
// handed out twice, even when the insert that requested one fails.
func (s *Store) nextID(sc mongo.SessionContext, name string) (int64, error) {
	var c counter
	err := s.counters.FindOneAndUpdate(sc,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return c.Seq, nil
}

func hasCode(err error, code int) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(code)
}

// translate maps validation failures to domain errors and wraps the rest.
func translate(op string, err error) error {
	if hasCode(err, codeValidationFailed) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

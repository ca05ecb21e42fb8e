package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

type mongoOrder struct {
	ID        int64     `bson:"_id"`
	Username  string    `bson:"username"`
	ProductID int64     `bson:"product_id"`
	Quantity  int       `bson:"quantity"`
	PlacedAt  time.Time `bson:"placed_at"`
}

// PlaceOrder stores o without checking the product or the user. A zero
// PlacedAt is replaced by the current time.
func (s *Store) PlaceOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if o.PlacedAt.IsZero() {
		o.PlacedAt = time.Now()
	}
	// BSON dates carry millisecond precision.
	o.PlacedAt = o.PlacedAt.UTC().Truncate(time.Millisecond)

	err := s.withSession(ctx, func(sc mongo.SessionContext) error {
		id, err := s.nextID(sc, collectionOrders)
		if err != nil {
			return err
		}
		doc := mongoOrder{
			ID:        id,
			Username:  o.Username,
			ProductID: o.ProductID,
			Quantity:  o.Quantity,
			PlacedAt:  o.PlacedAt,
		}
		if _, err := s.orders.InsertOne(sc, doc); err != nil {
			return translate("insert order", err)
		}
		o.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// joinProduct is the inner join of orders to products: $unwind without
// preserveNullAndEmptyArrays discards orders whose lookup came back empty.
var joinProduct = []bson.D{
	{{Key: "$lookup", Value: bson.M{
		"from":         collectionProducts,
		"localField":   "product_id",
		"foreignField": "_id",
		"as":           "product",
	}}},
	{{Key: "$unwind", Value: "$product"}},
}

type orderLineDoc struct {
	ID          int64     `bson:"_id"`
	ProductName string    `bson:"product_name"`
	Quantity    int       `bson:"quantity"`
	PlacedAt    time.Time `bson:"placed_at"`
}

func (s *Store) OrdersForUser(ctx context.Context, username string) ([]domain.OrderLine, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{"username": username}}}}
	pipeline = append(pipeline, joinProduct...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "placed_at", Value: -1}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"product_name": "$product.name",
			"quantity":     1,
			"placed_at":    1,
		}}},
	)

	lines := []domain.OrderLine{}
	err := s.withSession(ctx, func(sc mongo.SessionContext) error {
		cur, err := s.orders.Aggregate(sc, pipeline)
		if err != nil {
			return err
		}
		defer cur.Close(sc)

		for cur.Next(sc) {
			var d orderLineDoc
			if err := cur.Decode(&d); err != nil {
				return err
			}
			lines = append(lines, domain.OrderLine{
				OrderID:     d.ID,
				ProductName: d.ProductName,
				Quantity:    d.Quantity,
				PlacedAt:    d.PlacedAt.UTC(),
			})
		}
		return cur.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("orders for user: %w", err)
	}
	return lines, nil
}

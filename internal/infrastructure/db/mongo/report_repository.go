package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

type salesDoc struct {
	Key struct {
		ProductID int64                `bson:"product_id"`
		Name      string               `bson:"name"`
		Price     primitive.Decimal128 `bson:"price"`
	} `bson:"_id"`
	TotalQuantity int64                `bson:"total_quantity"`
	TotalRevenue  primitive.Decimal128 `bson:"total_revenue"`
	FirstOrder    int64                `bson:"first_order"`
}

// SalesStatistics groups joined orders by (product id, name, price). The
// revenue is a $sum of per-order $multiply on Decimal128 values, which is
// exact.
func (s *Store) SalesStatistics(ctx context.Context) ([]domain.ProductSales, error) {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, joinProduct...)
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"product_id": "$product_id",
				"name":       "$product.name",
				"price":      "$product.price",
			},
			"total_quantity": bson.M{"$sum": bson.M{"$toLong": "$quantity"}},
			"total_revenue":  bson.M{"$sum": bson.M{"$multiply": bson.A{"$quantity", "$product.price"}}},
			"first_order":    bson.M{"$min": "$_id"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "total_quantity", Value: -1},
			{Key: "first_order", Value: 1},
		}}},
	)

	stats := []domain.ProductSales{}
	err := s.withSession(ctx, func(sc mongo.SessionContext) error {
		cur, err := s.orders.Aggregate(sc, pipeline)
		if err != nil {
			return err
		}
		defer cur.Close(sc)

		for cur.Next(sc) {
			var d salesDoc
			if err := cur.Decode(&d); err != nil {
				return err
			}
			price, err := fromDecimal128(d.Key.Price)
			if err != nil {
				return err
			}
			revenue, err := fromDecimal128(d.TotalRevenue)
			if err != nil {
				return err
			}
			stats = append(stats, domain.ProductSales{
				ProductID:     d.Key.ProductID,
				ProductName:   d.Key.Name,
				TotalQuantity: d.TotalQuantity,
				UnitPrice:     price,
				TotalRevenue:  revenue,
			})
		}
		return cur.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("sales statistics: %w", err)
	}
	return stats, nil
}

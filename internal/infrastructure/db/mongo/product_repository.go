package mongo

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

type mongoProduct struct {
	ID       int64                `bson:"_id"`
	Name     string               `bson:"name"`
	Category string               `bson:"category,omitempty"`
	Price    primitive.Decimal128 `bson:"price"`
}

func (mp mongoProduct) toDomain() (domain.Product, error) {
	price, err := fromDecimal128(mp.Price)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{ID: mp.ID, Name: mp.Name, Category: mp.Category, Price: price}, nil
}

func (s *Store) AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	err = s.withSession(ctx, func(sc mongo.SessionContext) error {
		id, err := s.nextID(sc, collectionProducts)
		if err != nil {
			return err
		}
		doc := mongoProduct{ID: id, Name: p.Name, Category: p.Category, Price: price}
		if _, err := s.products.InsertOne(sc, doc); err != nil {
			return translate("insert product", err)
		}
		p.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.findProducts(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// FindProducts translates the LIKE pattern '%substr%' into a case-insensitive
// regular expression, keeping '%' and '_' as wildcards.
func (s *Store) FindProducts(ctx context.Context, substr string) ([]domain.Product, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: likeToRegex(substr), Options: "i"}}
	products, err := s.findProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return products, nil
}

func (s *Store) findProducts(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	products := []domain.Product{}
	err := s.withSession(ctx, func(sc mongo.SessionContext) error {
		cur, err := s.products.Find(sc, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return err
		}
		defer cur.Close(sc)

		for cur.Next(sc) {
			var mp mongoProduct
			if err := cur.Decode(&mp); err != nil {
				return err
			}
			p, err := mp.toDomain()
			if err != nil {
				return err
			}
			products = append(products, p)
		}
		return cur.Err()
	})
	return products, err
}

// likeToRegex converts the body of a '%substr%' LIKE pattern to an unanchored
// regular expression.
func likeToRegex(substr string) string {
	var b strings.Builder
	for _, r := range substr {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

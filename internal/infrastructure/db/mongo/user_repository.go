package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

type mongoUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
	Email    string             `bson:"email"`
	Role     string             `bson:"role"`
}

func (mu mongoUser) toDomain() domain.User {
	return domain.User{
		Username: mu.Username,
		Password: mu.Password,
		Email:    mu.Email,
		Role:     mu.Role,
	}
}

// RegisterUser inserts u; the unique index on username rejects a taken name.
func (s *Store) RegisterUser(ctx context.Context, u domain.User) error {
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	doc := mongoUser{
		ID:       primitive.NewObjectID(),
		Username: u.Username,
		Password: u.Password,
		Email:    u.Email,
		Role:     u.Role,
	}

	return s.withSession(ctx, func(sc mongo.SessionContext) error {
		if _, err := s.users.InsertOne(sc, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return domain.ErrUserExists
			}
			return translate("insert user", err)
		}
		return nil
	})
}

func (s *Store) Authenticate(ctx context.Context, c domain.Credentials) (*domain.User, error) {
	var mu mongoUser
	err := s.withSession(ctx, func(sc mongo.SessionContext) error {
		return s.users.FindOne(sc, bson.M{
			"username": c.Username,
			"password": c.Password,
			"email":    c.Email,
			"role":     c.Role,
		}).Decode(&mu)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	u := mu.toDomain()
	return &u, nil
}

// ListUsernames returns usernames in registration order (ObjectIDs are
// generated in increasing order at insert time).
func (s *Store) ListUsernames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := s.withSession(ctx, func(sc mongo.SessionContext) error {
		cur, err := s.users.Find(sc, bson.M{},
			options.Find().
				SetSort(bson.D{{Key: "_id", Value: 1}}).
				SetProjection(bson.M{"username": 1}))
		if err != nil {
			return err
		}
		defer cur.Close(sc)

		for cur.Next(sc) {
			var mu mongoUser
			if err := cur.Decode(&mu); err != nil {
				return err
			}
			names = append(names, mu.Username)
		}
		return cur.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list usernames: %w", err)
	}
	return names, nil
}

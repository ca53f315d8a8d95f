package database

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/config"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/models"
)

const connectTimeout = 10 * time.Second

// Store owns the mongo client and the collection handles the handlers work
// against. It is created once at startup and closed on shutdown; handlers
// never touch the client directly.
type Store struct {
	client *mongo.Client

	Users    *mongo.Collection
	Menu     *mongo.Collection
	Reviews  *mongo.Collection
	Carts    *mongo.Collection
	Payments *mongo.Collection
}

func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logrus.WithField("db", cfg.DBName).Info("connected to mongodb")

	db := client.Database(cfg.DBName)
	return &Store{
		client:   client,
		Users:    db.Collection("users"),
		Menu:     db.Collection("menu"),
		Reviews:  db.Collection("reviews"),
		Carts:    db.Collection("carts"),
		Payments: db.Collection("payments"),
	}, nil
}

// NewStoreWithDatabase builds a Store over an already-connected database.
// Used by tests that run against a mock deployment.
func NewStoreWithDatabase(db *mongo.Database) *Store {
	return &Store{
		client:   db.Client(),
		Users:    db.Collection("users"),
		Menu:     db.Collection("menu"),
		Reviews:  db.Collection("reviews"),
		Carts:    db.Collection("carts"),
		Payments: db.Collection("payments"),
	}
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// UserRole resolves the stored role for an email. Missing user or an
// out-of-range role value both come back as errors so the admin gate
// treats them as forbidden rather than silently defaulting.
func (s *Store) UserRole(ctx context.Context, email string) (models.Role, error) {
	var user struct {
		Role string `bson:"role"`
	}
	err := s.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", errors.New("user not found")
	}
	if err != nil {
		return "", err
	}
	return models.ParseRole(user.Role)
}

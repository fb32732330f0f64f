package database

import (
	"context"
	"time"

	"github.com/phuslu/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureCustomerIndexes creates the phone lookup index. It is deliberately
// not unique: the same phone number may be registered more than once.
func EnsureCustomerIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(CustomersCollection).Indexes()

	phoneIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
		Options: options.Index().SetName("phoneNumber_index"),
	}

	log.Info().Str("index", "phoneNumber_index").Msg("EnsureCustomerIndexes: creating index")
	if _, err := indexes.CreateOne(ctx, phoneIndex); err != nil {
		log.Error().Err(err).Str("index", "phoneNumber_index").Msg("EnsureCustomerIndexes: index error")
		return err
	}
	log.Info().Str("index", "phoneNumber_index").Msg("EnsureCustomerIndexes: index created")
	return nil
}

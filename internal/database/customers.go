package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"registration/internal/models"
)

const CustomersCollection = "customers"

const opTimeout = 5 * time.Second

type CustomerRepository struct {
	coll *mongo.Collection
}

// NewCustomerRepository decodes nested documents as bson.M so deviceInfo
// round-trips to JSON as an object.
func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	opts := options.Collection().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	return &CustomerRepository{coll: db.Collection(CustomersCollection, opts)}
}

// FindByPhone returns the first customer whose phoneNumber equals phone
// exactly, or nil when there is none.
func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"phoneNumber": phone}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &customer, nil
}

// Insert stores c and sets c.ID from the inserted document.
func (r *CustomerRepository) Insert(ctx context.Context, c *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return nil
}

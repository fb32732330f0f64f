package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is one registrant as stored in the customers collection.
//
// Password is kept exactly as submitted. Hashing is a known open item and the
// field is never written to JSON responses.
type Customer struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	FullName    string                 `bson:"fullName" json:"fullName"`
	Email       string                 `bson:"email" json:"email"`
	PhoneNumber string                 `bson:"phoneNumber" json:"phoneNumber"`
	Gender      string                 `bson:"gender" json:"gender"`
	DateOfBirth string                 `bson:"dateOfBirth" json:"dateOfBirth"`
	Address     string                 `bson:"address" json:"address"`
	Password    string                 `bson:"password" json:"-"`
	Latitude    float64                `bson:"latitude" json:"latitude"`
	Longitude   float64                `bson:"longitude" json:"longitude"`
	DeviceInfo  interface{}            `bson:"deviceInfo,omitempty" json:"deviceInfo,omitempty"`
	CreatedAt   time.Time              `bson:"createdAt" json:"createdAt"`
}

package models

import "time"

// RegistrationRequest is the POST /api/customers body. Coordinates are
// pointers so an absent value can be told apart from 0.
type RegistrationRequest struct {
	FullName        string                 `json:"fullName" validate:"notblank"`
	Email           string                 `json:"email" validate:"notblank"`
	PhoneNumber     string                 `json:"phoneNumber" validate:"notblank"`
	Gender          string                 `json:"gender" validate:"notblank"`
	DateOfBirth     string                 `json:"dateOfBirth" validate:"notblank"`
	Address         string                 `json:"address" validate:"notblank"`
	Password        string                 `json:"password" validate:"notblank"`
	ConfirmPassword string                 `json:"confirmPassword"`
	Latitude        *float64               `json:"latitude" validate:"required"`
	Longitude       *float64               `json:"longitude" validate:"required"`
	DeviceInfo      interface{}            `json:"deviceInfo,omitempty"`
}

// Customer builds the record to persist. Callers validate first; nil
// coordinates become 0.
func (r RegistrationRequest) Customer(now time.Time) Customer {
	c := Customer{
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Gender:      r.Gender,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		Password:    r.Password,
		DeviceInfo:  r.DeviceInfo,
		CreatedAt:   now,
	}
	if r.Latitude != nil {
		c.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		c.Longitude = *r.Longitude
	}
	return c
}

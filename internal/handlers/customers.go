package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"registration/internal/apperrors"
	"registration/internal/models"
	"registration/internal/services"
)

const (
	msgRegisteredEmailSent   = "Customer registered successfully and confirmation email sent"
	msgRegisteredEmailFailed = "Customer registered successfully, but failed to send confirmation email"
	msgRegistered            = "Customer registered successfully"
	msgCustomerNotFound      = "Customer not found"
)

type CustomerService interface {
	Register(ctx context.Context, req *models.RegistrationRequest) (*services.RegistrationOutcome, error)
	LookupByPhone(ctx context.Context, phone string) (*models.Customer, error)
}

func RegisterCustomer(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/customers"
		defer handlePanic(c, route)

		var req models.RegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Warn().Err(err).Str("route", route).Msg("register parse failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "details": err.Error()})
			return
		}

		out, err := svc.Register(c.Request.Context(), &req)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":   registrationMessage(out.Email),
			"emailSent": out.EmailSent(),
		})
	}
}

func registrationMessage(status services.EmailStatus) string {
	switch status {
	case services.EmailSent:
		return msgRegisteredEmailSent
	case services.EmailFailed:
		return msgRegisteredEmailFailed
	default:
		return msgRegistered
	}
}

func GetCustomerByPhone(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/customers/phone/:phoneNumber"
		defer handlePanic(c, route)

		customer, err := svc.LookupByPhone(c.Request.Context(), c.Param("phoneNumber"))
		if err != nil {
			respondServiceError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func respondServiceError(c *gin.Context, route string, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithError(c, http.StatusBadRequest, route, verr.Error())
	case errors.Is(err, apperrors.ErrCustomerNotFound):
		respondWithError(c, http.StatusNotFound, route, msgCustomerNotFound)
	default:
		respondWithError(c, http.StatusInternalServerError, route, "Server error: "+err.Error())
	}
}

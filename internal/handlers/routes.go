package handlers

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, svc CustomerService, db DBPinger) {
	api := r.Group("/api")

	api.GET("/test", ServiceStatusCheck())
	api.GET("/health", Health(db))

	api.POST("/customers", RegisterCustomer(svc))
	api.GET("/customers/phone/:phoneNumber", GetCustomerByPhone(svc))
}

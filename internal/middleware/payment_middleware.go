package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/infogrowkro/growkroweb/internal/payments"
)

// PaymentMiddleware injects the payment gateway into the request context.
// A nil gateway is allowed; payment handlers then report the system as
// unconfigured instead of panicking at startup.
func PaymentMiddleware(gateway payments.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gateway != nil {
			c.Set("payment_gateway", gateway)
		}
		c.Next()
	}
}

func GetPaymentGateway(c *gin.Context) payments.Gateway {
	gateway, exists := c.Get("payment_gateway")
	if !exists {
		return nil
	}
	return gateway.(payments.Gateway)
}

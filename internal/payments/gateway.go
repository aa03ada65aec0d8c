package payments

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// Gateway abstracts the hosted payment provider: it mints checkout orders
// and validates the signature the client hands back after paying.
type Gateway interface {
	CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
	secret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
		secret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		body["notes"] = notes
	}

	order, err := g.client.Order.Create(body, nil)
	if err != nil {
		return "", err
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return "", fmt.Errorf("order response missing id")
	}
	return orderID, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.secret)
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

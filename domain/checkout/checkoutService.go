package checkout

import (
	"context"
	"strings"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
)

var ErrorEmptyCart = errors.New("cart is empty")
var ErrorCheckoutInFlight = errors.New("checkout already in flight for session")

// ValidationErrors maps form field names to readable messages.
type ValidationErrors map[string]string

func (validationErrors ValidationErrors) Error() string {
	fields := make([]string, 0, len(validationErrors))
	for field := range validationErrors {
		fields = append(fields, field)
	}
	return "invalid checkout form, fields: " + strings.Join(fields, ", ")
}

type CheckoutForm struct {
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	ShippingAddress    entities.AddressInfo
	BillingAddress     entities.AddressInfo
	SameBillingAddress bool
	PaymentMethod      string
	Notes              string
}

type ICheckoutService interface {
	// LoadCartItems resolves the items a checkout operates on. The
	// direct-checkout slot wins over the regular cart when non-empty;
	// the returned flag reports which source was used.
	LoadCartItems(ctx context.Context, sessionId string) ([]entities.CartItem, bool, error)

	// EnrichItems back-fills image and seller/reseller attribution for
	// items missing them. Lookup misses keep the item with nil fields.
	EnrichItems(ctx context.Context, items []entities.CartItem) []entities.CartItem

	// PlaceOrder validates the form, assembles totals and commission,
	// writes the order header then its items, and clears the cart.
	PlaceOrder(ctx context.Context, sessionId string, form CheckoutForm) (*entities.Order, error)
}

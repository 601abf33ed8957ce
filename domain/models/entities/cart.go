package entities

import "time"

// Cart storage keys. CartKey holds the ordered cart list, DirectCheckoutKey a
// single-use one-item list written by buy-now; each buy-now overwrites it.
const (
	CartKey           string = "cart_v1"
	DirectCheckoutKey string = "direct_checkout"
)

// CartItem is a client-authored line item. Enrichment fields (ImageUrl,
// SellerId, ResellerId) may be nil for entries created before enrichment
// existed; checkout must tolerate partially-enriched items.
type CartItem struct {
	ProductId  uint64  `bson:"productId"`
	Name       string  `bson:"name"`
	Price      float64 `bson:"price"`
	Quantity   int32   `bson:"quantity"`
	Size       *string `bson:"size"`
	ImageUrl   *string `bson:"imageUrl"`
	SellerId   *uint64 `bson:"sellerId"`
	ResellerId *uint64 `bson:"resellerId"`
}

type Cart struct {
	SessionId string     `bson:"sessionId"`
	Key       string     `bson:"key"`
	Items     []CartItem `bson:"items"`
	UpdatedAt time.Time  `bson:"updatedAt"`
}

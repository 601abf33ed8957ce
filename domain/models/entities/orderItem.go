package entities

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem snapshots one cart line item at checkout time. Seller and reseller
// attribution are carried from the enriched cart item and may be nil.
type OrderItem struct {
	OrderItemId    uint64    `bson:"orderItemId"`
	OrderId        uint64    `bson:"orderId"`
	ProductId      uint64    `bson:"productId"`
	ProductName    string    `bson:"productName"`
	ProductPrice   float64   `bson:"productPrice"`
	Quantity       int32     `bson:"quantity"`
	Size           *string   `bson:"size"`
	ImageUrl       *string   `bson:"imageUrl"`
	ItemCommission float64   `bson:"itemCommission"`
	SellerId       *uint64   `bson:"sellerId"`
	ResellerId     *uint64   `bson:"resellerId"`
	CreatedAt      time.Time `bson:"createdAt"`
}

func GenerateOrderItemId() uint64 {
	var err error
	var bytes []byte
	var itemId uint32
	for {
		bytes, err = uuid.New().MarshalBinary()
		if err == nil {
			itemId = byteToHash(bytes)
			break
		}
	}
	return uint64(itemId)
}

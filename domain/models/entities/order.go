package entities

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	PendingStatus string = "pending"

	orderNumberPrefix string = "ORD-"
	orderNumberMax    int    = 20
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

type Order struct {
	OrderId         uint64      `bson:"orderId"`
	OrderNumber     string      `bson:"orderNumber"`
	CustomerName    string      `bson:"customerName"`
	CustomerEmail   string      `bson:"customerEmail"`
	CustomerPhone   string      `bson:"customerPhone"`
	ShippingAddress AddressInfo `bson:"shippingAddress"`
	BillingAddress  AddressInfo `bson:"billingAddress"`
	PaymentMethod   string      `bson:"paymentMethod"`
	Notes           string      `bson:"notes"`
	TotalAmount     float64     `bson:"totalAmount"`
	CommissionRate  float64     `bson:"commissionRate"`
	TotalCommission float64     `bson:"totalCommission"`
	Status          string      `bson:"status"`
	PaymentStatus   string      `bson:"paymentStatus"`
	CreatedAt       time.Time   `bson:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt"`
	DeletedAt       *time.Time  `bson:"deletedAt"`
}

type AddressInfo struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	ZipCode string `bson:"zipCode"`
	Country string `bson:"country"`
}

func GenerateOrderId() uint64 {
	var err error
	var bytes []byte
	var orderId uint32
	for {
		bytes, err = uuid.New().MarshalBinary()
		if err == nil {
			orderId = byteToHash(bytes)
			break
		}
	}
	return uint64(orderId)
}

func byteToHash(bytes []byte) uint32 {
	var h uint32 = 0
	for _, val := range bytes {
		h = 31*h + uint32(val&0xff)
	}
	return h
}

// GenerateOrderNumber builds a human-readable token from the current time in
// base36 plus a small random suffix, truncated to 20 characters. Uniqueness is
// probabilistic only; collisions are accepted as low-risk.
func GenerateOrderNumber() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	random := strconv.FormatInt(int64(rand.Intn(1000)), 36)
	number := orderNumberPrefix + timestamp + "-" + random
	if len(number) > orderNumberMax {
		number = number[:orderNumberMax]
	}
	return number
}

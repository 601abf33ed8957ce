package entities

import "time"

// Listing maps a reseller to a product it lists (the reseller_store
// collection). The relation is many-to-many; commission attribution takes the
// first mapping found for a product, which is a policy choice rather than an
// enforced invariant.
type Listing struct {
	ResellerId uint64    `bson:"resellerId"`
	ProductId  uint64    `bson:"productId"`
	CreatedAt  time.Time `bson:"createdAt"`
}

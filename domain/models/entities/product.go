package entities

import "time"

type Product struct {
	ProductId        uint64     `bson:"productId"`
	Name             string     `bson:"name"`
	Description      string     `bson:"description"`
	Price            float64    `bson:"price"`
	OriginalPrice    *float64   `bson:"originalPrice"`
	ImageUrl         string     `bson:"imageUrl"`
	Category         string     `bson:"category"`
	Size             string     `bson:"size"`
	Material         string     `bson:"material"`
	ManufacturedDate *time.Time `bson:"manufacturedDate"`
	Stock            *int32     `bson:"stock"`
	SellerId         *uint64    `bson:"sellerId"`
	CreatedAt        time.Time  `bson:"createdAt"`
	DeletedAt        *time.Time `bson:"deletedAt"`
}

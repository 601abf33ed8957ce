package catalog

import (
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

const placeholderImage = "/images/placeholder.png"

// PlaceholderProduct returns the fixed stand-in rendered when a product
// record cannot be fetched.
func PlaceholderProduct() *entities.Product {
	originalPrice := 99.99
	stock := int32(24)
	manufactured := time.Date(2024, time.November, 2, 0, 0, 0, 0, time.UTC)
	return &entities.Product{
		ProductId:        1,
		Name:             "Elegant Leather Sneakers",
		Description:      "Classic hand-stitched leather sneakers, comfortable, durable, and stylish for everyday wear.",
		Price:            79.99,
		OriginalPrice:    &originalPrice,
		ImageUrl:         placeholderImage,
		Category:         "Shoes",
		Size:             "M",
		Material:         "Full-grain leather",
		ManufacturedDate: &manufactured,
		Stock:            &stock,
	}
}

// PlaceholderReviews returns the fixed review list substituted when a
// product has no reviews.
func PlaceholderReviews() []*entities.Review {
	now := time.Now().UTC()
	return []*entities.Review{
		{
			ReviewId:  1,
			Rating:    5,
			Comment:   "Amazing quality, exactly as described!",
			Reviewer:  entities.ReviewerInfo{UserId: 1, FullName: "Amina"},
			CreatedAt: now,
		},
		{
			ReviewId:  2,
			Rating:    4,
			Comment:   "Very comfortable but ran a bit large for me.",
			Reviewer:  entities.ReviewerInfo{UserId: 2, FullName: "Bekele"},
			CreatedAt: now.AddDate(0, 0, -7),
		},
		{
			ReviewId:  3,
			Rating:    3,
			Comment:   "Nice design but the sole wore out after a month.",
			Reviewer:  entities.ReviewerInfo{UserId: 3, FullName: "Lydia"},
			CreatedAt: now.AddDate(0, -1, 0),
		},
	}
}

// PlaceholderSimilar returns the fixed similar-products strip.
func PlaceholderSimilar() []*entities.Product {
	return []*entities.Product{
		{ProductId: 2, Name: "Casual Runner", Price: 59.99, ImageUrl: placeholderImage, Category: "Shoes"},
		{ProductId: 3, Name: "Classic Loafer", Price: 89.99, ImageUrl: placeholderImage, Category: "Shoes"},
		{ProductId: 4, Name: "Sporty Sneaker", Price: 69.99, ImageUrl: placeholderImage, Category: "Shoes"},
		{ProductId: 5, Name: "High Top Canvas", Price: 49.99, ImageUrl: placeholderImage, Category: "Shoes"},
	}
}

// featuredProducts is the home page marketing list, served without a store
// round-trip.
func featuredProducts() []*entities.Product {
	return []*entities.Product{
		{ProductId: 1, Name: "Best Running Shoe", Price: 69.99, ImageUrl: "/images/shoe.jpg"},
		{ProductId: 2, Name: "Signature Perfume", Price: 59.99, ImageUrl: "/images/perfume.jpg"},
		{ProductId: 3, Name: "Everyday Shoe", Price: 24.99, ImageUrl: "/images/tshirt.jpg"},
		{ProductId: 4, Name: "Whey Protein Powder", Price: 34.99, ImageUrl: "/images/protein.jpg"},
	}
}

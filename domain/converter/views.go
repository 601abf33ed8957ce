package converter

import "time"

type ResellerView struct {
	UserId       uint64 `json:"id"`
	FullName     string `json:"full_name"`
	Description  string `json:"description,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type ProductView struct {
	ProductId     uint64   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	ImageUrl      string   `json:"image_url"`
	Category      string   `json:"category,omitempty"`
	Size          string   `json:"size,omitempty"`
	Material      string   `json:"material,omitempty"`
	Stock         *int32   `json:"stock,omitempty"`
}

type ReviewView struct {
	ReviewId     uint64    `json:"id"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer"`
	CreatedAt    time.Time `json:"created_at"`
}

type CartItemView struct {
	ProductId  uint64  `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int32   `json:"quantity"`
	Size       *string `json:"size,omitempty"`
	ImageUrl   *string `json:"image_url,omitempty"`
	SellerId   *uint64 `json:"seller_id,omitempty"`
	ResellerId *uint64 `json:"reseller_id,omitempty"`
}

type OrderView struct {
	OrderId         uint64    `json:"id"`
	OrderNumber     string    `json:"order_number"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	TotalAmount     float64   `json:"total_amount"`
	CommissionRate  float64   `json:"commission_rate"`
	TotalCommission float64   `json:"total_commission"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
}

type OrderItemView struct {
	OrderItemId    uint64  `json:"id"`
	ProductId      uint64  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	ProductPrice   float64 `json:"product_price"`
	Quantity       int32   `json:"quantity"`
	Size           *string `json:"size,omitempty"`
	ImageUrl       *string `json:"image_url,omitempty"`
	ItemCommission float64 `json:"item_commission"`
}

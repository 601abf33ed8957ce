package document_service

import (
	"testing"
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderReceipt(t *testing.T) {
	service := NewDocumentService("Sellarmy", "")

	order := &entities.Order{
		OrderId:      123,
		OrderNumber:  "ORD-m1abc-7f",
		CustomerName: "Hanna Tesfaye",
		TotalAmount:  55.50,
		Status:       entities.PendingStatus,
		CreatedAt:    time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC),
	}

	data, filename, err := service.GenerateOrderReceipt(order)
	require.Nil(t, err)
	require.Equal(t, "order-ORD-m1abc-7f.pdf", filename)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateOrderReceiptDefaultBrand(t *testing.T) {
	service := NewDocumentService("", "")

	data, _, err := service.GenerateOrderReceipt(&entities.Order{
		OrderNumber:  "ORD-x",
		CustomerName: "A",
		CreatedAt:    time.Now().UTC(),
	})
	require.Nil(t, err)
	require.NotEmpty(t, data)
}

func TestParseBrandColor(t *testing.T) {
	r, g, b := parseBrandColor("#ff8000")
	assert.Equal(t, 255, r)
	assert.Equal(t, 128, g)
	assert.Equal(t, 0, b)

	// empty and unparsable values fall back to the banner green
	r, g, b = parseBrandColor("")
	assert.Equal(t, 0, r)
	assert.Equal(t, 51, g)
	assert.Equal(t, 3, b)

	r, g, b = parseBrandColor("zzzzzz")
	assert.Equal(t, 0, r)
	assert.Equal(t, 51, g)
	assert.Equal(t, 3, b)
}

func TestGenerateOrderReceiptCustomBrandColor(t *testing.T) {
	service := NewDocumentService("Sellarmy", "1a2b3c")

	data, _, err := service.GenerateOrderReceipt(&entities.Order{
		OrderNumber:  "ORD-x",
		CustomerName: "A",
		CreatedAt:    time.Now().UTC(),
	})
	require.Nil(t, err)
	require.NotEmpty(t, data)
}

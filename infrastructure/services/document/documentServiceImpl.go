package document_service

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

const (
	pageMargin   float64 = 20
	bannerHeight float64 = 30

	defaultBrandColor string = "003303"
)

type iDocumentServiceImpl struct {
	brandName string
	bannerR   int
	bannerG   int
	bannerB   int
}

func NewDocumentService(brandName, brandColor string) IDocumentService {
	if brandName == "" {
		brandName = "Sellarmy"
	}
	r, g, b := parseBrandColor(brandColor)
	return &iDocumentServiceImpl{brandName: brandName, bannerR: r, bannerG: g, bannerB: b}
}

// parseBrandColor reads a 6-digit hex color, with or without a leading "#".
// Anything unparsable falls back to the default banner green.
func parseBrandColor(brandColor string) (int, int, int) {
	brandColor = strings.TrimPrefix(brandColor, "#")
	if len(brandColor) != 6 {
		brandColor = defaultBrandColor
	}

	value, err := strconv.ParseUint(brandColor, 16, 32)
	if err != nil {
		value, _ = strconv.ParseUint(defaultBrandColor, 16, 32)
	}

	return int(value >> 16 & 0xff), int(value >> 8 & 0xff), int(value & 0xff)
}

func (service iDocumentServiceImpl) GenerateOrderReceipt(order *entities.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	// brand banner
	pdf.SetFillColor(service.bannerR, service.bannerG, service.bannerB)
	pdf.Rect(0, 0, pageWidth, bannerHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(pageMargin, 20, service.brandName)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 24)
	pdf.Text(pageMargin, 50, "Order Confirmation")

	// details box
	pdf.SetFillColor(245, 245, 245)
	pdf.RoundedRect(pageMargin, 60, contentWidth, 80, 3, "1234", "F")
	pdf.SetFontSize(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pageMargin+10, 75, "Order Number:")
	pdf.Text(pageMargin+10, 85, "Customer Name:")
	pdf.Text(pageMargin+10, 95, "Order Total:")
	pdf.Text(pageMargin+10, 105, "Order Status:")
	pdf.Text(pageMargin+10, 115, "Order Date:")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pageMargin+50, 75, order.OrderNumber)
	pdf.Text(pageMargin+50, 85, order.CustomerName)
	pdf.Text(pageMargin+50, 95, fmt.Sprintf("$%.2f", order.TotalAmount))
	pdf.Text(pageMargin+50, 105, titleCase(order.Status))
	pdf.Text(pageMargin+50, 115, order.CreatedAt.Format("1/2/2006"))

	// thank-you block
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(pageMargin, 150, "Thank you for your purchase!")
	pdf.SetFontSize(12)
	pdf.Text(pageMargin, 160, "Your order has been received and is being processed.")
	pdf.Text(pageMargin, 170, "You will receive an email confirmation shortly.")

	// footer
	pdf.SetFontSize(10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(pageMargin, 250, "For questions about your order, please contact our customer support.")
	pdf.Text(pageMargin, 260, "Generated on "+time.Now().Format("1/2/2006"))

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, "", errors.Wrap(err, "pdf render failed")
	}

	filename := "order-" + order.OrderNumber + ".pdf"
	return buffer.Bytes(), filename, nil
}

func titleCase(status string) string {
	if status == "" {
		return status
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

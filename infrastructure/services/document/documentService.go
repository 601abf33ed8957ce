package document_service

import (
	"github.com/May-nib/sellarmy/domain/models/entities"
)

type IDocumentService interface {
	// GenerateOrderReceipt renders the fixed-layout A4 receipt from the
	// order header alone and returns the document bytes plus the
	// download filename.
	GenerateOrderReceipt(order *entities.Order) ([]byte, string, error)
}

package confirmation

import (
	"context"

	order_repository "github.com/May-nib/sellarmy/domain/models/repository/order"
	orderitem_repository "github.com/May-nib/sellarmy/domain/models/repository/orderitem"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	document_service "github.com/May-nib/sellarmy/infrastructure/services/document"
	"github.com/pkg/errors"
)

type iConfirmationServiceImpl struct {
	orderRepository     order_repository.IOrderRepository
	orderItemRepository orderitem_repository.IOrderItemRepository
	documentService     document_service.IDocumentService
}

func NewConfirmationService(orderRepository order_repository.IOrderRepository,
	orderItemRepository orderitem_repository.IOrderItemRepository,
	documentService document_service.IDocumentService) IConfirmationService {
	return &iConfirmationServiceImpl{
		orderRepository:     orderRepository,
		orderItemRepository: orderItemRepository,
		documentService:     documentService,
	}
}

func (service iConfirmationServiceImpl) OrderSummary(ctx context.Context, orderId uint64) (*OrderSummary, error) {
	order, err := service.orderRepository.FindById(ctx, orderId)
	if err != nil {
		if err == order_repository.ErrorOrderNotFound {
			return nil, ErrorOrderNotFound
		}
		return nil, errors.Wrap(err, "order fetch failed")
	}

	// line items are decoration on the summary, their absence is not an
	// error state
	items, err := service.orderItemRepository.FindAllByOrderId(ctx, orderId)
	if err != nil {
		applog.GLog.Logger.Warn("order items fetch failed, summary rendered without items",
			"fn", "OrderSummary",
			"oid", orderId,
			"error", err)
		items = nil
	}

	return &OrderSummary{Order: order, Items: items}, nil
}

func (service iConfirmationServiceImpl) OrderReceipt(ctx context.Context, orderId uint64) ([]byte, string, error) {
	order, err := service.orderRepository.FindById(ctx, orderId)
	if err != nil {
		if err == order_repository.ErrorOrderNotFound {
			return nil, "", ErrorOrderNotFound
		}
		return nil, "", errors.Wrap(err, "order fetch failed")
	}

	return service.documentService.GenerateOrderReceipt(order)
}

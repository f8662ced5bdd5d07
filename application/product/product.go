package product

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/getinmotion/telar-sub006/constant"
	"github.com/getinmotion/telar-sub006/model"
	productrepo "github.com/getinmotion/telar-sub006/repository/product"
	"github.com/getinmotion/telar-sub006/thirdparty/rabbitmq"
	"github.com/getinmotion/telar-sub006/utils/errors"
	"github.com/getinmotion/telar-sub006/utils/logger"
)

type ProductApp interface {
	GetShopProducts(ctx context.Context, shopID string) ([]model.Product, error)
	UpdateModeration(ctx context.Context, productID string, req *model.UpdateModerationRequest) (*model.Product, error)
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
	publisher   *rabbitmq.Publisher
}

func NewProductApp(productRepo productrepo.ProductRepository, publisher *rabbitmq.Publisher) ProductApp {
	return &productAppImpl{productRepo: productRepo, publisher: publisher}
}

func (s *productAppImpl) GetShopProducts(ctx context.Context, shopID string) ([]model.Product, error) {
	if shopID == "" {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "El ID de la tienda es obligatorio")
	}

	products, err := s.productRepo.ListByShop(ctx, shopID)
	if err != nil {
		logger.Error("[GetShopProducts] error productRepo.ListByShop", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}

// UpdateModeration changes a product's review state. Moderation drives the
// featured-shop qualification, so a moderated event is published afterwards
// to invalidate the featured cache downstream.
func (s *productAppImpl) UpdateModeration(ctx context.Context, productID string, req *model.UpdateModerationRequest) (*model.Product, error) {
	if productID == "" {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "El ID del producto es obligatorio")
	}
	if !constant.IsValidModerationStatus(req.Status) {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Estado de moderación inválido: %s", req.Status)
	}

	current, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[UpdateModeration] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Producto con ID %s no encontrado", productID)
	}

	if err := s.productRepo.UpdateModeration(ctx, productID, req.Status, req.Note); err != nil {
		logger.Error("[UpdateModeration] error productRepo.UpdateModeration", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[UpdateModeration] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.ShopEventMessage{
			Event:      constant.ProductEventModerated,
			ShopID:     current.ShopID,
			ProductID:  productID,
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishShopEvent(msg); err != nil {
			logger.Error("[UpdateModeration] err publisher.PublishShopEvent", zap.String("error", err.Error()))
		}
	}

	return updated, nil
}

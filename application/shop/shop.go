package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/getinmotion/telar-sub006/cmd/config"
	"github.com/getinmotion/telar-sub006/constant"
	"github.com/getinmotion/telar-sub006/model"
	redisrepo "github.com/getinmotion/telar-sub006/repository/redis"
	shoprepo "github.com/getinmotion/telar-sub006/repository/shop"
	txrepo "github.com/getinmotion/telar-sub006/repository/tx"
	"github.com/getinmotion/telar-sub006/thirdparty/rabbitmq"
	"github.com/getinmotion/telar-sub006/utils/errors"
	"github.com/getinmotion/telar-sub006/utils/logger"
)

type ShopApp interface {
	List(ctx context.Context, query *model.ShopListQuery) (*model.ShopListResponse, error)
	GetFeatured(ctx context.Context, limit int) ([]model.Shop, error)
	GetActive(ctx context.Context) ([]model.Shop, error)
	GetWithCompletedProfile(ctx context.Context) ([]model.Shop, error)
	GetByID(ctx context.Context, id string) (*model.Shop, error)
	GetBySlug(ctx context.Context, slug string) (*model.Shop, error)
	GetByUserID(ctx context.Context, userID string) (*model.Shop, error)
	GetByDepartment(ctx context.Context, department string) ([]model.Shop, error)
	GetByMunicipality(ctx context.Context, municipality string) ([]model.Shop, error)
	Create(ctx context.Context, req *model.CreateShopRequest) (*model.Shop, error)
	Update(ctx context.Context, id string, patch *model.UpdateShopRequest) (*model.Shop, error)
	Delete(ctx context.Context, id string) (*model.DeleteShopResponse, error)
}

type shopAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	shopRepo  shoprepo.ShopRepository
	redisRepo redisrepo.Repository
	publisher *rabbitmq.Publisher
}

func NewShopApp(config *config.Config, txRepo txrepo.TxRepository, shopRepo shoprepo.ShopRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) ShopApp {
	return &shopAppImpl{
		config:    config,
		txRepo:    txRepo,
		shopRepo:  shopRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

func (s *shopAppImpl) List(ctx context.Context, query *model.ShopListQuery) (*model.ShopListResponse, error) {
	if query == nil {
		query = &model.ShopListQuery{}
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 {
		limit = constant.DefaultListLimit
	}
	if limit > constant.MaxListLimit {
		limit = constant.MaxListLimit
	}

	filter := &model.ShopFilter{
		Active:              query.Active,
		PublishStatus:       query.PublishStatus,
		MarketplaceApproved: query.MarketplaceApproved,
		Featured:            query.Featured,
		HasApprovedProducts: query.HasApprovedProducts != nil && *query.HasApprovedProducts,
		ShopSlug:            query.ShopSlug,
		Region:              query.Region,
		CraftType:           query.CraftType,
	}

	shops, total, err := s.shopRepo.List(ctx, filter,
		model.ShopPage{Page: page, Limit: limit},
		model.ShopSort{SortBy: query.SortBy, Order: query.Order})
	if err != nil {
		logger.Error("[List] error shopRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// The approved-products join yields one row per matching product, so the
	// same shop can come back several times; keep the first occurrence only.
	// total still counts the joined row set (observed behavior, see tests).
	if filter.HasApprovedProducts {
		shops = dedupeByID(shops)
	}

	return &model.ShopListResponse{
		Data:  shops,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *shopAppImpl) GetFeatured(ctx context.Context, limit int) ([]model.Shop, error) {
	if limit <= 0 {
		limit = constant.DefaultFeaturedSize
	}

	cached, err := s.redisRepo.GetFeaturedShops(ctx, limit)
	if err != nil {
		logger.Warn("[GetFeatured] error reading featured cache", zap.String("error", err.Error()))
	} else if cached != nil {
		return cached, nil
	}

	ids, err := s.shopRepo.FeaturedIDs(ctx, limit)
	if err != nil {
		logger.Error("[GetFeatured] error shopRepo.FeaturedIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(ids) == 0 {
		return []model.Shop{}, nil
	}

	// Phase 2 re-sorts by creation time; phase 1 order is database-dependent.
	shops, err := s.shopRepo.GetByIDs(ctx, ids, limit)
	if err != nil {
		logger.Error("[GetFeatured] error shopRepo.GetByIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetFeaturedShops(ctx, limit, shops, s.config.Cache.FeaturedTTL); err != nil {
		logger.Warn("[GetFeatured] error writing featured cache", zap.String("error", err.Error()))
	}

	return shops, nil
}

func (s *shopAppImpl) GetActive(ctx context.Context) ([]model.Shop, error) {
	shops, err := s.shopRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[GetActive] error shopRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return shops, nil
}

func (s *shopAppImpl) GetWithCompletedProfile(ctx context.Context) ([]model.Shop, error) {
	shops, err := s.shopRepo.ListCompletedProfile(ctx)
	if err != nil {
		logger.Error("[GetWithCompletedProfile] error shopRepo.ListCompletedProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return shops, nil
}

func (s *shopAppImpl) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	if id == "" {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "El ID de la tienda es obligatorio")
	}

	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] error shopRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if shop == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Tienda con ID %s no encontrada", id)
	}
	return shop, nil
}

func (s *shopAppImpl) GetBySlug(ctx context.Context, slug string) (*model.Shop, error) {
	if slug == "" {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "El slug de la tienda es obligatorio")
	}

	shop, err := s.shopRepo.GetBySlug(ctx, slug)
	if err != nil {
		logger.Error("[GetBySlug] error shopRepo.GetBySlug", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if shop == nil {
		return nil, errors.SetCustomErrorf(constant.ErrNotFound, "Tienda con slug %s no encontrada", slug)
	}
	return shop, nil
}

// GetByUserID returns nil without error when the user has no shop yet;
// absence is meaningful for the zero-or-one relationship.
func (s *shopAppImpl) GetByUserID(ctx context.Context, userID string) (*model.Shop, error) {
	if userID == "" {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "El ID del usuario es obligatorio")
	}

	shop, err := s.shopRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("[GetByUserID] error shopRepo.GetByUserID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return shop, nil
}

func (s *shopAppImpl) GetByDepartment(ctx context.Context, department string) ([]model.Shop, error) {
	shops, err := s.shopRepo.ListByDepartment(ctx, department)
	if err != nil {
		logger.Error("[GetByDepartment] error shopRepo.ListByDepartment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return shops, nil
}

func (s *shopAppImpl) GetByMunicipality(ctx context.Context, municipality string) ([]model.Shop, error) {
	shops, err := s.shopRepo.ListByMunicipality(ctx, municipality)
	if err != nil {
		logger.Error("[GetByMunicipality] error shopRepo.ListByMunicipality", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return shops, nil
}

func (s *shopAppImpl) Create(ctx context.Context, req *model.CreateShopRequest) (*model.Shop, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Create] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Pre-checks are an early exit, not the real guarantee; the unique index
	// on shop_slug closes the check-then-act window under concurrent writes.
	existing, err := s.shopRepo.GetBySlugTx(ctx, tx, req.ShopSlug)
	if err != nil {
		logger.Error("[Create] err shopRepo.GetBySlugTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomErrorf(constant.ErrConflict, "Ya existe una tienda con el slug %s", req.ShopSlug)
	}

	owned, err := s.shopRepo.GetByUserIDTx(ctx, tx, req.UserID)
	if err != nil {
		logger.Error("[Create] err shopRepo.GetByUserIDTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if owned != nil {
		return nil, errors.SetCustomErrorf(constant.ErrConflict, "El usuario ya tiene una tienda registrada")
	}

	entity := newShopFromRequest(req)
	if err := s.shopRepo.InsertShopTx(ctx, tx, entity); err != nil {
		logger.Error("[Create] err shopRepo.InsertShopTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Create] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	created, err := s.shopRepo.GetByID(ctx, entity.ID)
	if err != nil {
		logger.Error("[Create] err shopRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishEvent(constant.ShopEventCreated, entity.ID, entity.UserID)
	return created, nil
}

func (s *shopAppImpl) Update(ctx context.Context, id string, patch *model.UpdateShopRequest) (*model.Shop, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Update] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if patch.ShopSlug != nil && *patch.ShopSlug != current.ShopSlug {
		other, err := s.shopRepo.GetBySlugTx(ctx, tx, *patch.ShopSlug)
		if err != nil {
			logger.Error("[Update] err shopRepo.GetBySlugTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil && other.ID != id {
			return nil, errors.SetCustomErrorf(constant.ErrConflict, "Ya existe una tienda con el slug %s", *patch.ShopSlug)
		}
	}

	if err := s.shopRepo.UpdateShopTx(ctx, tx, id, patch); err != nil {
		logger.Error("[Update] err shopRepo.UpdateShopTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Re-fetch so the caller observes the authoritative joined row, not the
	// raw update result.
	updated, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Update] err shopRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishEvent(constant.ShopEventUpdated, id, current.UserID)
	return updated, nil
}

func (s *shopAppImpl) Delete(ctx context.Context, id string) (*model.DeleteShopResponse, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.shopRepo.Delete(ctx, id); err != nil {
		logger.Error("[Delete] err shopRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishEvent(constant.ShopEventDeleted, id, current.UserID)
	return &model.DeleteShopResponse{
		Message: fmt.Sprintf("Tienda %s eliminada exitosamente", id),
	}, nil
}

func (s *shopAppImpl) publishEvent(event, shopID, userID string) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.ShopEventMessage{
		Event:      event,
		ShopID:     shopID,
		UserID:     userID,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishShopEvent(msg); err != nil {
		logger.Error("[publishEvent] err publisher.PublishShopEvent", zap.String("event", event), zap.String("error", err.Error()))
	}
}

// dedupeByID keeps the first occurrence of each shop, preserving order.
func dedupeByID(shops []model.Shop) []model.Shop {
	seen := make(map[string]struct{}, len(shops))
	out := make([]model.Shop, 0, len(shops))
	for _, shop := range shops {
		if _, ok := seen[shop.ID]; ok {
			continue
		}
		seen[shop.ID] = struct{}{}
		out = append(out, shop)
	}
	return out
}

// newShopFromRequest applies the entity defaults for absent optional fields.
func newShopFromRequest(req *model.CreateShopRequest) *model.Shop {
	newUUID, _ := uuid.NewRandom()

	shop := &model.Shop{
		ID:                        newUUID.String(),
		UserID:                    req.UserID,
		ShopName:                  req.ShopName,
		ShopSlug:                  req.ShopSlug,
		Description:               req.Description,
		Story:                     req.Story,
		LogoURL:                   req.LogoURL,
		BannerURL:                 req.BannerURL,
		CraftType:                 req.CraftType,
		Region:                    req.Region,
		Department:                req.Department,
		Municipality:              req.Municipality,
		Certifications:            req.Certifications,
		Active:                    true,
		PrivacyLevel:              constant.PrivacyLevelPublic,
		CreationStatus:            constant.CreationStatusComplete,
		PrimaryColors:             req.PrimaryColors,
		SecondaryColors:           req.SecondaryColors,
		BrandClaim:                req.BrandClaim,
		ArtisanProfile:            req.ArtisanProfile,
		ActiveThemeID:             req.ActiveThemeID,
		PublishStatus:             constant.PublishStatusPending,
		BankDataStatus:            constant.BankDataStatusNotSet,
		MarketplaceApprovalStatus: constant.MarketplaceApprovalPending,
		HeroConfig:                model.HeroConfig{Slides: []model.HeroSlide{}, Autoplay: true, Duration: 5000},
	}

	if req.ContactInfo != nil {
		shop.ContactInfo = *req.ContactInfo
	}
	if req.SocialLinks != nil {
		shop.SocialLinks = *req.SocialLinks
	}
	if req.SEOData != nil {
		shop.SEOData = *req.SEOData
	}
	if req.Active != nil {
		shop.Active = *req.Active
	}
	if req.Featured != nil {
		shop.Featured = *req.Featured
	}
	if req.ServientregaCoverage != nil {
		shop.ServientregaCoverage = *req.ServientregaCoverage
	}
	if req.PrivacyLevel != nil {
		shop.PrivacyLevel = *req.PrivacyLevel
	}
	if req.CreationStatus != nil {
		shop.CreationStatus = *req.CreationStatus
	}
	if req.CreationStep != nil {
		shop.CreationStep = *req.CreationStep
	}
	if req.HeroConfig != nil {
		shop.HeroConfig = *req.HeroConfig
	}
	if req.AboutContent != nil {
		shop.AboutContent = *req.AboutContent
	}
	if req.ContactConfig != nil {
		shop.ContactConfig = *req.ContactConfig
	}
	if req.ArtisanProfileCompleted != nil {
		shop.ArtisanProfileCompleted = *req.ArtisanProfileCompleted
	}
	if req.PublishStatus != nil {
		shop.PublishStatus = *req.PublishStatus
	}
	if req.BankDataStatus != nil {
		shop.BankDataStatus = *req.BankDataStatus
	}
	if req.MarketplaceApprovalStatus != nil {
		shop.MarketplaceApprovalStatus = *req.MarketplaceApprovalStatus
	}
	return shop
}

package shop_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appshop "github.com/getinmotion/telar-sub006/application/shop"
	"github.com/getinmotion/telar-sub006/cmd/config"
	"github.com/getinmotion/telar-sub006/constant"
	redismocks "github.com/getinmotion/telar-sub006/mocks/repository/redis"
	shopmocks "github.com/getinmotion/telar-sub006/mocks/repository/shop"
	txmocks "github.com/getinmotion/telar-sub006/mocks/repository/tx"
	"github.com/getinmotion/telar-sub006/model"
	cerr "github.com/getinmotion/telar-sub006/utils/errors"
)

// Note: shop.go checks if publisher is nil before publishing events,
// so tests can use a nil publisher without panicking.

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			FeaturedTTL: time.Minute,
		},
	}
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestShopApp_List(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		shopRepo  *shopmocks.ShopRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx   context.Context
		query *model.ShopListQuery
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ShopListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: defaults applied when query is empty",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:   context.Background(),
				query: &model.ShopListQuery{},
			},
			mockCall: func(f fields) {
				f.shopRepo.
					On("List", mock.Anything, &model.ShopFilter{},
						model.ShopPage{Page: 1, Limit: 20},
						model.ShopSort{}).
					Return([]model.Shop{{ID: "a1"}, {ID: "b2"}}, int64(2), nil).
					Once()
			},
			want: &model.ShopListResponse{
				Data:  []model.Shop{{ID: "a1"}, {ID: "b2"}},
				Total: 2,
				Page:  1,
				Limit: 20,
			},
		},
		{
			name: "success: limit above maximum is clamped to 100",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:   context.Background(),
				query: &model.ShopListQuery{Page: 3, Limit: 500},
			},
			mockCall: func(f fields) {
				f.shopRepo.
					On("List", mock.Anything, &model.ShopFilter{},
						model.ShopPage{Page: 3, Limit: 100},
						model.ShopSort{}).
					Return([]model.Shop{}, int64(0), nil).
					Once()
			},
			want: &model.ShopListResponse{
				Data:  []model.Shop{},
				Total: 0,
				Page:  3,
				Limit: 100,
			},
		},
		{
			name: "success: hasApprovedProducts dedupes rows but keeps joined total",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				query: &model.ShopListQuery{
					HasApprovedProducts: boolPtr(true),
				},
			},
			mockCall: func(f fields) {
				// A shop with three approved products joins into three rows.
				f.shopRepo.
					On("List", mock.Anything,
						&model.ShopFilter{HasApprovedProducts: true},
						model.ShopPage{Page: 1, Limit: 20},
						model.ShopSort{}).
					Return([]model.Shop{
						{ID: "a1", ShopName: "Telar Andino"},
						{ID: "a1", ShopName: "Telar Andino"},
						{ID: "a1", ShopName: "Telar Andino"},
					}, int64(3), nil).
					Once()
			},
			want: &model.ShopListResponse{
				Data:  []model.Shop{{ID: "a1", ShopName: "Telar Andino"}},
				Total: 3,
				Page:  1,
				Limit: 20,
			},
		},
		{
			name: "success: dedup preserves first occurrence order",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				query: &model.ShopListQuery{
					HasApprovedProducts: boolPtr(true),
				},
			},
			mockCall: func(f fields) {
				f.shopRepo.
					On("List", mock.Anything,
						&model.ShopFilter{HasApprovedProducts: true},
						model.ShopPage{Page: 1, Limit: 20},
						model.ShopSort{}).
					Return([]model.Shop{
						{ID: "b2"}, {ID: "a1"}, {ID: "b2"}, {ID: "c3"},
					}, int64(4), nil).
					Once()
			},
			want: &model.ShopListResponse{
				Data:  []model.Shop{{ID: "b2"}, {ID: "a1"}, {ID: "c3"}},
				Total: 4,
				Page:  1,
				Limit: 20,
			},
		},
		{
			name: "error: repository List fails",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:   context.Background(),
				query: &model.ShopListQuery{},
			},
			mockCall: func(f fields) {
				f.shopRepo.
					On("List", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, int64(0), errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appshop.NewShopApp(testConfig(), tt.fields.txRepo, tt.fields.shopRepo, tt.fields.redisRepo, nil)

			got, err := app.List(tt.args.ctx, tt.args.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("List() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_GetFeatured(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		shopRepo  *shopmocks.ShopRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		limit    int
		mockCall func(f fields)
		want     []model.Shop
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: cache hit skips the database",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			limit: 4,
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetFeaturedShops", mock.Anything, 4).
					Return([]model.Shop{{ID: "a1"}}, nil).
					Once()
			},
			want: []model.Shop{{ID: "a1"}},
		},
		{
			name: "success: no qualifying shops short-circuits to empty slice",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			limit: 8,
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetFeaturedShops", mock.Anything, 8).
					Return(nil, nil).
					Once()
				f.shopRepo.
					On("FeaturedIDs", mock.Anything, 8).
					Return([]string{}, nil).
					Once()
			},
			want: []model.Shop{},
		},
		{
			name: "success: cache miss fetches rows and writes the cache",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			limit: 2,
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetFeaturedShops", mock.Anything, 2).
					Return(nil, nil).
					Once()
				f.shopRepo.
					On("FeaturedIDs", mock.Anything, 2).
					Return([]string{"a1", "b2"}, nil).
					Once()
				f.shopRepo.
					On("GetByIDs", mock.Anything, []string{"a1", "b2"}, 2).
					Return([]model.Shop{{ID: "b2"}, {ID: "a1"}}, nil).
					Once()
				f.redisRepo.
					On("SetFeaturedShops", mock.Anything, 2, []model.Shop{{ID: "b2"}, {ID: "a1"}}, time.Minute).
					Return(nil).
					Once()
			},
			want: []model.Shop{{ID: "b2"}, {ID: "a1"}},
		},
		{
			name: "success: non-positive limit falls back to default size",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			limit: 0,
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetFeaturedShops", mock.Anything, constant.DefaultFeaturedSize).
					Return([]model.Shop{{ID: "a1"}}, nil).
					Once()
			},
			want: []model.Shop{{ID: "a1"}},
		},
		{
			name: "success: cache read failure degrades to database read",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			limit: 3,
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetFeaturedShops", mock.Anything, 3).
					Return(nil, errors.New("redis down")).
					Once()
				f.shopRepo.
					On("FeaturedIDs", mock.Anything, 3).
					Return([]string{"a1"}, nil).
					Once()
				f.shopRepo.
					On("GetByIDs", mock.Anything, []string{"a1"}, 3).
					Return([]model.Shop{{ID: "a1"}}, nil).
					Once()
				f.redisRepo.
					On("SetFeaturedShops", mock.Anything, 3, []model.Shop{{ID: "a1"}}, time.Minute).
					Return(nil).
					Once()
			},
			want: []model.Shop{{ID: "a1"}},
		},
		{
			name: "error: FeaturedIDs fails",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			limit: 8,
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetFeaturedShops", mock.Anything, 8).
					Return(nil, nil).
					Once()
				f.shopRepo.
					On("FeaturedIDs", mock.Anything, 8).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appshop.NewShopApp(testConfig(), tt.fields.txRepo, tt.fields.shopRepo, tt.fields.redisRepo, nil)

			got, err := app.GetFeatured(context.Background(), tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetFeatured() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetFeatured() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_GetByID(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		shopRepo  *shopmocks.ShopRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		want     *model.Shop
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: "a1",
			mockCall: func(f fields) {
				f.shopRepo.
					On("GetByID", mock.Anything, "a1").
					Return(&model.Shop{ID: "a1", ShopName: "Telar Andino"}, nil).
					Once()
			},
			want: &model.Shop{ID: "a1", ShopName: "Telar Andino"},
		},
		{
			name: "error: empty id rejected before querying",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id:      "",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown id",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: "missing",
			mockCall: func(f fields) {
				f.shopRepo.
					On("GetByID", mock.Anything, "missing").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appshop.NewShopApp(testConfig(), tt.fields.txRepo, tt.fields.shopRepo, tt.fields.redisRepo, nil)

			got, err := app.GetByID(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetByID() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_GetByUserID(t *testing.T) {
	t.Run("success: user without shop returns nil and no error", func(t *testing.T) {
		shopRepo := shopmocks.NewShopRepository(t)
		shopRepo.
			On("GetByUserID", mock.Anything, "u1").
			Return(nil, nil).
			Once()

		app := appshop.NewShopApp(testConfig(), txmocks.NewTxRepository(t), shopRepo, redismocks.NewRedisRepository(t), nil)

		got, err := app.GetByUserID(context.Background(), "u1")
		if err != nil {
			t.Fatalf("GetByUserID() error = %v", err)
		}
		if got != nil {
			t.Fatalf("GetByUserID() = %+v, want nil", got)
		}
	})

	t.Run("error: empty user id", func(t *testing.T) {
		app := appshop.NewShopApp(testConfig(), txmocks.NewTxRepository(t), shopmocks.NewShopRepository(t), redismocks.NewRedisRepository(t), nil)

		_, err := app.GetByUserID(context.Background(), "")
		if err == nil {
			t.Fatal("GetByUserID() expected error")
		}
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestShopApp_Create(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		shopRepo  *shopmocks.ShopRepository
		redisRepo *redismocks.RedisRepository
	}
	req := &model.CreateShopRequest{
		UserID:   "7f9c24e5-1bcb-4a33-9f21-1c8a3b5d6e7f",
		ShopName: "Telar Andino",
		ShopSlug: "telar-andino",
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CreateShopRequest
		mockCall func(f fields)
		want     *model.Shop
		wantErr  bool
		errCode  constant.ErrorType
		errMsg   string
	}{
		{
			name: "success: shop created with entity defaults",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: req,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shopRepo.
					On("GetBySlugTx", mock.Anything, tx, "telar-andino").
					Return(nil, nil).
					Once()
				f.shopRepo.
					On("GetByUserIDTx", mock.Anything, tx, req.UserID).
					Return(nil, nil).
					Once()
				f.shopRepo.
					On("InsertShopTx", mock.Anything, tx, mock.MatchedBy(func(shop *model.Shop) bool {
						return shop.ID != "" &&
							shop.UserID == req.UserID &&
							shop.ShopSlug == "telar-andino" &&
							shop.Active &&
							shop.PrivacyLevel == constant.PrivacyLevelPublic &&
							shop.PublishStatus == constant.PublishStatusPending &&
							shop.MarketplaceApprovalStatus == constant.MarketplaceApprovalPending &&
							shop.HeroConfig.Autoplay &&
							shop.HeroConfig.Duration == 5000
					})).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.shopRepo.
					On("GetByID", mock.Anything, mock.AnythingOfType("string")).
					Return(&model.Shop{ShopSlug: "telar-andino", ShopName: "Telar Andino"}, nil).
					Once()
			},
			want: &model.Shop{ShopSlug: "telar-andino", ShopName: "Telar Andino"},
		},
		{
			name: "error: slug already taken",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: req,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shopRepo.
					On("GetBySlugTx", mock.Anything, tx, "telar-andino").
					Return(&model.Shop{ID: "other", ShopSlug: "telar-andino"}, nil).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
			errMsg:  "Ya existe una tienda con el slug telar-andino",
		},
		{
			name: "error: user already owns a shop",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: req,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shopRepo.
					On("GetBySlugTx", mock.Anything, tx, "telar-andino").
					Return(nil, nil).
					Once()
				f.shopRepo.
					On("GetByUserIDTx", mock.Anything, tx, req.UserID).
					Return(&model.Shop{ID: "existing", UserID: req.UserID}, nil).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
			errMsg:  "El usuario ya tiene una tienda registrada",
		},
		{
			name: "error: insert fails",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: req,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shopRepo.
					On("GetBySlugTx", mock.Anything, tx, "telar-andino").
					Return(nil, nil).
					Once()
				f.shopRepo.
					On("GetByUserIDTx", mock.Anything, tx, req.UserID).
					Return(nil, nil).
					Once()
				f.shopRepo.
					On("InsertShopTx", mock.Anything, tx, mock.AnythingOfType("*model.Shop")).
					Return(errors.New("insert failed")).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appshop.NewShopApp(testConfig(), tt.fields.txRepo, tt.fields.shopRepo, tt.fields.redisRepo, nil)

			got, err := app.Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Fatalf("error message = %q, want %q", err.Error(), tt.errMsg)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Create() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_Update(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		shopRepo  *shopmocks.ShopRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		patch    *model.UpdateShopRequest
		mockCall func(f fields)
		want     *model.Shop
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: keeping the same slug skips the conflict check",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: "a1",
			patch: &model.UpdateShopRequest{
				ShopSlug: strPtr("telar-andino"),
				ShopName: strPtr("Telar Andino Renovado"),
			},
			mockCall: func(f fields) {
				f.shopRepo.
					On("GetByID", mock.Anything, "a1").
					Return(&model.Shop{ID: "a1", ShopSlug: "telar-andino"}, nil).
					Once()
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shopRepo.
					On("UpdateShopTx", mock.Anything, tx, "a1", mock.AnythingOfType("*model.UpdateShopRequest")).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.shopRepo.
					On("GetByID", mock.Anything, "a1").
					Return(&model.Shop{ID: "a1", ShopSlug: "telar-andino", ShopName: "Telar Andino Renovado"}, nil).
					Once()
			},
			want: &model.Shop{ID: "a1", ShopSlug: "telar-andino", ShopName: "Telar Andino Renovado"},
		},
		{
			name: "error: new slug collides with another shop",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: "a1",
			patch: &model.UpdateShopRequest{
				ShopSlug: strPtr("taller-nuevo"),
			},
			mockCall: func(f fields) {
				f.shopRepo.
					On("GetByID", mock.Anything, "a1").
					Return(&model.Shop{ID: "a1", ShopSlug: "telar-andino"}, nil).
					Once()
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shopRepo.
					On("GetBySlugTx", mock.Anything, tx, "taller-nuevo").
					Return(&model.Shop{ID: "b2", ShopSlug: "taller-nuevo"}, nil).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: shop does not exist",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				shopRepo:  shopmocks.NewShopRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id:    "missing",
			patch: &model.UpdateShopRequest{ShopName: strPtr("Nuevo Nombre")},
			mockCall: func(f fields) {
				f.shopRepo.
					On("GetByID", mock.Anything, "missing").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appshop.NewShopApp(testConfig(), tt.fields.txRepo, tt.fields.shopRepo, tt.fields.redisRepo, nil)

			got, err := app.Update(context.Background(), tt.id, tt.patch)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Update() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_Delete(t *testing.T) {
	t.Run("success: confirmation message names the id", func(t *testing.T) {
		shopRepo := shopmocks.NewShopRepository(t)
		shopRepo.
			On("GetByID", mock.Anything, "a1").
			Return(&model.Shop{ID: "a1", UserID: "u1"}, nil).
			Once()
		shopRepo.
			On("Delete", mock.Anything, "a1").
			Return(nil).
			Once()

		app := appshop.NewShopApp(testConfig(), txmocks.NewTxRepository(t), shopRepo, redismocks.NewRedisRepository(t), nil)

		got, err := app.Delete(context.Background(), "a1")
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		want := &model.DeleteShopResponse{Message: "Tienda a1 eliminada exitosamente"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Delete() = %+v, want %+v", got, want)
		}
	})

	t.Run("error: unknown shop leaves nothing deleted", func(t *testing.T) {
		shopRepo := shopmocks.NewShopRepository(t)
		shopRepo.
			On("GetByID", mock.Anything, "missing").
			Return(nil, nil).
			Once()

		app := appshop.NewShopApp(testConfig(), txmocks.NewTxRepository(t), shopRepo, redismocks.NewRedisRepository(t), nil)

		_, err := app.Delete(context.Background(), "missing")
		if err == nil {
			t.Fatal("Delete() expected error")
		}
		assertErrCode(t, err, constant.ErrNotFound)
		shopRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	productapp "github.com/getinmotion/telar-sub006/application/product"
	shopapp "github.com/getinmotion/telar-sub006/application/shop"
	userapp "github.com/getinmotion/telar-sub006/application/user"
	"github.com/getinmotion/telar-sub006/cmd/config"
	"github.com/getinmotion/telar-sub006/constant"
	productmocks "github.com/getinmotion/telar-sub006/mocks/repository/product"
	redismocks "github.com/getinmotion/telar-sub006/mocks/repository/redis"
	shopmocks "github.com/getinmotion/telar-sub006/mocks/repository/shop"
	txmocks "github.com/getinmotion/telar-sub006/mocks/repository/tx"
	usermocks "github.com/getinmotion/telar-sub006/mocks/repository/user"
	"github.com/getinmotion/telar-sub006/model"
	"github.com/getinmotion/telar-sub006/transport"
)

const internalKey = "internal-test-key"

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testDeps struct {
	shopRepo    *shopmocks.ShopRepository
	productRepo *productmocks.ProductRepository
	redisRepo   *redismocks.RedisRepository
}

func newTestServer(t *testing.T) (http.Handler, testDeps) {
	t.Helper()

	deps := testDeps{
		shopRepo:    shopmocks.NewShopRepository(t),
		productRepo: productmocks.NewProductRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
	}
	cfg := &config.Config{}

	userApp := userapp.NewUserApp(cfg, usermocks.NewUserRepository(t), deps.redisRepo)
	shopApp := shopapp.NewShopApp(cfg, txmocks.NewTxRepository(t), deps.shopRepo, deps.redisRepo, nil)
	productApp := productapp.NewProductApp(deps.productRepo, nil)

	handler := transport.NewTransport(userApp, shopApp, productApp, deps.redisRepo, internalKey)
	return handler, deps
}

func doRequest(t *testing.T, handler http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestListShops_Defaults(t *testing.T) {
	handler, deps := newTestServer(t)

	deps.shopRepo.
		On("List", mock.Anything, &model.ShopFilter{},
			model.ShopPage{Page: 1, Limit: 20},
			model.ShopSort{}).
		Return([]model.Shop{{ID: "a1"}}, int64(1), nil).
		Once()

	rec, body := doRequest(t, handler, http.MethodGet, "/artisan-shops")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body.Code != constant.ErrorTypeCode[constant.Successful] {
		t.Fatalf("code = %s", body.Code)
	}

	var res model.ShopListResponse
	if err := json.Unmarshal(body.Data, &res); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if res.Page != 1 || res.Limit != 20 || res.Total != 1 {
		t.Fatalf("response = %+v", res)
	}
}

func TestListShops_QueryFilters(t *testing.T) {
	handler, deps := newTestServer(t)

	published := constant.PublishStatusPublished
	active := true
	hasApproved := true
	deps.shopRepo.
		On("List", mock.Anything,
			&model.ShopFilter{
				Active:              &active,
				PublishStatus:       &published,
				HasApprovedProducts: hasApproved,
				Region:              "Boyaca",
			},
			model.ShopPage{Page: 2, Limit: 5},
			model.ShopSort{SortBy: "shop_name", Order: "ASC"}).
		Return([]model.Shop{}, int64(0), nil).
		Once()

	rec, _ := doRequest(t, handler, http.MethodGet,
		"/artisan-shops?page=2&limit=5&active=true&publishStatus=published&hasApprovedProducts=true&region=Boyaca&sortBy=shop_name&order=ASC")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestListShops_InvalidQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "non-numeric limit", target: "/artisan-shops?limit=abc"},
		{name: "zero page", target: "/artisan-shops?page=0"},
		{name: "limit above maximum", target: "/artisan-shops?limit=101"},
		{name: "negative page", target: "/artisan-shops?page=-2"},
		{name: "malformed boolean", target: "/artisan-shops?hasApprovedProducts=yes"},
		{name: "unknown publish status", target: "/artisan-shops?publishStatus=archived"},
		{name: "unknown sort column", target: "/artisan-shops?sortBy=price"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestServer(t)

			rec, body := doRequest(t, handler, http.MethodGet, tt.target)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if body.Code != constant.ErrorTypeCode[constant.ErrInvalidRequest] {
				t.Fatalf("code = %s, want %s", body.Code, constant.ErrorTypeCode[constant.ErrInvalidRequest])
			}
		})
	}
}

func TestGetShopByID_NotFound(t *testing.T) {
	handler, deps := newTestServer(t)

	deps.shopRepo.
		On("GetByID", mock.Anything, "missing").
		Return(nil, nil).
		Once()

	rec, body := doRequest(t, handler, http.MethodGet, "/artisan-shops/missing")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body.Code != constant.ErrorTypeCode[constant.ErrNotFound] {
		t.Fatalf("code = %s", body.Code)
	}
}

func TestGetShopByUserID_RequiresAuth(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, body := doRequest(t, handler, http.MethodGet, "/artisan-shops/user/u1")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body.Code != constant.ErrorTypeCode[constant.ErrUnauthorize] {
		t.Fatalf("code = %s", body.Code)
	}
}

func TestCreateShop_RequiresAuth(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, _ := doRequest(t, handler, http.MethodPost, "/artisan-shops")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestInternalInvalidateFeaturedCache(t *testing.T) {
	t.Run("missing key is forbidden", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec, _ := doRequest(t, handler, http.MethodPost, "/internal/v1/cache/featured/invalidate")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("valid key drops the cache", func(t *testing.T) {
		handler, deps := newTestServer(t)

		deps.redisRepo.
			On("InvalidateFeaturedShops", mock.Anything).
			Return(nil).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/internal/v1/cache/featured/invalidate", nil)
		req.Header.Set("Authorization", "Bearer "+internalKey)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
		}
	})
}

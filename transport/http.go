package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	productapp "github.com/getinmotion/telar-sub006/application/product"
	shopapp "github.com/getinmotion/telar-sub006/application/shop"
	userapp "github.com/getinmotion/telar-sub006/application/user"
	"github.com/getinmotion/telar-sub006/constant"
	"github.com/getinmotion/telar-sub006/model"
	redisrepo "github.com/getinmotion/telar-sub006/repository/redis"
	utilcontext "github.com/getinmotion/telar-sub006/utils/context"
	"github.com/getinmotion/telar-sub006/utils/errors"
	validatorx "github.com/getinmotion/telar-sub006/utils/validator"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	ShopApp    shopapp.ShopApp
	ProductApp productapp.ProductApp
	RedisRepo  redisrepo.Repository
}

func NewTransport(UserApp userapp.UserApp, ShopApp shopapp.ShopApp, ProductApp productapp.ProductApp, RedisRepo redisrepo.Repository, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		ShopApp:    ShopApp,
		ProductApp: ProductApp,
		RedisRepo:  RedisRepo,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Auth routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Shop routes. Fixed segments are registered before the {id} catch-all.
	router.HandleFunc("/artisan-shops", rh.CreateShop).Methods(http.MethodPost)
	router.HandleFunc("/artisan-shops", rh.ListShops).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/active", rh.GetActiveShops).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/featured", rh.GetFeaturedShops).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/completed-profile", rh.GetCompletedProfileShops).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/user/{userId}", rh.GetShopByUserID).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/slug/{slug}", rh.GetShopBySlug).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/department/{department}", rh.GetShopsByDepartment).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/municipality/{municipality}", rh.GetShopsByMunicipality).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/{id}/products", rh.GetShopProducts).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/{id}", rh.GetShopByID).Methods(http.MethodGet)
	router.HandleFunc("/artisan-shops/{id}", rh.UpdateShop).Methods(http.MethodPatch)
	router.HandleFunc("/artisan-shops/{id}", rh.DeleteShop).Methods(http.MethodDelete)

	// Internal service-to-service routes, guarded by the static API key.
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/products/{id}/moderation", rh.UpdateProductModeration).Methods(http.MethodPatch)
	internal.HandleFunc("/cache/featured/invalidate", rh.InvalidateFeaturedCache).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(UserApp))

	return router
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateShop handler
// @Summary Create artisan shop
// @Description Create a new artisan shop; slug and owner must be unique
// @Tags Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateShopRequest true "Create Shop Request"
// @Success 201 {object} model.Shop
// @Router /artisan-shops [post]
func (s *RestHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// The authenticated user owns the shop unless the body names an owner.
	if req.UserID == "" {
		if userID, ok := utilcontext.GetUserID(ctx); ok {
			req.UserID = userID
		}
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Datos de la tienda inválidos: %s", err.Error()))
		return
	}

	res, err := s.ShopApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListShops handler
// @Summary List artisan shops
// @Description Filtered, sorted and paginated shop listing
// @Tags Shops
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 20)"
// @Param hasApprovedProducts query bool false "Only shops with approved products"
// @Success 200 {object} model.ShopListResponse
// @Router /artisan-shops [get]
func (s *RestHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := parseShopListQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ShopApp.List(ctx, query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetActiveShops(w http.ResponseWriter, r *http.Request) {
	res, err := s.ShopApp.GetActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetFeaturedShops handler
// @Summary Featured artisan shops
// @Description Active, published, marketplace-approved shops with at least one approved product
// @Tags Shops
// @Produce json
// @Param limit query int false "Maximum shops returned (default 8)"
// @Success 200 {array} model.Shop
// @Router /artisan-shops/featured [get]
func (s *RestHandler) GetFeaturedShops(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Límite inválido: %s", raw))
			return
		}
		limit = n
	}

	res, err := s.ShopApp.GetFeatured(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetCompletedProfileShops(w http.ResponseWriter, r *http.Request) {
	res, err := s.ShopApp.GetWithCompletedProfile(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetShopByUserID handler
// @Summary Shop of a user
// @Description Zero-or-one lookup; data is null when the user has no shop yet
// @Tags Shops
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} model.Shop
// @Router /artisan-shops/user/{userId} [get]
func (s *RestHandler) GetShopByUserID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	res, err := s.ShopApp.GetByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	// res may be nil: absence means "user has no shop yet".
	writeSuccess(w, res)
}

func (s *RestHandler) GetShopBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	res, err := s.ShopApp.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetShopsByDepartment(w http.ResponseWriter, r *http.Request) {
	department := mux.Vars(r)["department"]

	res, err := s.ShopApp.GetByDepartment(r.Context(), department)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetShopsByMunicipality(w http.ResponseWriter, r *http.Request) {
	municipality := mux.Vars(r)["municipality"]

	res, err := s.ShopApp.GetByMunicipality(r.Context(), municipality)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetShopByID handler
// @Summary Shop by ID
// @Tags Shops
// @Produce json
// @Param id path string true "Shop ID (UUID)"
// @Success 200 {object} model.Shop
// @Failure 404 {object} apiResponse
// @Router /artisan-shops/{id} [get]
func (s *RestHandler) GetShopByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := s.ShopApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateShop handler
// @Summary Update artisan shop
// @Description Partial update; only fields present in the body are changed
// @Tags Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID (UUID)"
// @Param request body model.UpdateShopRequest true "Update Shop Request"
// @Success 200 {object} model.Shop
// @Router /artisan-shops/{id} [patch]
func (s *RestHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.UpdateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Datos de la tienda inválidos: %s", err.Error()))
		return
	}

	res, err := s.ShopApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteShop handler
// @Summary Delete artisan shop
// @Tags Shops
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID (UUID)"
// @Success 200 {object} model.DeleteShopResponse
// @Router /artisan-shops/{id} [delete]
func (s *RestHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := s.ShopApp.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetShopProducts(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := s.ProductApp.GetShopProducts(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateProductModeration(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.UpdateModerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.UpdateModeration(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InvalidateFeaturedCache drops the cached featured listings. Called by the
// shop-events consumer after any shop or moderation change.
func (s *RestHandler) InvalidateFeaturedCache(w http.ResponseWriter, r *http.Request) {
	if err := s.RedisRepo.InvalidateFeaturedShops(r.Context()); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, nil)
}

// parseShopListQuery decodes and validates the listing query DTO. Booleans
// accept the strings "true"/"false"; pagination bounds are rejected before
// any query runs.
func parseShopListQuery(r *http.Request) (*model.ShopListQuery, error) {
	values := r.URL.Query()
	query := &model.ShopListQuery{
		Page:      1,
		Limit:     constant.DefaultListLimit,
		ShopSlug:  values.Get("shopSlug"),
		Region:    values.Get("region"),
		CraftType: values.Get("craftType"),
		SortBy:    values.Get("sortBy"),
		Order:     values.Get("order"),
	}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Página inválida: %s", raw)
		}
		query.Page = n
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Límite inválido: %s", raw)
		}
		query.Limit = n
	}

	boolParams := map[string]**bool{
		"active":              &query.Active,
		"marketplaceApproved": &query.MarketplaceApproved,
		"featured":            &query.Featured,
		"hasApprovedProducts": &query.HasApprovedProducts,
	}
	for param, dest := range boolParams {
		raw := values.Get(param)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Valor booleano inválido para %s: %s", param, raw)
		}
		*dest = &b
	}

	if raw := values.Get("publishStatus"); raw != "" {
		status := constant.PublishStatus(raw)
		query.PublishStatus = &status
	}

	if err := validatorx.ValidateStruct(query); err != nil {
		return nil, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Parámetros de consulta inválidos: %s", err.Error())
	}
	return query, nil
}

package shop

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/getinmotion/telar-sub006/constant"
	"github.com/getinmotion/telar-sub006/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ShopRepository interface {
	List(ctx context.Context, filter *model.ShopFilter, page model.ShopPage, sort model.ShopSort) ([]model.Shop, int64, error)
	FeaturedIDs(ctx context.Context, limit int) ([]string, error)
	GetByIDs(ctx context.Context, ids []string, limit int) ([]model.Shop, error)
	GetByID(ctx context.Context, id string) (*model.Shop, error)
	GetBySlug(ctx context.Context, slug string) (*model.Shop, error)
	GetByUserID(ctx context.Context, userID string) (*model.Shop, error)
	ListActive(ctx context.Context) ([]model.Shop, error)
	ListCompletedProfile(ctx context.Context) ([]model.Shop, error)
	ListByDepartment(ctx context.Context, department string) ([]model.Shop, error)
	ListByMunicipality(ctx context.Context, municipality string) ([]model.Shop, error)
	GetBySlugTx(ctx context.Context, tx *sqlx.Tx, slug string) (*model.Shop, error)
	GetByUserIDTx(ctx context.Context, tx *sqlx.Tx, userID string) (*model.Shop, error)
	InsertShopTx(ctx context.Context, tx *sqlx.Tx, shop *model.Shop) error
	UpdateShopTx(ctx context.Context, tx *sqlx.Tx, id string, patch *model.UpdateShopRequest) error
	Delete(ctx context.Context, id string) error
}

func NewShopRepository(conn *sqlx.DB) ShopRepository {
	return &SQL{conn: conn}
}

var shopColumns = []string{
	"s.id", "s.user_id", "s.shop_name", "s.shop_slug", "s.description", "s.story",
	"s.logo_url", "s.banner_url", "s.craft_type", "s.region", "s.department", "s.municipality",
	"s.certifications", "s.contact_info", "s.social_links", "s.seo_data",
	"s.active", "s.featured", "s.servientrega_coverage", "s.privacy_level",
	"s.creation_status", "s.creation_step", "s.primary_colors", "s.secondary_colors",
	"s.brand_claim", "s.hero_config", "s.about_content", "s.contact_config",
	"s.artisan_profile", "s.artisan_profile_completed", "s.active_theme_id",
	"s.publish_status", "s.marketplace_approved", "s.marketplace_approved_at",
	"s.marketplace_approved_by", "s.marketplace_approval_status", "s.bank_data_status",
	"s.created_at", "s.updated_at",
}

var ownerColumns = []string{
	"u.id AS owner_id", "u.name AS owner_name", "u.email AS owner_email",
}

var themeColumns = []string{
	"t.theme_id AS theme_id", "t.name AS theme_name", "t.palette AS theme_palette",
}

// Phase 1 of the featured query: qualification is checked with EXISTS so the
// product join never multiplies rows here.
const featuredShopIDsQuery = `SELECT s.id FROM artisan_shop s
WHERE s.active = 1 AND s.publish_status = 'published' AND s.marketplace_approved = 1
AND EXISTS (SELECT 1 FROM product p WHERE p.shop_id = s.id AND p.moderation_status IN (?, ?))
LIMIT ?`

// shopRow flattens the owner and theme left joins into one scan target.
type shopRow struct {
	model.Shop
	OwnerID      sql.NullString   `db:"owner_id"`
	OwnerName    sql.NullString   `db:"owner_name"`
	OwnerEmail   sql.NullString   `db:"owner_email"`
	ThemeID      sql.NullString   `db:"theme_id"`
	ThemeName    sql.NullString   `db:"theme_name"`
	ThemePalette model.StringList `db:"theme_palette"`
}

func (r *shopRow) toShop() model.Shop {
	shop := r.Shop
	if r.OwnerID.Valid {
		shop.User = &model.ShopOwner{
			ID:    r.OwnerID.String,
			Name:  r.OwnerName.String,
			Email: r.OwnerEmail.String,
		}
	}
	if r.ThemeID.Valid {
		shop.ActiveTheme = &model.BrandTheme{
			ThemeID: r.ThemeID.String,
			Name:    r.ThemeName.String,
			Palette: r.ThemePalette,
		}
	}
	return shop
}

// selectWithRelations is the enriched base query: owner and theme are joined
// for the response only and must never filter out shops lacking a theme.
func selectWithRelations() sq.SelectBuilder {
	cols := make([]string, 0, len(shopColumns)+len(ownerColumns)+len(themeColumns))
	cols = append(cols, shopColumns...)
	cols = append(cols, ownerColumns...)
	cols = append(cols, themeColumns...)
	return sq.Select(cols...).
		From("artisan_shop s").
		LeftJoin("user u ON u.id = s.user_id").
		LeftJoin("brand_theme t ON t.theme_id = s.active_theme_id")
}

func selectWithOwner() sq.SelectBuilder {
	cols := make([]string, 0, len(shopColumns)+len(ownerColumns))
	cols = append(cols, shopColumns...)
	cols = append(cols, ownerColumns...)
	return sq.Select(cols...).
		From("artisan_shop s").
		LeftJoin("user u ON u.id = s.user_id")
}

func approvedStatusStrings() []string {
	out := make([]string, 0, len(constant.ApprovedModerationStatuses))
	for _, st := range constant.ApprovedModerationStatuses {
		out = append(out, string(st))
	}
	return out
}

// applyFilter adds every present predicate as an equality condition. The
// hasApprovedProducts predicate is an inner join to product and can multiply
// rows, one per matching product; callers deduplicate after fetching.
func applyFilter(b sq.SelectBuilder, f *model.ShopFilter) sq.SelectBuilder {
	if f == nil {
		return b
	}
	if f.Active != nil {
		b = b.Where(sq.Eq{"s.active": *f.Active})
	}
	if f.PublishStatus != nil {
		b = b.Where(sq.Eq{"s.publish_status": string(*f.PublishStatus)})
	}
	if f.MarketplaceApproved != nil {
		b = b.Where(sq.Eq{"s.marketplace_approved": *f.MarketplaceApproved})
	}
	if f.Featured != nil {
		b = b.Where(sq.Eq{"s.featured": *f.Featured})
	}
	if f.ShopSlug != "" {
		b = b.Where(sq.Eq{"s.shop_slug": f.ShopSlug})
	}
	if f.Region != "" {
		b = b.Where(sq.Eq{"s.region": f.Region})
	}
	if f.CraftType != "" {
		b = b.Where(sq.Eq{"s.craft_type": f.CraftType})
	}
	if f.ArtisanProfileCompleted != nil {
		b = b.Where(sq.Eq{"s.artisan_profile_completed": *f.ArtisanProfileCompleted})
	}
	if f.HasApprovedProducts {
		b = b.Join("product p ON p.shop_id = s.id").
			Where(sq.Eq{"p.moderation_status": approvedStatusStrings()})
	}
	return b
}

func sortColumn(sortBy string) string {
	if sortBy == "shop_name" {
		return "s.shop_name"
	}
	return "s.created_at"
}

func sortDirection(order string) string {
	if order == "ASC" {
		return "ASC"
	}
	return "DESC"
}

func (s *SQL) List(ctx context.Context, filter *model.ShopFilter, page model.ShopPage, sort model.ShopSort) ([]model.Shop, int64, error) {
	// total counts the filtered (and, with hasApprovedProducts, join-duplicated)
	// row set before pagination.
	countQuery, countArgs, err := applyFilter(sq.Select("COUNT(*)").From("artisan_shop s"), filter).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	offset := (page.Page - 1) * page.Limit
	query, args, err := applyFilter(selectWithRelations(), filter).
		OrderBy(sortColumn(sort.SortBy) + " " + sortDirection(sort.Order)).
		Limit(uint64(page.Limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	shops, err := s.queryShops(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return shops, total, nil
}

func (s *SQL) FeaturedIDs(ctx context.Context, limit int) ([]string, error) {
	args := make([]interface{}, 0, 3)
	for _, st := range approvedStatusStrings() {
		args = append(args, st)
	}
	args = append(args, limit)

	ids := make([]string, 0, limit)
	if err := s.conn.SelectContext(ctx, &ids, featuredShopIDsQuery, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SQL) GetByIDs(ctx context.Context, ids []string, limit int) ([]model.Shop, error) {
	query, args, err := selectWithRelations().
		Where(sq.Eq{"s.id": ids}).
		OrderBy("s.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	return s.queryShops(ctx, query, args...)
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	return s.getOne(ctx, sq.Eq{"s.id": id})
}

func (s *SQL) GetBySlug(ctx context.Context, slug string) (*model.Shop, error) {
	return s.getOne(ctx, sq.Eq{"s.shop_slug": slug})
}

func (s *SQL) GetByUserID(ctx context.Context, userID string) (*model.Shop, error) {
	return s.getOne(ctx, sq.Eq{"s.user_id": userID})
}

func (s *SQL) ListActive(ctx context.Context) ([]model.Shop, error) {
	query, args, err := selectWithRelations().
		Where(sq.Eq{"s.active": true}).
		OrderBy("s.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	return s.queryShops(ctx, query, args...)
}

func (s *SQL) ListCompletedProfile(ctx context.Context) ([]model.Shop, error) {
	query, args, err := selectWithRelations().
		Where(sq.Eq{"s.artisan_profile_completed": true}).
		OrderBy("s.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	return s.queryShops(ctx, query, args...)
}

func (s *SQL) ListByDepartment(ctx context.Context, department string) ([]model.Shop, error) {
	return s.listByLocation(ctx, "s.department", department)
}

func (s *SQL) ListByMunicipality(ctx context.Context, municipality string) ([]model.Shop, error) {
	return s.listByLocation(ctx, "s.municipality", municipality)
}

// listByLocation attaches the owner relation only, no theme.
func (s *SQL) listByLocation(ctx context.Context, column, value string) ([]model.Shop, error) {
	query, args, err := selectWithOwner().
		Where(sq.Eq{column: value}).
		OrderBy("s.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shops := make([]model.Shop, 0)
	for rows.Next() {
		var row struct {
			model.Shop
			OwnerID    sql.NullString `db:"owner_id"`
			OwnerName  sql.NullString `db:"owner_name"`
			OwnerEmail sql.NullString `db:"owner_email"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		shop := row.Shop
		if row.OwnerID.Valid {
			shop.User = &model.ShopOwner{ID: row.OwnerID.String, Name: row.OwnerName.String, Email: row.OwnerEmail.String}
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

func (s *SQL) getOne(ctx context.Context, cond sq.Eq) (*model.Shop, error) {
	query, args, err := selectWithRelations().Where(cond).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var row shopRow
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	shop := row.toShop()
	return &shop, nil
}

// GetBySlugTx reads the minimal columns needed for the uniqueness pre-check.
func (s *SQL) GetBySlugTx(ctx context.Context, tx *sqlx.Tx, slug string) (*model.Shop, error) {
	return getLightTx(ctx, tx, sq.Eq{"shop_slug": slug})
}

func (s *SQL) GetByUserIDTx(ctx context.Context, tx *sqlx.Tx, userID string) (*model.Shop, error) {
	return getLightTx(ctx, tx, sq.Eq{"user_id": userID})
}

func getLightTx(ctx context.Context, tx *sqlx.Tx, cond sq.Eq) (*model.Shop, error) {
	query, args, err := sq.Select("id", "user_id", "shop_name", "shop_slug").
		From("artisan_shop").
		Where(cond).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var shop model.Shop
	if err := tx.QueryRowxContext(ctx, query, args...).StructScan(&shop); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

func (s *SQL) InsertShopTx(ctx context.Context, tx *sqlx.Tx, shop *model.Shop) error {
	_, err := sq.Insert("artisan_shop").
		SetMap(map[string]interface{}{
			"id":                          shop.ID,
			"user_id":                     shop.UserID,
			"shop_name":                   shop.ShopName,
			"shop_slug":                   shop.ShopSlug,
			"description":                 shop.Description,
			"story":                       shop.Story,
			"logo_url":                    shop.LogoURL,
			"banner_url":                  shop.BannerURL,
			"craft_type":                  shop.CraftType,
			"region":                      shop.Region,
			"department":                  shop.Department,
			"municipality":                shop.Municipality,
			"certifications":              shop.Certifications,
			"contact_info":                shop.ContactInfo,
			"social_links":                shop.SocialLinks,
			"seo_data":                    shop.SEOData,
			"active":                      shop.Active,
			"featured":                    shop.Featured,
			"servientrega_coverage":       shop.ServientregaCoverage,
			"privacy_level":               string(shop.PrivacyLevel),
			"creation_status":             string(shop.CreationStatus),
			"creation_step":               shop.CreationStep,
			"primary_colors":              shop.PrimaryColors,
			"secondary_colors":            shop.SecondaryColors,
			"brand_claim":                 shop.BrandClaim,
			"hero_config":                 shop.HeroConfig,
			"about_content":               shop.AboutContent,
			"contact_config":              shop.ContactConfig,
			"artisan_profile":             shop.ArtisanProfile,
			"artisan_profile_completed":   shop.ArtisanProfileCompleted,
			"active_theme_id":             shop.ActiveThemeID,
			"publish_status":              string(shop.PublishStatus),
			"marketplace_approved":        shop.MarketplaceApproved,
			"marketplace_approval_status": string(shop.MarketplaceApprovalStatus),
			"bank_data_status":            string(shop.BankDataStatus),
			"created_at":                  sq.Expr("NOW()"),
			"updated_at":                  sq.Expr("NOW()"),
		}).
		RunWith(tx).
		ExecContext(ctx)
	return err
}

func (s *SQL) UpdateShopTx(ctx context.Context, tx *sqlx.Tx, id string, patch *model.UpdateShopRequest) error {
	changes := changeSet(patch)
	if len(changes) == 0 {
		return nil
	}
	changes["updated_at"] = sq.Expr("NOW()")

	_, err := sq.Update("artisan_shop").
		SetMap(changes).
		Where(sq.Eq{"id": id}).
		RunWith(tx).
		ExecContext(ctx)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete("artisan_shop").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) queryShops(ctx context.Context, query string, args ...interface{}) ([]model.Shop, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shops := make([]model.Shop, 0)
	for rows.Next() {
		var row shopRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		shops = append(shops, row.toShop())
	}
	return shops, rows.Err()
}

// changeSet maps the non-nil patch fields to their columns. Absent fields
// retain their prior value.
func changeSet(patch *model.UpdateShopRequest) map[string]interface{} {
	changes := make(map[string]interface{})
	if patch == nil {
		return changes
	}
	if patch.ShopName != nil {
		changes["shop_name"] = *patch.ShopName
	}
	if patch.ShopSlug != nil {
		changes["shop_slug"] = *patch.ShopSlug
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Story != nil {
		changes["story"] = *patch.Story
	}
	if patch.LogoURL != nil {
		changes["logo_url"] = *patch.LogoURL
	}
	if patch.BannerURL != nil {
		changes["banner_url"] = *patch.BannerURL
	}
	if patch.CraftType != nil {
		changes["craft_type"] = *patch.CraftType
	}
	if patch.Region != nil {
		changes["region"] = *patch.Region
	}
	if patch.Department != nil {
		changes["department"] = *patch.Department
	}
	if patch.Municipality != nil {
		changes["municipality"] = *patch.Municipality
	}
	if patch.Certifications != nil {
		changes["certifications"] = patch.Certifications
	}
	if patch.ContactInfo != nil {
		changes["contact_info"] = *patch.ContactInfo
	}
	if patch.SocialLinks != nil {
		changes["social_links"] = *patch.SocialLinks
	}
	if patch.SEOData != nil {
		changes["seo_data"] = *patch.SEOData
	}
	if patch.Active != nil {
		changes["active"] = *patch.Active
	}
	if patch.Featured != nil {
		changes["featured"] = *patch.Featured
	}
	if patch.ServientregaCoverage != nil {
		changes["servientrega_coverage"] = *patch.ServientregaCoverage
	}
	if patch.PrivacyLevel != nil {
		changes["privacy_level"] = string(*patch.PrivacyLevel)
	}
	if patch.CreationStatus != nil {
		changes["creation_status"] = string(*patch.CreationStatus)
	}
	if patch.CreationStep != nil {
		changes["creation_step"] = *patch.CreationStep
	}
	if patch.PrimaryColors != nil {
		changes["primary_colors"] = patch.PrimaryColors
	}
	if patch.SecondaryColors != nil {
		changes["secondary_colors"] = patch.SecondaryColors
	}
	if patch.BrandClaim != nil {
		changes["brand_claim"] = *patch.BrandClaim
	}
	if patch.HeroConfig != nil {
		changes["hero_config"] = *patch.HeroConfig
	}
	if patch.AboutContent != nil {
		changes["about_content"] = *patch.AboutContent
	}
	if patch.ContactConfig != nil {
		changes["contact_config"] = *patch.ContactConfig
	}
	if patch.ArtisanProfile != nil {
		changes["artisan_profile"] = *patch.ArtisanProfile
	}
	if patch.ArtisanProfileCompleted != nil {
		changes["artisan_profile_completed"] = *patch.ArtisanProfileCompleted
	}
	if patch.ActiveThemeID != nil {
		changes["active_theme_id"] = *patch.ActiveThemeID
	}
	if patch.PublishStatus != nil {
		changes["publish_status"] = string(*patch.PublishStatus)
	}
	if patch.MarketplaceApproved != nil {
		changes["marketplace_approved"] = *patch.MarketplaceApproved
	}
	if patch.BankDataStatus != nil {
		changes["bank_data_status"] = string(*patch.BankDataStatus)
	}
	if patch.MarketplaceApprovalStatus != nil {
		changes["marketplace_approval_status"] = string(*patch.MarketplaceApprovalStatus)
	}
	return changes
}

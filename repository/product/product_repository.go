package product

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

type ProductRepository interface {
	ListByShop(ctx context.Context, shopID string) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	UpdateModeration(ctx context.Context, id string, status constant.ModerationStatus, note *string) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

var productColumns = []string{
	"id", "shop_id", "name", "description", "price", "category", "craft",
	"materials", "techniques", "image_url", "free_shipping", "rating",
	"moderation_status", "moderation_note", "created_at", "updated_at",
}

func (s *SQL) ListByShop(ctx context.Context, shopID string) ([]model.Product, error) {
	query, args, err := sq.Select(productColumns...).
		From("product").
		Where(sq.Eq{"shop_id": shopID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query, args, err := sq.Select(productColumns...).
		From("product").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) UpdateModeration(ctx context.Context, id string, status constant.ModerationStatus, note *string) error {
	changes := map[string]interface{}{
		"moderation_status": string(status),
		"updated_at":        sq.Expr("NOW()"),
	}
	if note != nil {
		changes["moderation_note"] = *note
	}

	_, err := sq.Update("product").
		SetMap(changes).
		Where(sq.Eq{"id": id}).
		RunWith(s.conn).
		ExecContext(ctx)
	return err
}

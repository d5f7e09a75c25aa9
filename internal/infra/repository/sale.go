package repository

import (
	"context"
	"errors"
	"time"

	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SaleRepository struct{}

func NewSaleRepository() shared.SaleRepository {
	return &SaleRepository{}
}

func (r *SaleRepository) Create(ctx context.Context, tx db.DBTX, s *sale.Sale) (uuid.UUID, error) {
	const q = `
		INSERT INTO sales (
			id, kind, pool_id, seller_id, adults, children, room_type,
			currency, total_price, paid_amount, margin_percent,
			commission_amount, commission_computed, commission_paid, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	occ := s.Occupancy()
	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		s.ID(), string(s.Kind()), s.PoolID(), s.SellerID(),
		occ.Adults(), occ.Children(), string(occ.RoomType()),
		string(s.Currency()), s.TotalPrice().Decimal(), s.PaidAmount().Decimal(),
		s.Margin().Decimal(), s.CommissionAmount().Decimal(),
		s.CommissionComputed(), s.CommissionPaid(), string(s.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create sale", err)
	}
	return id, nil
}

func (r *SaleRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*sale.Sale, error) {
	const q = `
		SELECT id, kind, pool_id, seller_id, adults, children, room_type,
		       currency, total_price, paid_amount, margin_percent,
		       commission_amount, commission_computed, commission_paid, status,
		       created_at, updated_at
		FROM sales
		WHERE id = $1
		FOR UPDATE`

	var (
		row saleRow
	)
	err := tx.QueryRow(ctx, q, id).Scan(
		&row.ID, &row.Kind, &row.PoolID, &row.SellerID,
		&row.Adults, &row.Children, &row.RoomType,
		&row.Currency, &row.TotalPrice, &row.PaidAmount, &row.MarginPercent,
		&row.CommissionAmount, &row.CommissionComputed, &row.CommissionPaid, &row.Status,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale", err)
	}
	return row.toDomain()
}

// UpdateSettlement persists the fields ApplyPayment and CloseWithCommission
// mutate. Immutable columns (kind, occupancy, total) are never rewritten.
func (r *SaleRepository) UpdateSettlement(ctx context.Context, tx db.DBTX, s *sale.Sale) error {
	const q = `
		UPDATE sales
		SET paid_amount = $2,
		    commission_amount = $3,
		    commission_computed = $4,
		    commission_paid = $5,
		    status = $6,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q,
		s.ID(), s.PaidAmount().Decimal(), s.CommissionAmount().Decimal(),
		s.CommissionComputed(), s.CommissionPaid(), string(s.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update sale settlement", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("sale not found", nil, infra.KindNotFound)
	}
	return nil
}

type saleRow struct {
	ID                 uuid.UUID
	Kind               string
	PoolID             *uuid.UUID
	SellerID           uuid.UUID
	Adults             int32
	Children           int32
	RoomType           string
	Currency           string
	TotalPrice         decimal.Decimal
	PaidAmount         decimal.Decimal
	MarginPercent      decimal.Decimal
	CommissionAmount   decimal.Decimal
	CommissionComputed bool
	CommissionPaid     bool
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (row saleRow) toDomain() (*sale.Sale, error) {
	occ, err := sale.NewOccupancy(int(row.Adults), int(row.Children), inventory.RoomType(row.RoomType))
	if err != nil {
		return nil, infra.WrapRepoErr("stored sale has invalid occupancy", err)
	}
	margin, err := sale.NewMarginPercent(row.MarginPercent)
	if err != nil {
		return nil, infra.WrapRepoErr("stored sale has invalid margin", err)
	}
	return sale.ReconstructSale(
		row.ID, sale.Kind(row.Kind), row.PoolID, row.SellerID, occ,
		money.Currency(row.Currency),
		money.New(row.TotalPrice), money.New(row.PaidAmount),
		margin, money.New(row.CommissionAmount),
		row.CommissionComputed, row.CommissionPaid,
		sale.Status(row.Status), row.CreatedAt, row.UpdatedAt,
	), nil
}

package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/domain/valueobject"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

type NegotiationRepositoryAdapter struct {
	db *sqlx.DB
}

func NewNegotiationRepositoryAdapter(db *sqlx.DB) *NegotiationRepositoryAdapter {
	return &NegotiationRepositoryAdapter{db: db}
}

type negotiationRow struct {
	ID            uuid.UUID       `db:"id"`
	ProductID     uuid.UUID       `db:"product_id"`
	UserID        uuid.UUID       `db:"user_id"`
	ProposedPrice decimal.Decimal `db:"proposed_price"`
	Decision      string          `db:"decision"`
	RetriesLeft   int             `db:"retries_left"`
	Status        string          `db:"status"`
	Version       int64           `db:"version"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (r negotiationRow) toEntity() *entity.Negotiation {
	return &entity.Negotiation{
		ID:            r.ID,
		ProductID:     r.ProductID,
		UserID:        r.UserID,
		ProposedPrice: r.ProposedPrice,
		Decision:      valueobject.Decision(r.Decision),
		RetriesLeft:   r.RetriesLeft,
		Status:        valueobject.NegotiationStatus(r.Status),
		Version:       r.Version,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toNegotiationEntities(rows []negotiationRow) []*entity.Negotiation {
	result := make([]*entity.Negotiation, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result
}

func (r *NegotiationRepositoryAdapter) Create(ctx context.Context, negotiation *entity.Negotiation) error {
	query := `
		INSERT INTO negotiations (id, product_id, user_id, proposed_price, decision, retries_left, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		negotiation.ID, negotiation.ProductID, negotiation.UserID, negotiation.ProposedPrice,
		string(negotiation.Decision), negotiation.RetriesLeft, string(negotiation.Status),
		negotiation.Version, negotiation.CreatedAt, negotiation.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to insert negotiation")
	}
	return nil
}

// Update persists the mutated negotiation guarded by its version. Zero rows
// affected means either the row is gone or someone else bumped the version;
// a follow-up existence check tells the two apart.
func (r *NegotiationRepositoryAdapter) Update(ctx context.Context, negotiation *entity.Negotiation) error {
	query := `
		UPDATE negotiations
		SET proposed_price = $2, decision = $3, retries_left = $4, status = $5,
		    version = version + 1, updated_at = $6
		WHERE id = $1 AND version = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		negotiation.ID, negotiation.ProposedPrice, string(negotiation.Decision),
		negotiation.RetriesLeft, string(negotiation.Status), negotiation.UpdatedAt,
		negotiation.Version,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update negotiation")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update negotiation")
	}
	if affected == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM negotiations WHERE id = $1)`, negotiation.ID); err != nil {
			return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update negotiation")
		}
		if !exists {
			return apperror.ErrNegotiationNotFound
		}
		return apperror.ErrConcurrencyConflict
	}

	negotiation.Version++
	return nil
}

func (r *NegotiationRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM negotiations WHERE id = $1`, id)
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to delete negotiation")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to delete negotiation")
	}
	return affected > 0, nil
}

func (r *NegotiationRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Negotiation, error) {
	var row negotiationRow
	query := `
		SELECT id, product_id, user_id, proposed_price, decision, retries_left, status, version, created_at, updated_at
		FROM negotiations WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrNegotiationNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to get negotiation")
	}
	return row.toEntity(), nil
}

func (r *NegotiationRepositoryAdapter) List(ctx context.Context) ([]*entity.Negotiation, error) {
	var rows []negotiationRow
	query := `
		SELECT id, product_id, user_id, proposed_price, decision, retries_left, status, version, created_at, updated_at
		FROM negotiations ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to list negotiations")
	}
	return toNegotiationEntities(rows), nil
}

func (r *NegotiationRepositoryAdapter) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Negotiation, error) {
	var rows []negotiationRow
	query := `
		SELECT id, product_id, user_id, proposed_price, decision, retries_left, status, version, created_at, updated_at
		FROM negotiations WHERE user_id = $1 ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to list negotiations")
	}
	return toNegotiationEntities(rows), nil
}

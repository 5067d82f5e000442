package nfccardrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/pg"
)

const cardColumns = `id, user_id, card_uid, card_name, is_active, last_used_at,
       total_tag_count, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanCard(row pg.RowScanner) (*domain.NfcCard, error) {
	var c domain.NfcCard
	err := row.Scan(&c.ID, &c.UserID, &c.CardUID, &c.CardName, &c.IsActive,
		&c.LastUsedAt, &c.TotalTagCount, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, card *domain.NfcCard) (*domain.NfcCard, error) {
	query := `
        INSERT INTO nfc_cards (user_id, card_uid, card_name)
        VALUES ($1, $2, $3)
        RETURNING ` + cardColumns
	saved, err := scanCard(r.db.QueryRow(ctx, query, card.UserID, card.CardUID, card.CardName))
	if err != nil {
		zap.L().Error("can't create nfc card", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByUID(ctx context.Context, cardUID string) (*domain.NfcCard, error) {
	query := `SELECT ` + cardColumns + ` FROM nfc_cards WHERE card_uid = $1`
	card, err := scanCard(r.db.QueryRow(ctx, query, cardUID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find nfc card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.NfcCard, error) {
	query := `SELECT ` + cardColumns + ` FROM nfc_cards WHERE id = $1`
	card, err := scanCard(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find nfc card by id", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.NfcCard, error) {
	query := `
        SELECT ` + cardColumns + `
        FROM nfc_cards
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch nfc cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.NfcCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			zap.L().Error("can't scan nfc card row", zap.Error(err))
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, nil
}

// Touch records one use of the card.
func (r *Repository) Touch(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE nfc_cards
        SET last_used_at = now(), total_tag_count = total_tag_count + 1
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't touch nfc card", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, card *domain.NfcCard) (*domain.NfcCard, error) {
	query := `
        UPDATE nfc_cards
        SET card_name = $1, is_active = $2
        WHERE id = $3
        RETURNING ` + cardColumns
	updated, err := scanCard(r.db.QueryRow(ctx, query, card.CardName, card.IsActive, card.ID))
	if err != nil {
		zap.L().Error("can't update nfc card", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM nfc_cards WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete nfc card", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FindLastUsed returns the most recently used card for the user, if any.
func (r *Repository) FindLastUsed(ctx context.Context, userID uuid.UUID) (*domain.NfcCard, error) {
	query := `
        SELECT ` + cardColumns + `
        FROM nfc_cards
        WHERE user_id = $1 AND last_used_at IS NOT NULL
        ORDER BY last_used_at DESC
        LIMIT 1
    `
	card, err := scanCard(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find last used card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `db:"id"`
	MemberNumber  string     `db:"member_number"`
	Email         string     `db:"email"`
	PasswordHash  string     `db:"password_hash"`
	Nickname      string     `db:"nickname"`
	CoinBalance   int64      `db:"coin_balance"`
	XP            int64      `db:"xp"`
	TotalTagCount int64      `db:"total_tag_count"`
	IsActive      bool       `db:"is_active"`
	LastLoginAt   *time.Time `db:"last_login_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

// TransactionKind is the closed taxonomy of ledger entry types.
type TransactionKind string

const (
	KindEarn        TransactionKind = "EARN"
	KindUse         TransactionKind = "USE"
	KindExpire      TransactionKind = "EXPIRE"
	KindAdminGrant  TransactionKind = "ADMIN_GRANT"
	KindAdminDeduct TransactionKind = "ADMIN_DEDUCT"
)

// LedgerEntry is one immutable row of the coin history. Amount is positive
// for credits and negative for debits. BalanceAfter is the user's coin
// balance immediately after this entry was applied. RewardDay is set only
// for daily check-in rewards and backs the at-most-once-per-day constraint.
type LedgerEntry struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	Kind         TransactionKind `db:"kind"`
	Amount       int64           `db:"amount"`
	BalanceAfter int64           `db:"balance_after"`
	Description  string          `db:"description"`
	ReferenceID  string          `db:"reference_id"`
	RewardDay    *time.Time      `db:"reward_day"`
	CreatedAt    time.Time       `db:"created_at"`
}

// DailyLog is one user's record for one calendar date. Date carries no time
// component; the (user_id, date) pair is unique.
type DailyLog struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	Date              time.Time `db:"date"`
	Mood              string    `db:"mood"`
	RoutineScore      int       `db:"routine_score"`
	CompletedRoutines []string  `db:"completed_routines"`
	Note              string    `db:"note"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type NfcCard struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	CardUID       string     `db:"card_uid"`
	CardName      string     `db:"card_name"`
	IsActive      bool       `db:"is_active"`
	LastUsedAt    *time.Time `db:"last_used_at"`
	TotalTagCount int64      `db:"total_tag_count"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Product struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

// TraitScore holds one user's self-assessed attention-trait profile. Each
// dimension is a 0-100 score; one row per user, replaced on update.
type TraitScore struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Attention   int       `db:"attention"`
	Impulsive   int       `db:"impulsive"`
	Complex     int       `db:"complex"`
	Emotional   int       `db:"emotional"`
	Motivation  int       `db:"motivation"`
	Environment int       `db:"environment"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const (
	ReportStatusPending = "PENDING"
	ReportStatusReady   = "READY"
	ReportStatusFailed  = "FAILED"
)

type MonthlyReport struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Year      int       `db:"year"`
	Month     int       `db:"month"`
	Content   string    `db:"content"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

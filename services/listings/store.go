package listings

import (
	"context"
	"errors"
	"time"

	game_constants "Fivestack/constants/game"
	"Fivestack/models/postgres"

	"gorm.io/gorm"
)

// Store is the persistence boundary for listings. Every operation targets a
// single row; no call spans both tables in one transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateParty(ctx context.Context, p *postgres.PartyInvitation) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return storeErr("create party invitation", err)
	}
	return nil
}

func (s *Store) CreateLFG(ctx context.Context, r *postgres.LFGRequest) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return storeErr("create lfg request", err)
	}
	return nil
}

// GetPartyByID loads one party invitation with its owner attached. ErrNotFound
// also covers rows the janitor already evicted.
func (s *Store) GetPartyByID(ctx context.Context, id string) (*postgres.PartyInvitation, error) {
	var p postgres.PartyInvitation
	err := s.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get party invitation", err)
	}
	return &p, nil
}

func (s *Store) GetLFGByID(ctx context.Context, id string) (*postgres.LFGRequest, error) {
	var r postgres.LFGRequest
	err := s.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get lfg request", err)
	}
	return &r, nil
}

// PartiesByOwner returns all of an owner's party invitations, newest first,
// including expired and cancelled ones (dashboard view).
func (s *Store) PartiesByOwner(ctx context.Context, ownerID uint) ([]postgres.PartyInvitation, error) {
	var parties []postgres.PartyInvitation
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id ASC").
		Find(&parties).Error
	if err != nil {
		return nil, storeErr("list party invitations by owner", err)
	}
	return parties, nil
}

func (s *Store) LFGByOwner(ctx context.Context, ownerID uint) ([]postgres.LFGRequest, error) {
	var requests []postgres.LFGRequest
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, storeErr("list lfg requests by owner", err)
	}
	return requests, nil
}

// BrowseParties returns one page of visible party invitations plus the total
// number of matches before pagination.
func (s *Store) BrowseParties(ctx context.Context, c Criteria, sortBy string, pg Page, now time.Time) ([]postgres.PartyInvitation, int64, error) {
	base := func() *gorm.DB {
		return c.apply(s.db.WithContext(ctx).
			Model(&postgres.PartyInvitation{}).
			Scopes(VisibleScope(now)))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, storeErr("count party invitations", err)
	}

	var parties []postgres.PartyInvitation
	err := base().
		Order(orderClause(sortBy)).
		Limit(pg.PageSize).
		Offset(pg.offset()).
		Find(&parties).Error
	if err != nil {
		return nil, 0, storeErr("browse party invitations", err)
	}
	return parties, total, nil
}

func (s *Store) BrowseLFG(ctx context.Context, c Criteria, sortBy string, pg Page, now time.Time) ([]postgres.LFGRequest, int64, error) {
	base := func() *gorm.DB {
		return c.apply(s.db.WithContext(ctx).
			Model(&postgres.LFGRequest{}).
			Scopes(VisibleScope(now)))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, storeErr("count lfg requests", err)
	}

	var requests []postgres.LFGRequest
	err := base().
		Order(orderClause(sortBy)).
		Limit(pg.PageSize).
		Offset(pg.offset()).
		Find(&requests).Error
	if err != nil {
		return nil, 0, storeErr("browse lfg requests", err)
	}
	return requests, total, nil
}

// IncrementPartyViews bumps the view counter in place so concurrent readers
// never lose updates. Missing ids are a silent no-op.
func (s *Store) IncrementPartyViews(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).
		Model(&postgres.PartyInvitation{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return storeErr("increment party views", err)
	}
	return nil
}

func (s *Store) IncrementLFGViews(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).
		Model(&postgres.LFGRequest{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return storeErr("increment lfg views", err)
	}
	return nil
}

// CancelParty transitions a listing to Cancelled so the owner dashboard keeps
// showing it; the janitor removes the row once its expiry passes. Only the
// owner may cancel.
func (s *Store) CancelParty(ctx context.Context, id string, requesterID uint) error {
	var p postgres.PartyInvitation
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return storeErr("get party invitation", err)
	}
	if p.OwnerID != requesterID {
		return ErrNotOwner
	}
	err = s.db.WithContext(ctx).
		Model(&postgres.PartyInvitation{}).
		Where("id = ?", id).
		UpdateColumn("status", game_constants.StatusCancelled).Error
	if err != nil {
		return storeErr("cancel party invitation", err)
	}
	return nil
}

func (s *Store) CancelLFG(ctx context.Context, id string, requesterID uint) error {
	var r postgres.LFGRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return storeErr("get lfg request", err)
	}
	if r.OwnerID != requesterID {
		return ErrNotOwner
	}
	err = s.db.WithContext(ctx).
		Model(&postgres.LFGRequest{}).
		Where("id = ?", id).
		UpdateColumn("status", game_constants.StatusCancelled).Error
	if err != nil {
		return storeErr("cancel lfg request", err)
	}
	return nil
}

// OwnerSummaryByID loads the display-safe projection of a listing owner.
func (s *Store) OwnerSummaryByID(ctx context.Context, ownerID uint) (*postgres.OwnerSummary, error) {
	var user postgres.User
	err := s.db.WithContext(ctx).Where("id = ?", ownerID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get listing owner", err)
	}
	summary := user.Summary()
	return &summary, nil
}

// EvictExpired hard-deletes every listing whose expiry deadline has passed.
// This is the Postgres stand-in for a document store's TTL index; browse paths
// never depend on it because the visibility scope always applies.
func (s *Store) EvictExpired(ctx context.Context, now time.Time) (int64, error) {
	var evicted int64

	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&postgres.PartyInvitation{})
	if res.Error != nil {
		return evicted, storeErr("evict expired party invitations", res.Error)
	}
	evicted += res.RowsAffected

	res = s.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&postgres.LFGRequest{})
	if res.Error != nil {
		return evicted, storeErr("evict expired lfg requests", res.Error)
	}
	evicted += res.RowsAffected

	return evicted, nil
}

package listings

import (
	"context"
	"log"
	"strings"
	"time"

	game_constants "Fivestack/constants/game"
	"Fivestack/models/postgres"

	"gorm.io/gorm"
)

// Service is the lifecycle facade the HTTP layer talks to: validation on the
// way in, query engine on the way out. The clock is injectable for tests.
type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{store: NewStore(db), now: time.Now}
}

// Store exposes the underlying store for wiring (janitor startup).
func (s *Service) Store() *Store { return s.store }

// PartyInput carries the caller-supplied fields of a new party invitation.
type PartyInput struct {
	Size            string   `json:"size"`
	Server          string   `json:"server"`
	Rank            string   `json:"rank"`
	Mode            string   `json:"mode"`
	Code            string   `json:"code"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	DiscordLink     string   `json:"discord_link"`
	InGameName      string   `json:"in_game_name"`
	PreferredRoles  []string `json:"preferred_roles"`
	PreferredAgents []string `json:"preferred_agents"`
	LookingForRoles []string `json:"looking_for_roles"`
	DurationMinutes int      `json:"duration_minutes"`
}

// LFGInput carries the caller-supplied fields of a new LFG request.
type LFGInput struct {
	Username     string   `json:"username"`
	Server       string   `json:"server"`
	Rank         string   `json:"rank"`
	Playstyle    []string `json:"playstyle"`
	Availability string   `json:"availability"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	InGameName   string   `json:"in_game_name"`
}

// buildParty validates the input and assembles the entity without touching the
// store. All caller-supplied fields survive the round trip unchanged except
// the code, which is uppercased before format validation.
func buildParty(ownerID uint, in PartyInput, now time.Time) (*postgres.PartyInvitation, error) {
	if in.Size == "" || in.Server == "" || in.Rank == "" || in.Mode == "" || in.Code == "" {
		return nil, invalid("party", "size, server, rank, mode and code are required")
	}
	if !game_constants.IsPartySize(in.Size) {
		return nil, invalid("size", "unknown party size")
	}
	if !game_constants.IsServer(in.Server) {
		return nil, invalid("server", "unknown server")
	}
	if !game_constants.IsRank(in.Rank) {
		return nil, invalid("rank", "unknown rank")
	}
	if !game_constants.IsMode(in.Mode) {
		return nil, invalid("mode", "unknown game mode")
	}

	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if !game_constants.JoinCodeRegexp.MatchString(code) {
		return nil, invalid("code", "join code must be "+game_constants.JoinCodeFormat)
	}
	if len(in.Description) > 500 {
		return nil, invalid("description", "description must be at most 500 characters")
	}

	for _, role := range append(append([]string{}, in.PreferredRoles...), in.LookingForRoles...) {
		if !game_constants.IsRole(role) {
			return nil, invalid("roles", "unknown role: "+role)
		}
	}
	for _, agent := range in.PreferredAgents {
		if !game_constants.IsAgent(agent) {
			return nil, invalid("preferred_agents", "unknown agent: "+agent)
		}
	}

	ttl, err := PartyTTL(in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	return &postgres.PartyInvitation{
		Listing: postgres.Listing{
			OwnerID:   ownerID,
			CreatedAt: now,
			ExpiresAt: ExpiryFrom(now, ttl),
			Views:     0,
			Status:    game_constants.StatusActive,
		},
		Size:            in.Size,
		Server:          in.Server,
		Rank:            in.Rank,
		Mode:            in.Mode,
		Code:            code,
		Description:     in.Description,
		Tags:            normalizeSet(in.Tags),
		DiscordLink:     strings.TrimSpace(in.DiscordLink),
		InGameName:      strings.TrimSpace(in.InGameName),
		PreferredRoles:  normalizeSet(in.PreferredRoles),
		PreferredAgents: normalizeSet(in.PreferredAgents),
		LookingForRoles: normalizeSet(in.LookingForRoles),
	}, nil
}

// buildLFG validates the input and assembles the entity. Playstyle and tags
// are open string sets here; the recommended vocabulary only matters to the
// UI.
func buildLFG(ownerID uint, in LFGInput, now time.Time) (*postgres.LFGRequest, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, invalid("username", "username is required")
	}
	if !game_constants.IsRank(in.Rank) {
		return nil, invalid("rank", "unknown rank")
	}
	if in.Server != "" && !game_constants.IsServer(in.Server) {
		return nil, invalid("server", "unknown server")
	}
	playstyle := normalizeSet(in.Playstyle)
	if len(playstyle) == 0 {
		return nil, invalid("playstyle", "at least one playstyle is required")
	}
	availability := strings.TrimSpace(in.Availability)
	if availability == "" {
		return nil, invalid("availability", "availability is required")
	}
	if len(in.Description) > 500 {
		return nil, invalid("description", "description must be at most 500 characters")
	}

	return &postgres.LFGRequest{
		Listing: postgres.Listing{
			OwnerID:   ownerID,
			CreatedAt: now,
			ExpiresAt: ExpiryFrom(now, LFGTTL()),
			Views:     0,
			Status:    game_constants.StatusActive,
		},
		Username:     username,
		Server:       in.Server,
		Rank:         in.Rank,
		Playstyle:    playstyle,
		Availability: availability,
		Description:  in.Description,
		Tags:         normalizeSet(in.Tags),
		InGameName:   strings.TrimSpace(in.InGameName),
	}, nil
}

func (s *Service) CreateParty(ctx context.Context, ownerID uint, in PartyInput) (*postgres.PartyInvitation, error) {
	party, err := buildParty(ownerID, in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateParty(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *Service) CreateLFG(ctx context.Context, ownerID uint, in LFGInput) (*postgres.LFGRequest, error) {
	request, err := buildLFG(ownerID, in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateLFG(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// BrowseParties lists one page of visible party invitations. Browsing never
// touches view counters; only detail fetches count as a view.
func (s *Service) BrowseParties(ctx context.Context, c Criteria, sortBy string, pg Page) ([]postgres.PartyInvitation, Pagination, error) {
	if err := pg.validate(); err != nil {
		return nil, Pagination{}, err
	}
	c.Playstyle = normalizeSet(c.Playstyle)
	c.Tags = normalizeSet(c.Tags)
	parties, total, err := s.store.BrowseParties(ctx, c, sortBy, pg, s.now())
	if err != nil {
		return nil, Pagination{}, err
	}
	return parties, paginationFor(pg, total), nil
}

func (s *Service) BrowseLFG(ctx context.Context, c Criteria, sortBy string, pg Page) ([]postgres.LFGRequest, Pagination, error) {
	if err := pg.validate(); err != nil {
		return nil, Pagination{}, err
	}
	c.Playstyle = normalizeSet(c.Playstyle)
	c.Tags = normalizeSet(c.Tags)
	requests, total, err := s.store.BrowseLFG(ctx, c, sortBy, pg, s.now())
	if err != nil {
		return nil, Pagination{}, err
	}
	return requests, paginationFor(pg, total), nil
}

// GetParty is the detail fetch: it bumps the view counter first (best-effort
// telemetry, failures only logged) and then loads the listing.
func (s *Service) GetParty(ctx context.Context, id string) (*postgres.PartyInvitation, error) {
	if err := s.store.IncrementPartyViews(ctx, id); err != nil {
		log.Printf("listings: incrementing party views for %s: %v", id, err)
	}
	return s.store.GetPartyByID(ctx, id)
}

func (s *Service) GetLFG(ctx context.Context, id string) (*postgres.LFGRequest, error) {
	if err := s.store.IncrementLFGViews(ctx, id); err != nil {
		log.Printf("listings: incrementing lfg views for %s: %v", id, err)
	}
	return s.store.GetLFGByID(ctx, id)
}

// OwnListings powers the personal dashboard: both kinds, newest first,
// including expired and cancelled entries.
func (s *Service) OwnListings(ctx context.Context, ownerID uint) ([]postgres.PartyInvitation, []postgres.LFGRequest, error) {
	parties, err := s.store.PartiesByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	requests, err := s.store.LFGByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	return parties, requests, nil
}

// DeleteListing cancels a listing of the given kind on behalf of requesterID.
func (s *Service) DeleteListing(ctx context.Context, kind, id string, requesterID uint) error {
	switch kind {
	case game_constants.KindParty:
		return s.store.CancelParty(ctx, id, requesterID)
	case game_constants.KindLFG:
		return s.store.CancelLFG(ctx, id, requesterID)
	default:
		return invalid("kind", "unknown listing kind")
	}
}

// Owner resolves the display-safe owner summary attached to listing
// responses.
func (s *Service) Owner(ctx context.Context, ownerID uint) (*postgres.OwnerSummary, error) {
	return s.store.OwnerSummaryByID(ctx, ownerID)
}

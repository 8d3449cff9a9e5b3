// Package inventory manages persistent player state: accounts, their
// artifact collections, the set catalog, and saved builds.
package inventory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

// Service provides account and artifact management backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a new inventory Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Account represents a player account tracked by Relicsmith.
type Account struct {
	ID          string
	DisplayName string
	GameUID     *int64
	CreatedAt   time.Time
}

// CreateAccount creates a new account.
func (s *Service) CreateAccount(ctx context.Context, displayName string, gameUID *int64) (*Account, error) {
	a := &Account{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO accounts (display_name, game_uid)
		 VALUES ($1, $2)
		 RETURNING id, display_name, game_uid, created_at`,
		displayName, gameUID,
	).Scan(&a.ID, &a.DisplayName, &a.GameUID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

// GetAccountByName looks up an account by display name.
func (s *Service) GetAccountByName(ctx context.Context, name string) (*Account, error) {
	a := &Account{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, display_name, game_uid, created_at
		 FROM accounts WHERE display_name = $1`,
		name,
	).Scan(&a.ID, &a.DisplayName, &a.GameUID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get account by name %s: %w", name, err)
	}
	return a, nil
}

// EnsureAccount gets or creates an account by display name.
func (s *Service) EnsureAccount(ctx context.Context, name string) (*Account, error) {
	a, err := s.GetAccountByName(ctx, name)
	if err == nil {
		return a, nil
	}

	a, err = s.CreateAccount(ctx, name, nil)
	if err != nil {
		// Could be a race condition; try getting again
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return s.GetAccountByName(ctx, name)
		}
		return nil, fmt.Errorf("ensure account: %w", err)
	}
	return a, nil
}

// UpsertSet creates or updates a set catalog entry.
func (s *Service) UpsertSet(ctx context.Context, set artifact.Set) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifact_sets (id, name, two_piece_bonus, four_piece_bonus)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		   SET name = EXCLUDED.name,
		       two_piece_bonus = EXCLUDED.two_piece_bonus,
		       four_piece_bonus = EXCLUDED.four_piece_bonus`,
		set.ID, set.Name, set.TwoPieceBonus, nilIfEmpty(set.FourPieceBonus),
	)
	if err != nil {
		return fmt.Errorf("upsert set %s: %w", set.ID, err)
	}
	return nil
}

// GetSet returns a single set catalog entry.
func (s *Service) GetSet(ctx context.Context, id string) (*artifact.Set, error) {
	set := &artifact.Set{}
	var fourPiece sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, two_piece_bonus, four_piece_bonus
		 FROM artifact_sets WHERE id = $1`,
		id,
	).Scan(&set.ID, &set.Name, &set.TwoPieceBonus, &fourPiece)
	if err != nil {
		return nil, fmt.Errorf("get set %s: %w", id, err)
	}
	set.FourPieceBonus = fourPiece.String
	return set, nil
}

// ListSets returns the whole set catalog ordered by name.
func (s *Service) ListSets(ctx context.Context) ([]artifact.Set, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, two_piece_bonus, four_piece_bonus
		 FROM artifact_sets ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	var sets []artifact.Set
	for rows.Next() {
		var set artifact.Set
		var fourPiece sql.NullString
		if err := rows.Scan(&set.ID, &set.Name, &set.TwoPieceBonus, &fourPiece); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		set.FourPieceBonus = fourPiece.String
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// CreateArtifact validates and stores an artifact for an account,
// returning its id.
func (s *Service) CreateArtifact(ctx context.Context, accountID string, a artifact.Artifact) (string, error) {
	if err := a.Validate(); err != nil {
		return "", fmt.Errorf("invalid artifact: %w", err)
	}

	subs, err := json.Marshal(a.SubStats)
	if err != nil {
		return "", fmt.Errorf("marshal sub-stats: %w", err)
	}

	var id string
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO artifacts (account_id, set_id, slot, main_stat, main_stat_value, sub_stats, level, rarity, equipped_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		accountID, a.SetID, string(a.Slot), string(a.MainStat), a.MainStatValue,
		subs, a.Level, a.Rarity, nilIfEmpty(a.EquippedBy),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert artifact: %w", err)
	}
	return id, nil
}

// GetArtifact returns a single artifact by id.
func (s *Service) GetArtifact(ctx context.Context, id string) (*artifact.Artifact, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, set_id, slot, main_stat, main_stat_value, sub_stats, level, rarity, equipped_by
		 FROM artifacts WHERE id = $1`,
		id,
	)
	a, err := scanArtifact(row)
	if err != nil {
		return nil, fmt.Errorf("get artifact %s: %w", id, err)
	}
	return a, nil
}

// ListArtifacts returns all artifacts for an account in insertion order.
func (s *Service) ListArtifacts(ctx context.Context, accountID string) ([]artifact.Artifact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, set_id, slot, main_stat, main_stat_value, sub_stats, level, rarity, equipped_by
		 FROM artifacts WHERE account_id = $1 ORDER BY created_at, id`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()
	return collectArtifacts(rows)
}

// ListEligibleArtifacts returns the artifacts the scoring engine should
// consider for a character: rarity 4 or above, and either unequipped or
// already equipped by that character. This is the engine's input
// contract; the filtering happens here so the engine never has to.
func (s *Service) ListEligibleArtifacts(ctx context.Context, accountID, characterID string) ([]artifact.Artifact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, set_id, slot, main_stat, main_stat_value, sub_stats, level, rarity, equipped_by
		 FROM artifacts
		 WHERE account_id = $1
		   AND rarity >= 4
		   AND (equipped_by IS NULL OR equipped_by = $2)
		 ORDER BY created_at, id`,
		accountID, characterID,
	)
	if err != nil {
		return nil, fmt.Errorf("list eligible artifacts: %w", err)
	}
	defer rows.Close()
	return collectArtifacts(rows)
}

// SetArtifactLevel updates an artifact's enhancement level.
func (s *Service) SetArtifactLevel(ctx context.Context, id string, level int) error {
	if level < 0 || level > artifact.MaxLevel {
		return fmt.Errorf("level %d out of range [0,%d]", level, artifact.MaxLevel)
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE artifacts SET level = $1, updated_at = now() WHERE id = $2`,
		level, id,
	)
	if err != nil {
		return fmt.Errorf("set artifact level: %w", err)
	}
	return nil
}

// EquipArtifact assigns an artifact to a character, or unequips it when
// characterID is empty.
func (s *Service) EquipArtifact(ctx context.Context, id, characterID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE artifacts SET equipped_by = $1, updated_at = now() WHERE id = $2`,
		nilIfEmpty(characterID), id,
	)
	if err != nil {
		return fmt.Errorf("equip artifact: %w", err)
	}
	return nil
}

// DeleteArtifact removes an artifact.
func (s *Service) DeleteArtifact(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM artifacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artifact: %w", err)
	}
	return nil
}

// BuildRow represents a saved optimal-assignment result.
type BuildRow struct {
	ID                  string
	AccountID           string
	CharacterID         *string
	Shape               string
	PrimarySetID        *string
	SecondarySetID      *string
	TotalScore          float64
	SetBonusDescription string
	Assignment          json.RawMessage
	CreatedAt           time.Time
}

// SaveBuild persists an optimal-assignment result for an account.
func (s *Service) SaveBuild(ctx context.Context, b BuildRow) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO builds (account_id, character_id, shape, primary_set_id, secondary_set_id, total_score, set_bonus, assignment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		b.AccountID, b.CharacterID, b.Shape, b.PrimarySetID, b.SecondarySetID,
		b.TotalScore, b.SetBonusDescription, b.Assignment,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert build row: %w", err)
	}
	return id, nil
}

// ListBuildsByAccount returns all saved builds for an account, newest
// first.
func (s *Service) ListBuildsByAccount(ctx context.Context, accountID string) ([]BuildRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, character_id, shape, primary_set_id, secondary_set_id, total_score, set_bonus, assignment, created_at
		 FROM builds WHERE account_id = $1 ORDER BY created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}
	defer rows.Close()

	var builds []BuildRow
	for rows.Next() {
		var b BuildRow
		if err := rows.Scan(
			&b.ID, &b.AccountID, &b.CharacterID, &b.Shape,
			&b.PrimarySetID, &b.SecondarySetID,
			&b.TotalScore, &b.SetBonusDescription, &b.Assignment, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// GetBuildByID returns a single saved build.
func (s *Service) GetBuildByID(ctx context.Context, buildID string) (*BuildRow, error) {
	b := &BuildRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, character_id, shape, primary_set_id, secondary_set_id, total_score, set_bonus, assignment, created_at
		 FROM builds WHERE id = $1`,
		buildID,
	).Scan(
		&b.ID, &b.AccountID, &b.CharacterID, &b.Shape,
		&b.PrimarySetID, &b.SecondarySetID,
		&b.TotalScore, &b.SetBonusDescription, &b.Assignment, &b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get build %s: %w", buildID, err)
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (*artifact.Artifact, error) {
	var a artifact.Artifact
	var slot, mainStat string
	var subs []byte
	var equippedBy sql.NullString

	if err := row.Scan(&a.ID, &a.SetID, &slot, &mainStat, &a.MainStatValue, &subs, &a.Level, &a.Rarity, &equippedBy); err != nil {
		return nil, err
	}
	a.Slot = artifact.Slot(slot)
	a.MainStat = artifact.Stat(mainStat)
	a.EquippedBy = equippedBy.String
	if len(subs) > 0 {
		if err := json.Unmarshal(subs, &a.SubStats); err != nil {
			return nil, fmt.Errorf("unmarshal sub-stats: %w", err)
		}
	}
	return &a, nil
}

func collectArtifacts(rows *sql.Rows) ([]artifact.Artifact, error) {
	var items []artifact.Artifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

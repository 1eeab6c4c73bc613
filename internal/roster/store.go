package roster

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new roster Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) CreatePlayer(name string, jersey *int, position *string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	res, err := s.db.Exec(
		"INSERT INTO players (name, jersey, position, created_at) VALUES (?, ?, ?, ?)",
		name, jersey, position, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read player id: %w", err)
	}
	log.Info("Created player", "playerID", id, "name", name)
	return &Player{ID: id, Name: name, Jersey: jersey, Position: position, CreatedAt: now}, nil
}

func (s *store) GetPlayer(id int64) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, name, jersey, position, photo_path, created_at FROM players WHERE id = ?", id)
	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query player %d: %w", id, err)
	}
	return p, nil
}

func (s *store) UpdatePlayer(id int64, name *string, jersey *int, position *string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE players SET
			name = COALESCE(?, name),
			jersey = COALESCE(?, jersey),
			position = COALESCE(?, position)
		WHERE id = ?`,
		name, jersey, position, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPlayerNotFound
	}

	row := s.db.QueryRow("SELECT id, name, jersey, position, photo_path, created_at FROM players WHERE id = ?", id)
	p, err := scanPlayer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to read back player %d: %w", id, err)
	}
	log.Info("Updated player", "playerID", id)
	return p, nil
}

func (s *store) SetPlayerPhoto(id int64, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE players SET photo_path = ? WHERE id = ?", path, id)
	if err != nil {
		return fmt.Errorf("failed to set photo for player %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	log.Info("Updated player photo", "playerID", id, "path", path)
	return nil
}

// DeletePlayer removes a player and every stat entry referencing it in one
// transaction. The cascade is walked explicitly; no orphan stats survive.
func (s *store) DeletePlayer(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM stat_entries WHERE player_id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete stats for player %d: %w", id, err)
	}
	res, err := tx.Exec("DELETE FROM players WHERE id = ?", id)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return ErrPlayerNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit player delete: %w", err)
	}
	log.Info("Deleted player and cascaded stat entries", "playerID", id)
	return nil
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, jersey, position, photo_path, created_at FROM players ORDER BY id")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (s *store) CreateMatch(date string, opponent *string, isHome bool, homeScore, awayScore *int) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	res, err := s.db.Exec(
		"INSERT INTO matches (date, opponent, is_home, home_score, away_score, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		date, opponent, isHome, homeScore, awayScore, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read match id: %w", err)
	}
	log.Info("Created match", "matchID", id, "date", date, "isHome", isHome)
	return &Match{ID: id, Date: date, Opponent: opponent, IsHome: isHome, HomeScore: homeScore, AwayScore: awayScore, CreatedAt: now}, nil
}

func (s *store) GetMatch(id int64) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, date, opponent, is_home, home_score, away_score, created_at FROM matches WHERE id = ?", id)
	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query match %d: %w", id, err)
	}
	return m, nil
}

// DeleteMatch removes a match and cascades to its stat entries, mirroring
// DeletePlayer.
func (s *store) DeleteMatch(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM stat_entries WHERE match_id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete stats for match %d: %w", id, err)
	}
	res, err := tx.Exec("DELETE FROM matches WHERE id = ?", id)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return ErrMatchNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match delete: %w", err)
	}
	log.Info("Deleted match and cascaded stat entries", "matchID", id)
	return nil
}

func (s *store) ListMatches(r DateRange) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, date, opponent, is_home, home_score, away_score, created_at FROM matches"
	var args []any
	var conds []string
	if r.Start != "" {
		conds = append(conds, "date >= ?")
		args = append(args, r.Start)
	}
	if r.End != "" {
		conds = append(conds, "date <= ?")
		args = append(args, r.End)
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

// AddStatEntry inserts a stat line after verifying both referenced rows exist.
// Referential integrity is checked here, inside the transaction, not left to
// storage constraints alone.
func (s *store) AddStatEntry(in StatInput) (*StatEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin stat transaction: %w", err)
	}

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", in.PlayerID).Scan(&exists); err != nil {
		tx.Rollback()
		return nil, err
	}
	if !exists {
		tx.Rollback()
		return nil, ErrPlayerNotFound
	}
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM matches WHERE id = ?)", in.MatchID).Scan(&exists); err != nil {
		tx.Rollback()
		return nil, err
	}
	if !exists {
		tx.Rollback()
		return nil, ErrMatchNotFound
	}

	appearances := in.normalizedAppearances()
	now := time.Now().Unix()
	res, err := tx.Exec(
		"INSERT INTO stat_entries (player_id, match_id, goals, assists, appearances, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		in.PlayerID, in.MatchID, in.Goals, in.Assists, appearances, now,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to insert stat entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stat entry: %w", err)
	}

	log.Info("Recorded stat entry", "statID", id, "playerID", in.PlayerID, "matchID", in.MatchID, "goals", in.Goals, "assists", in.Assists)
	return &StatEntry{ID: id, PlayerID: in.PlayerID, MatchID: in.MatchID, Goals: in.Goals, Assists: in.Assists, Appearances: appearances, CreatedAt: now}, nil
}

func (s *store) GetStatEntry(id int64) (*StatEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, player_id, match_id, goals, assists, appearances, created_at FROM stat_entries WHERE id = ?", id)
	e, err := scanStatEntry(row)
	if err == sql.ErrNoRows {
		return nil, ErrStatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query stat entry %d: %w", id, err)
	}
	return e, nil
}

// UpdateStatEntry replaces the counters in place; values are never incremented.
func (s *store) UpdateStatEntry(id int64, goals, assists int, appearances *int) (*StatEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE stat_entries SET goals = ?, assists = ?, appearances = ? WHERE id = ?",
		goals, assists, appearances, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update stat entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStatNotFound
	}

	row := s.db.QueryRow("SELECT id, player_id, match_id, goals, assists, appearances, created_at FROM stat_entries WHERE id = ?", id)
	e, err := scanStatEntry(row)
	if err != nil {
		return nil, fmt.Errorf("failed to read back stat entry %d: %w", id, err)
	}
	log.Info("Updated stat entry", "statID", id, "goals", goals, "assists", assists)
	return e, nil
}

func (s *store) DeleteStatEntry(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM stat_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete stat entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStatNotFound
	}
	log.Info("Deleted stat entry", "statID", id)
	return nil
}

func (s *store) ListStatsForPlayer(playerID int64) ([]StatEntry, error) {
	return s.listStats("SELECT id, player_id, match_id, goals, assists, appearances, created_at FROM stat_entries WHERE player_id = ? ORDER BY id", playerID)
}

func (s *store) ListStatsForMatch(matchID int64) ([]StatEntry, error) {
	return s.listStats("SELECT id, player_id, match_id, goals, assists, appearances, created_at FROM stat_entries WHERE match_id = ? ORDER BY id", matchID)
}

func (s *store) ListAllStats() ([]StatEntry, error) {
	return s.listStats("SELECT id, player_id, match_id, goals, assists, appearances, created_at FROM stat_entries ORDER BY id")
}

func (s *store) listStats(query string, args ...any) ([]StatEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query stat entries", "error", err)
		return nil, err
	}
	defer rows.Close()

	var entries []StatEntry
	for rows.Next() {
		e, err := scanStatEntry(rows)
		if err != nil {
			log.Error("Failed to scan stat entry row", "error", err)
			continue
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"stat_entries", "matches", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var jersey sql.NullInt64
	var position, photoPath sql.NullString

	err := scanner.Scan(&p.ID, &p.Name, &jersey, &position, &photoPath, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if jersey.Valid {
		v := int(jersey.Int64)
		p.Jersey = &v
	}
	if position.Valid {
		p.Position = &position.String
	}
	if photoPath.Valid {
		p.PhotoPath = &photoPath.String
	}
	return &p, nil
}

func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var m Match
	var opponent sql.NullString
	var homeScore, awayScore sql.NullInt64

	err := scanner.Scan(&m.ID, &m.Date, &opponent, &m.IsHome, &homeScore, &awayScore, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if opponent.Valid {
		m.Opponent = &opponent.String
	}
	if homeScore.Valid {
		v := int(homeScore.Int64)
		m.HomeScore = &v
	}
	if awayScore.Valid {
		v := int(awayScore.Int64)
		m.AwayScore = &v
	}
	return &m, nil
}

func scanStatEntry(scanner interface{ Scan(...any) error }) (*StatEntry, error) {
	var e StatEntry
	var appearances sql.NullInt64

	err := scanner.Scan(&e.ID, &e.PlayerID, &e.MatchID, &e.Goals, &e.Assists, &appearances, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if appearances.Valid {
		v := int(appearances.Int64)
		e.Appearances = &v
	}
	return &e, nil
}

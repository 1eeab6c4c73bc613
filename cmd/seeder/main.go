package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"DB_NAME"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, err := sql.Open("sqlite3", cfg["DB_NAME"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %s", err)
	}

	log.Info("Successfully connected to the database.")

	now := time.Now().Unix()

	// A small demo roster
	roster := []struct {
		name     string
		jersey   int
		position string
	}{
		{"Seeder Player A", 1, "Portera"},
		{"Seeder Player B", 4, "Defensa"},
		{"Seeder Player C", 8, "Mediocentro"},
		{"Seeder Player D", 9, "Delantera"},
	}

	playerIDs := make([]int64, 0, len(roster))
	for _, p := range roster {
		res, err := db.Exec("INSERT INTO players (name, jersey, position, created_at) VALUES (?, ?, ?, ?)", p.name, p.jersey, p.position, now)
		if err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", p.name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			log.Fatalf("Failed to read inserted player id: %s", err)
		}
		playerIDs = append(playerIDs, id)
	}
	log.Info("Ensured dummy players exist.", "count", len(playerIDs))

	const batchSize = 100
	const numMatches = 1000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	opponents := []string{"Rayo Sur", "CD Norte", "Atletico Ríos", "Deportivo Luna"}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*6)

	for i := 0; i < numMatches; i++ {
		matchDay := time.Now().AddDate(0, 0, -rand.Intn(365))
		homeScore := rand.Intn(5)
		awayScore := rand.Intn(5)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			matchDay.Format("2006-01-02"),
			opponents[rand.Intn(len(opponents))],
			rand.Intn(2),
			homeScore,
			awayScore,
			now,
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(`
				INSERT INTO matches (date, opponent, is_home, home_score, away_score, created_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*6)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	// Give every player a stat line on a handful of recent matches.
	rows, err := db.Query("SELECT id FROM matches ORDER BY date DESC LIMIT 20")
	if err != nil {
		log.Fatalf("Failed to list recent matches: %s", err)
	}
	var matchIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Fatalf("Failed to scan match id: %s", err)
		}
		matchIDs = append(matchIDs, id)
	}
	rows.Close()

	for _, matchID := range matchIDs {
		for _, playerID := range playerIDs {
			_, err := db.Exec(
				"INSERT INTO stat_entries (player_id, match_id, goals, assists, appearances, created_at) VALUES (?, ?, ?, ?, ?, ?)",
				playerID, matchID, rand.Intn(3), rand.Intn(3), 1, now,
			)
			if err != nil {
				log.Fatalf("Failed to insert stat entry: %s", err)
			}
		}
	}
	log.Info("Inserted stat entries for recent matches.", "matches", len(matchIDs), "players", len(playerIDs))

	duration := time.Since(startTime)
	log.Info("Successfully seeded the database.", "duration", duration)
}

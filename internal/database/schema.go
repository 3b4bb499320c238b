package database

import (
	"database/sql"

	log "github.com/sirupsen/logrus"
)

// CreateTables creates all required tables in the database
func CreateTables(db *sql.DB) {
	createUsersTable(db)
	createWorkoutsTable(db)
	createExercisesTable(db)
	createSetsTable(db)
	createCardioSessionsTable(db)
}

// createUsersTable creates the users table
func createUsersTable(db *sql.DB) {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(80) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.Exec(query)
	if err != nil {
		log.Fatal("Failed to create users table:", err)
	}
}

func createWorkoutsTable(db *sql.DB) {
	query := `
	CREATE TABLE IF NOT EXISTS workouts (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.Exec(query)
	if err != nil {
		log.Fatal("Failed to create workouts table:", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS workouts_user_created_idx ON workouts(user_id, created_at DESC, id DESC)`); err != nil {
		log.Fatal("Failed to ensure workouts user/created index:", err)
	}
}

func createExercisesTable(db *sql.DB) {
	query := `
	CREATE TABLE IF NOT EXISTS exercises (
		id SERIAL PRIMARY KEY,
		workout_id INTEGER NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		exercise_order INTEGER NOT NULL,
		notes TEXT
	);
	`

	_, err := db.Exec(query)
	if err != nil {
		log.Fatal("Failed to create exercises table:", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS exercises_workout_order_idx ON exercises(workout_id, exercise_order)`); err != nil {
		log.Fatal("Failed to ensure exercises workout/order index:", err)
	}
}

func createSetsTable(db *sql.DB) {
	query := `
	CREATE TABLE IF NOT EXISTS sets (
		id SERIAL PRIMARY KEY,
		exercise_id INTEGER NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
		set_number INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		rest_seconds INTEGER,
		notes TEXT
	);
	`

	_, err := db.Exec(query)
	if err != nil {
		log.Fatal("Failed to create sets table:", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS sets_exercise_number_idx ON sets(exercise_id, set_number)`); err != nil {
		log.Fatal("Failed to ensure sets exercise/number index:", err)
	}
}

func createCardioSessionsTable(db *sql.DB) {
	query := `
	CREATE TABLE IF NOT EXISTS cardio_sessions (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		activity_type VARCHAR(50) NOT NULL,
		duration_minutes INTEGER NOT NULL,
		distance DOUBLE PRECISION,
		distance_unit VARCHAR(10) NOT NULL DEFAULT 'km',
		calories_burned INTEGER,
		avg_heart_rate INTEGER,
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.Exec(query)
	if err != nil {
		log.Fatal("Failed to create cardio_sessions table:", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS cardio_sessions_user_date_idx ON cardio_sessions(user_id, date DESC, id DESC)`); err != nil {
		log.Fatal("Failed to ensure cardio_sessions user/date index:", err)
	}
}

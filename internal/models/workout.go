package models

import (
	"time"
)

// Workout is the aggregate root of a training program. Exercises and their
// sets are owned exclusively by the workout and are replaced as a unit.
type Workout struct {
	ID          int        `json:"id" db:"id"`
	UserID      int        `json:"user_id" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	Exercises   []Exercise `json:"exercises"`
}

// Exercise is ordered within its workout. The column is exercise_order
// because "order" is a reserved word; the JSON key stays "order".
type Exercise struct {
	ID        int     `json:"id" db:"id"`
	WorkoutID int     `json:"-" db:"workout_id"`
	Name      string  `json:"name" db:"name"`
	Order     int     `json:"order" db:"exercise_order"`
	Notes     *string `json:"notes" db:"notes"`
	Sets      []Set   `json:"sets"`
}

// Set is a single planned or logged set, ordered by set_number.
type Set struct {
	ID          int     `json:"id" db:"id"`
	ExerciseID  int     `json:"-" db:"exercise_id"`
	SetNumber   int     `json:"set_number" db:"set_number"`
	Reps        int     `json:"reps" db:"reps"`
	Weight      float64 `json:"weight" db:"weight"`
	Completed   bool    `json:"completed" db:"completed"`
	RestSeconds *int    `json:"rest_seconds" db:"rest_seconds"`
	Notes       *string `json:"notes" db:"notes"`
}

package models

import (
	"time"
)

// CardioSession is a flat per-user log entry, independent of workouts.
// Date is a calendar date; handlers render it as YYYY-MM-DD.
type CardioSession struct {
	ID              int       `json:"id" db:"id"`
	UserID          int       `json:"user_id" db:"user_id"`
	Date            time.Time `json:"-" db:"date"`
	ActivityType    string    `json:"activity_type" db:"activity_type"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	Distance        *float64  `json:"distance" db:"distance"`
	DistanceUnit    string    `json:"distance_unit" db:"distance_unit"`
	CaloriesBurned  *int      `json:"calories_burned" db:"calories_burned"`
	AvgHeartRate    *int      `json:"avg_heart_rate" db:"avg_heart_rate"`
	Notes           *string   `json:"notes" db:"notes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

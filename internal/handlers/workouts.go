package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/Bnguyen23/Fitness-Program-With-AI-Chat/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

// setInput uses the established client key "setNumber"; everything else on
// the wire is snake_case.
type setInput struct {
	SetNumber   int      `json:"setNumber"`
	Reps        *int     `json:"reps"`
	Weight      *float64 `json:"weight"`
	Completed   *bool    `json:"completed"`
	RestSeconds *int     `json:"rest_seconds"`
	Notes       *string  `json:"notes"`
}

type exerciseInput struct {
	Name  string     `json:"name"`
	Order *int       `json:"order"`
	Notes *string    `json:"notes"`
	Sets  []setInput `json:"sets"`
}

// workoutInput distinguishes an absent "exercises" key (nil pointer, keep
// the existing tree) from an explicit empty array (replace with nothing).
type workoutInput struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Exercises   *[]exerciseInput `json:"exercises"`
}

// validateExercises rejects bad input before any row is written.
func validateExercises(exercises []exerciseInput) (string, bool) {
	for _, exercise := range exercises {
		if strings.TrimSpace(exercise.Name) == "" {
			return "Exercise name is required", false
		}
		for _, set := range exercise.Sets {
			if set.Reps == nil {
				return "Set reps are required", false
			}
		}
	}
	return "", true
}

// insertExerciseTree writes the exercise/set subtree for a workout inside
// the caller's transaction. Order defaults to the 1-based input position,
// weight to 0 and completed to false.
func insertExerciseTree(tx *sql.Tx, workoutID int, exercises []exerciseInput) error {
	for idx, exercise := range exercises {
		order := idx + 1
		if exercise.Order != nil {
			order = *exercise.Order
		}

		var exerciseID int
		err := tx.QueryRow(
			`INSERT INTO exercises (workout_id, name, exercise_order, notes) VALUES ($1, $2, $3, $4) RETURNING id`,
			workoutID, exercise.Name, order, exercise.Notes,
		).Scan(&exerciseID)
		if err != nil {
			return err
		}

		for _, set := range exercise.Sets {
			weight := 0.0
			if set.Weight != nil {
				weight = *set.Weight
			}
			completed := false
			if set.Completed != nil {
				completed = *set.Completed
			}

			_, err := tx.Exec(
				`INSERT INTO sets (exercise_id, set_number, reps, weight, completed, rest_seconds, notes) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				exerciseID, set.SetNumber, *set.Reps, weight, completed, set.RestSeconds, set.Notes,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// hydrateExercises loads the ordered exercise/set subtrees for a batch of
// workouts in one query per level.
func (h *Handler) hydrateExercises(workoutIDs []int) (map[int][]models.Exercise, error) {
	byWorkout := make(map[int][]models.Exercise, len(workoutIDs))
	if len(workoutIDs) == 0 {
		return byWorkout, nil
	}

	rows, err := h.db.Query(
		`SELECT id, workout_id, name, exercise_order, notes FROM exercises WHERE workout_id = ANY($1) ORDER BY workout_id ASC, exercise_order ASC, id ASC`,
		pq.Array(workoutIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	var exerciseIDs []int
	for rows.Next() {
		var exercise models.Exercise
		var notes sql.NullString
		if err := rows.Scan(&exercise.ID, &exercise.WorkoutID, &exercise.Name, &exercise.Order, &notes); err != nil {
			return nil, err
		}
		if notes.Valid {
			exercise.Notes = &notes.String
		}
		exercise.Sets = make([]models.Set, 0)
		exercises = append(exercises, exercise)
		exerciseIDs = append(exerciseIDs, exercise.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(exerciseIDs) > 0 {
		setRows, err := h.db.Query(
			`SELECT id, exercise_id, set_number, reps, weight, completed, rest_seconds, notes FROM sets WHERE exercise_id = ANY($1) ORDER BY exercise_id ASC, set_number ASC, id ASC`,
			pq.Array(exerciseIDs),
		)
		if err != nil {
			return nil, err
		}
		defer setRows.Close()

		position := make(map[int]int, len(exercises))
		for i, exercise := range exercises {
			position[exercise.ID] = i
		}

		for setRows.Next() {
			var set models.Set
			var restSeconds sql.NullInt64
			var notes sql.NullString
			err := setRows.Scan(&set.ID, &set.ExerciseID, &set.SetNumber, &set.Reps, &set.Weight, &set.Completed, &restSeconds, &notes)
			if err != nil {
				return nil, err
			}
			if restSeconds.Valid {
				rest := int(restSeconds.Int64)
				set.RestSeconds = &rest
			}
			if notes.Valid {
				set.Notes = &notes.String
			}
			if i, ok := position[set.ExerciseID]; ok {
				exercises[i].Sets = append(exercises[i].Sets, set)
			}
		}
		if err := setRows.Err(); err != nil {
			return nil, err
		}
	}

	for _, exercise := range exercises {
		byWorkout[exercise.WorkoutID] = append(byWorkout[exercise.WorkoutID], exercise)
	}
	return byWorkout, nil
}

// getWorkoutTree loads a workout with its full exercise/set tree. The
// lookup is owner-scoped, so a workout owned by someone else reads exactly
// like a missing one.
func (h *Handler) getWorkoutTree(workoutID, userID int) (models.Workout, error) {
	var workout models.Workout
	var description sql.NullString

	err := h.db.QueryRow(
		`SELECT id, user_id, name, description, created_at, updated_at FROM workouts WHERE id = $1 AND user_id = $2`,
		workoutID, userID,
	).Scan(&workout.ID, &workout.UserID, &workout.Name, &description, &workout.CreatedAt, &workout.UpdatedAt)
	if err != nil {
		return workout, err
	}
	if description.Valid {
		workout.Description = &description.String
	}

	trees, err := h.hydrateExercises([]int{workout.ID})
	if err != nil {
		return workout, err
	}
	workout.Exercises = trees[workout.ID]
	if workout.Exercises == nil {
		workout.Exercises = make([]models.Exercise, 0)
	}
	return workout, nil
}

// ListWorkouts returns the user's workouts, newest first, with full trees.
func (h *Handler) ListWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	rows, err := h.db.Query(
		`SELECT id, user_id, name, description, created_at, updated_at FROM workouts WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		log.Errorf("Error retrieving workouts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving workouts"})
		return
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	var workoutIDs []int
	for rows.Next() {
		var workout models.Workout
		var description sql.NullString
		err := rows.Scan(&workout.ID, &workout.UserID, &workout.Name, &description, &workout.CreatedAt, &workout.UpdatedAt)
		if err != nil {
			log.Errorf("Error scanning workout: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving workouts"})
			return
		}
		if description.Valid {
			workout.Description = &description.String
		}
		workout.Exercises = make([]models.Exercise, 0)
		workouts = append(workouts, workout)
		workoutIDs = append(workoutIDs, workout.ID)
	}
	if err := rows.Err(); err != nil {
		log.Errorf("Error reading workouts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving workouts"})
		return
	}

	trees, err := h.hydrateExercises(workoutIDs)
	if err != nil {
		log.Errorf("Error retrieving workout exercises: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving workouts"})
		return
	}
	for i := range workouts {
		if exercises, ok := trees[workouts[i].ID]; ok {
			workouts[i].Exercises = exercises
		}
	}

	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns one workout with its full tree.
func (h *Handler) GetWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	workoutID, err := strconv.Atoi(c.Param("workout_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid workout ID"})
		return
	}

	workout, err := h.getWorkoutTree(workoutID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Workout not found"})
			return
		}
		log.Errorf("Error retrieving workout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving workout"})
		return
	}

	c.JSON(http.StatusOK, workout)
}

// CreateWorkout persists a new workout and its nested exercise/set tree in
// one transaction; a failure anywhere leaves nothing behind.
func (h *Handler) CreateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req workoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Workout name is required"})
		return
	}

	var exercises []exerciseInput
	if req.Exercises != nil {
		exercises = *req.Exercises
	}
	if message, ok := validateExercises(exercises); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		log.Errorf("Error starting workout transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating workout"})
		return
	}
	defer tx.Rollback()

	var workoutID int
	err = tx.QueryRow(
		`INSERT INTO workouts (user_id, name, description) VALUES ($1, $2, $3) RETURNING id`,
		userID, name, req.Description,
	).Scan(&workoutID)
	if err != nil {
		log.Errorf("Error creating workout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating workout"})
		return
	}

	if err := insertExerciseTree(tx, workoutID, exercises); err != nil {
		log.Errorf("Error creating workout exercises: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating workout"})
		return
	}

	if err := tx.Commit(); err != nil {
		log.Errorf("Error committing workout transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating workout"})
		return
	}

	workout, err := h.getWorkoutTree(workoutID, userID)
	if err != nil {
		log.Errorf("Error reloading workout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving workout"})
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout patches name/description independently and, when the
// exercises key is present, replaces the whole subtree:
// delete-children-then-insert-children inside one transaction.
func (h *Handler) UpdateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	workoutID, err := strconv.Atoi(c.Param("workout_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid workout ID"})
		return
	}

	var req workoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if req.Exercises != nil {
		if message, ok := validateExercises(*req.Exercises); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": message})
			return
		}
	}

	var existingID int
	err = h.db.QueryRow(`SELECT id FROM workouts WHERE id = $1 AND user_id = $2`, workoutID, userID).Scan(&existingID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Workout not found"})
			return
		}
		log.Errorf("Error checking workout owner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating workout"})
		return
	}

	var namePtr *string
	if trimmed := strings.TrimSpace(req.Name); trimmed != "" {
		namePtr = &trimmed
	}

	tx, err := h.db.Begin()
	if err != nil {
		log.Errorf("Error starting workout transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating workout"})
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`UPDATE workouts SET name = COALESCE($1, name), description = COALESCE($2, description), updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
		namePtr, req.Description, workoutID,
	)
	if err != nil {
		log.Errorf("Error updating workout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating workout"})
		return
	}

	if req.Exercises != nil {
		// Sets go with their exercises via the cascade.
		if _, err := tx.Exec(`DELETE FROM exercises WHERE workout_id = $1`, workoutID); err != nil {
			log.Errorf("Error clearing workout exercises: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating workout"})
			return
		}
		if err := insertExerciseTree(tx, workoutID, *req.Exercises); err != nil {
			log.Errorf("Error replacing workout exercises: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating workout"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Errorf("Error committing workout transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating workout"})
		return
	}

	workout, err := h.getWorkoutTree(workoutID, userID)
	if err != nil {
		log.Errorf("Error reloading workout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving workout"})
		return
	}

	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout deletes user's workout by id; exercises and sets cascade.
func (h *Handler) DeleteWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	workoutID, err := strconv.Atoi(c.Param("workout_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid workout ID"})
		return
	}

	var existingID int
	err = h.db.QueryRow(`SELECT id FROM workouts WHERE id = $1 AND user_id = $2`, workoutID, userID).Scan(&existingID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Workout not found"})
			return
		}
		log.Errorf("Error checking workout owner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting workout"})
		return
	}

	if _, err := h.db.Exec(`DELETE FROM workouts WHERE id = $1`, workoutID); err != nil {
		log.Errorf("Error deleting workout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting workout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}

package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"softkom/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskUpdate carries the fields of a partial update. A nil pointer means the
// field was absent from the request and the stored value is kept.
type TaskUpdate struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Completed   *bool   `json:"completed"`
}

func ListTasks(userID string, db *pgxpool.Pool) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tasks := []models.Task{}
	stmt := "SELECT id, user_id, description, category, completed, timestamp FROM tasks WHERE user_id = $1 ORDER BY id"
	rows, err := db.Query(ctx, stmt, userID)
	if err != nil {
		log.Println("error querying tasks:", err)
		return tasks, errors.New("error querying tasks")
	}
	defer rows.Close()

	for rows.Next() {
		t := models.Task{}
		err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Category, &t.Completed, &t.Timestamp)
		if err != nil {
			log.Println("Error scanning task row:", err)
			return tasks, errors.New("error processing tasks")
		}
		t.Timestamp = t.Timestamp.UTC()
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		log.Println("Error after scanning all rows:", err)
		return tasks, errors.New("error processing tasks")
	}

	return tasks, nil
}

// CheckTaskAccess turns the result of a task lookup into the access decision
// for a mutation. Existence comes first: a missing task is ErrTaskNotFound
// even for callers who would not own it, and only an existing task owned by
// someone else is ErrNotTaskOwner. Mutations proceed only on nil.
func CheckTaskAccess(scanErr error, ownerID string, callerID string) error {
	if scanErr != nil {
		if errors.Is(scanErr, pgx.ErrNoRows) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("error looking up task: %w", scanErr)
	}
	if ownerID != callerID {
		return ErrNotTaskOwner
	}
	return nil
}

func CreateTask(userID string, description string, category string, completed bool, db *pgxpool.Pool) (models.Task, error) {
	var t models.Task
	if err := ValidateTaskDescription(description); err != nil {
		return t, err
	}
	if err := ValidateTaskCategory(category); err != nil {
		return t, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "INSERT INTO tasks (user_id, description, category, completed) VALUES ($1, $2, $3, $4) RETURNING id, user_id, description, category, completed, timestamp;"
	row := db.QueryRow(ctx, stmt, userID, description, category, completed)
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Category, &t.Completed, &t.Timestamp)
	if err != nil {
		log.Println("Error inserting task:", err)
		return t, fmt.Errorf("failed to save task: %w", err)
	}
	t.Timestamp = t.Timestamp.UTC()

	return t, nil
}

// UpdateTask applies a partial update to a task the caller owns. The row is
// locked for the duration of the transaction, so concurrent updates to the
// same task are serialized. Existence is checked before ownership: a missing
// task is ErrTaskNotFound even for callers who own nothing, and someone
// else's task is ErrNotTaskOwner without leaking its content.
func UpdateTask(userID string, taskID int, upd TaskUpdate, db *pgxpool.Pool) (models.Task, error) {
	var t models.Task

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return t, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	stmt := "SELECT id, user_id, description, category, completed, timestamp FROM tasks WHERE id = $1 FOR UPDATE;"
	row := tx.QueryRow(ctx, stmt, taskID)
	err = row.Scan(&t.ID, &t.UserID, &t.Description, &t.Category, &t.Completed, &t.Timestamp)
	if err := CheckTaskAccess(err, t.UserID.String(), userID); err != nil {
		return models.Task{}, err
	}

	if upd.Description != nil {
		if err := ValidateTaskDescription(*upd.Description); err != nil {
			return models.Task{}, err
		}
		t.Description = *upd.Description
	}
	if upd.Category != nil {
		if err := ValidateTaskCategory(*upd.Category); err != nil {
			return models.Task{}, err
		}
		t.Category = *upd.Category
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}

	_, err = tx.Exec(ctx, "UPDATE tasks SET description = $1, category = $2, completed = $3 WHERE id = $4", t.Description, t.Category, t.Completed, t.ID)
	if err != nil {
		log.Println("error updating task:", err)
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Task{}, fmt.Errorf("failed to commit task update: %w", err)
	}

	t.Timestamp = t.Timestamp.UTC()
	return t, nil
}

// DeleteTask removes a task after the same existence-then-ownership checks
// as UpdateTask.
func DeleteTask(userID string, taskID int, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var ownerID string
	row := tx.QueryRow(ctx, "SELECT user_id FROM tasks WHERE id = $1 FOR UPDATE;", taskID)
	if err := CheckTaskAccess(row.Scan(&ownerID), ownerID, userID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM tasks WHERE id = $1;", taskID); err != nil {
		log.Println("Failed to delete task:", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return tx.Commit(ctx)
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"softkom/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// ListTasksHandler returns every task owned by the caller.
func ListTasksHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	userID, err := utils.CurrentUserID(r, redisClient)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "authentication required")
		return
	}

	tasks, err := utils.ListTasks(userID, db)
	if err != nil {
		log.Println("Error retrieving tasks for user:", userID, ":", err)
		errorJSON(w, http.StatusInternalServerError, "could not load tasks")
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
}

func CreateTaskHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	userID, err := utils.AuthorizeRequest(r, redisClient)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var in createTaskRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := utils.CreateTask(userID, in.Description, in.Category, in.Completed, db)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDescription) || errors.Is(err, utils.ErrInvalidCategory) {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error creating task for user:", userID, ":", err)
		errorJSON(w, http.StatusInternalServerError, "could not create task")
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func taskIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func UpdateTaskHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	userID, err := utils.AuthorizeRequest(r, redisClient)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "authentication required")
		return
	}

	taskID, err := taskIDParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var upd utils.TaskUpdate
	if err := decodeJSON(r, &upd); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := utils.UpdateTask(userID, taskID, upd, db)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrTaskNotFound):
			errorJSON(w, http.StatusNotFound, "task not found")
		case errors.Is(err, utils.ErrNotTaskOwner):
			errorJSON(w, http.StatusForbidden, "unauthorized")
		case errors.Is(err, utils.ErrInvalidDescription), errors.Is(err, utils.ErrInvalidCategory):
			errorJSON(w, http.StatusBadRequest, err.Error())
		default:
			log.Println("Error updating task", taskID, "for user:", userID, ":", err)
			errorJSON(w, http.StatusInternalServerError, "could not update task")
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func DeleteTaskHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	userID, err := utils.AuthorizeRequest(r, redisClient)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "authentication required")
		return
	}

	taskID, err := taskIDParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := utils.DeleteTask(userID, taskID, db); err != nil {
		switch {
		case errors.Is(err, utils.ErrTaskNotFound):
			errorJSON(w, http.StatusNotFound, "task not found")
		case errors.Is(err, utils.ErrNotTaskOwner):
			errorJSON(w, http.StatusForbidden, "unauthorized")
		default:
			log.Println("Error deleting task", taskID, "for user:", userID, ":", err)
			errorJSON(w, http.StatusInternalServerError, "could not delete task")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

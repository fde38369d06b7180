package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/antarcticsurvey/amlr-backend-go/internal/models"
)

// TaskRepository handles database operations for analysis tasks
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new analysis task in pending state
func (r *TaskRepository) Create(task *models.AnalysisTask) error {
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	query := `INSERT INTO analysis_tasks (task_type, status, result_summary, error_message, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		task.TaskType,
		task.Status,
		task.ResultSummary,
		task.ErrorMessage,
		task.StartTime,
		task.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create analysis task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	task.ID = id
	return nil
}

// GetByID retrieves an analysis task by ID, or nil when absent
func (r *TaskRepository) GetByID(id int64) (*models.AnalysisTask, error) {
	query := `SELECT id, task_type, status, result_summary, error_message,
		start_time, end_time, created_at
		FROM analysis_tasks WHERE id = ?`

	task := &models.AnalysisTask{}
	err := r.db.QueryRow(query, id).Scan(
		&task.ID,
		&task.TaskType,
		&task.Status,
		&task.ResultSummary,
		&task.ErrorMessage,
		&task.StartTime,
		&task.EndTime,
		&task.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis task: %w", err)
	}

	return task, nil
}

// MarkRunning transitions a task to running and records the start time
func (r *TaskRepository) MarkRunning(id int64) error {
	query := `UPDATE analysis_tasks SET status = ?, start_time = ? WHERE id = ?`
	if _, err := r.db.Exec(query, models.TaskStatusRunning, time.Now().Unix(), id); err != nil {
		return fmt.Errorf("failed to mark task as running: %w", err)
	}
	return nil
}

// MarkCompleted transitions a task to completed with a result summary
func (r *TaskRepository) MarkCompleted(id int64, resultSummary string) error {
	query := `UPDATE analysis_tasks SET status = ?, result_summary = ?, end_time = ? WHERE id = ?`
	if _, err := r.db.Exec(query, models.TaskStatusCompleted, resultSummary, time.Now().Unix(), id); err != nil {
		return fmt.Errorf("failed to mark task as completed: %w", err)
	}
	return nil
}

// MarkFailed transitions a task to failed with an error message
func (r *TaskRepository) MarkFailed(id int64, errorMessage string) error {
	query := `UPDATE analysis_tasks SET status = ?, error_message = ?, end_time = ? WHERE id = ?`
	if _, err := r.db.Exec(query, models.TaskStatusFailed, errorMessage, time.Now().Unix(), id); err != nil {
		return fmt.Errorf("failed to mark task as failed: %w", err)
	}
	return nil
}

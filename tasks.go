package gtasks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListTasks returns one page of the tasks in the specified task list.
// Pagination is caller-driven: pass the returned NextPageToken back via
// opts.PageToken to fetch the next page. opts may be nil.
func (s *Service) ListTasks(ctx context.Context, taskListID string, opts *ListTasksOptions) (*Tasks, error) {
	var result Tasks
	err := s.do(ctx, call{
		op:         "tasks.list",
		method:     http.MethodGet,
		path:       "/lists/" + url.PathEscape(taskListID) + "/tasks",
		query:      opts.query(),
		taskListID: taskListID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTask returns the specified task.
func (s *Service) GetTask(ctx context.Context, taskListID, taskID string) (*Task, error) {
	var result Task
	err := s.do(ctx, call{
		op:         "tasks.get",
		method:     http.MethodGet,
		path:       taskPath(taskListID, taskID),
		taskListID: taskListID,
		taskID:     taskID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// InsertTask creates a new task on the specified task list. opts positions
// the new task under a parent and/or after a previous sibling; nil creates
// it at the first position of the top level.
func (s *Service) InsertTask(ctx context.Context, taskListID string, task *Task, opts *MoveTaskOptions) (*Task, error) {
	var result Task
	err := s.do(ctx, call{
		op:         "tasks.insert",
		method:     http.MethodPost,
		path:       "/lists/" + url.PathEscape(taskListID) + "/tasks",
		query:      opts.query(),
		body:       task,
		taskListID: taskListID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateTask replaces the specified task. The task must carry the ID
// assigned by the server. The read-only Updated field is stripped before
// sending, the server rejects it otherwise.
func (s *Service) UpdateTask(ctx context.Context, taskListID string, task *Task) (*Task, error) {
	if task == nil || task.ID == nil {
		return nil, fmt.Errorf("gtasks: update task: id must be set")
	}

	sanitized := *task
	sanitized.Updated = nil

	var result Task
	err := s.do(ctx, call{
		op:         "tasks.update",
		method:     http.MethodPut,
		path:       taskPath(taskListID, *task.ID),
		body:       &sanitized,
		taskListID: taskListID,
		taskID:     *task.ID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PatchTask updates the specified task with patch semantics: only the
// fields present in task are changed.
func (s *Service) PatchTask(ctx context.Context, taskListID, taskID string, task *Task) (*Task, error) {
	var result Task
	err := s.do(ctx, call{
		op:         "tasks.patch",
		method:     http.MethodPatch,
		path:       taskPath(taskListID, taskID),
		body:       task,
		taskListID: taskListID,
		taskID:     taskID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteTask deletes the specified task from the task list.
func (s *Service) DeleteTask(ctx context.Context, taskListID, taskID string) error {
	return s.do(ctx, call{
		op:         "tasks.delete",
		method:     http.MethodDelete,
		path:       taskPath(taskListID, taskID),
		taskListID: taskListID,
		taskID:     taskID,
	}, nil)
}

// ClearTasks clears all completed tasks from the specified task list. The
// affected tasks are marked hidden and no longer returned by default when
// listing the task list's tasks.
func (s *Service) ClearTasks(ctx context.Context, taskListID string) error {
	return s.do(ctx, call{
		op:         "tasks.clear",
		method:     http.MethodPost,
		path:       "/lists/" + url.PathEscape(taskListID) + "/clear",
		taskListID: taskListID,
	}, nil)
}

// MoveTask moves the specified task to another position in the task list:
// under a new parent task and/or after a new previous sibling. opts may be
// nil, which moves the task to the first position at the top level.
func (s *Service) MoveTask(ctx context.Context, taskListID, taskID string, opts *MoveTaskOptions) (*Task, error) {
	var result Task
	err := s.do(ctx, call{
		op:         "tasks.move",
		method:     http.MethodPost,
		path:       taskPath(taskListID, taskID) + "/move",
		query:      opts.query(),
		taskListID: taskListID,
		taskID:     taskID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func taskPath(taskListID, taskID string) string {
	return "/lists/" + url.PathEscape(taskListID) + "/tasks/" + url.PathEscape(taskID)
}

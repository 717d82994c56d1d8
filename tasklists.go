package gtasks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListTaskLists returns one page of the authenticated user's task lists.
// Pagination is caller-driven: pass the returned NextPageToken back via
// opts.PageToken to fetch the next page. opts may be nil.
func (s *Service) ListTaskLists(ctx context.Context, opts *ListTaskListsOptions) (*TaskLists, error) {
	var result TaskLists
	err := s.do(ctx, call{
		op:     "tasklists.list",
		method: http.MethodGet,
		path:   "/users/@me/lists",
		query:  opts.query(),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTaskList returns the authenticated user's specified task list.
func (s *Service) GetTaskList(ctx context.Context, taskListID string) (*TaskList, error) {
	var result TaskList
	err := s.do(ctx, call{
		op:         "tasklists.get",
		method:     http.MethodGet,
		path:       "/users/@me/lists/" + url.PathEscape(taskListID),
		taskListID: taskListID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// InsertTaskList creates a new task list and adds it to the authenticated
// user's task lists.
func (s *Service) InsertTaskList(ctx context.Context, taskList *TaskList) (*TaskList, error) {
	var result TaskList
	err := s.do(ctx, call{
		op:     "tasklists.insert",
		method: http.MethodPost,
		path:   "/users/@me/lists",
		body:   taskList,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateTaskList replaces the specified task list. The task list must carry
// the ID assigned by the server.
func (s *Service) UpdateTaskList(ctx context.Context, taskList *TaskList) (*TaskList, error) {
	if taskList == nil || taskList.ID == nil {
		return nil, fmt.Errorf("gtasks: update task list: id must be set")
	}

	var result TaskList
	err := s.do(ctx, call{
		op:         "tasklists.update",
		method:     http.MethodPut,
		path:       "/users/@me/lists/" + url.PathEscape(*taskList.ID),
		body:       taskList,
		taskListID: *taskList.ID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PatchTaskList updates the specified task list with patch semantics: only
// the fields present in taskList are changed.
func (s *Service) PatchTaskList(ctx context.Context, taskListID string, taskList *TaskList) (*TaskList, error) {
	var result TaskList
	err := s.do(ctx, call{
		op:         "tasklists.patch",
		method:     http.MethodPatch,
		path:       "/users/@me/lists/" + url.PathEscape(taskListID),
		body:       taskList,
		taskListID: taskListID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteTaskList deletes the authenticated user's specified task list.
func (s *Service) DeleteTaskList(ctx context.Context, taskListID string) error {
	return s.do(ctx, call{
		op:         "tasklists.delete",
		method:     http.MethodDelete,
		path:       "/users/@me/lists/" + url.PathEscape(taskListID),
		taskListID: taskListID,
	}, nil)
}

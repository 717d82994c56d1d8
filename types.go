package gtasks

import "time"

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	// StatusNeedsAction marks a task that still has to be done.
	StatusNeedsAction TaskStatus = "needsAction"

	// StatusCompleted marks a task that has been completed.
	StatusCompleted TaskStatus = "completed"
)

// TaskList is a named container of tasks.
//
// The API returns partial objects depending on field masks, so every field
// is optional and no field may be assumed present. Absent fields are omitted
// from outgoing JSON, never sent as null.
type TaskList struct {
	// Kind is the resource type. Always "tasks#taskList" when present.
	Kind *string `json:"kind,omitempty"`

	// ID is the task list identifier, assigned by the server.
	ID *string `json:"id,omitempty"`

	// Etag is the ETag of the resource.
	Etag *string `json:"etag,omitempty"`

	// Title is the title of the task list.
	Title *string `json:"title,omitempty"`

	// Updated is the last modification time of the task list.
	Updated *time.Time `json:"updated,omitempty"`

	// SelfLink is the URL pointing to this task list.
	SelfLink *string `json:"selfLink,omitempty"`
}

// TaskLists is one page of the authenticated user's task lists.
type TaskLists struct {
	// Kind is the resource type. Always "tasks#taskLists" when present.
	Kind *string `json:"kind,omitempty"`

	// Etag is the ETag of the resource.
	Etag *string `json:"etag,omitempty"`

	// Items holds the task lists on this page.
	Items []TaskList `json:"items,omitempty"`

	// NextPageToken continues the listing on the next page. Opaque;
	// pass it back verbatim via ListTaskListsOptions.PageToken.
	NextPageToken *string `json:"nextPageToken,omitempty"`
}

// Task is a single to-do item belonging to a task list.
type Task struct {
	// Kind is the resource type. Always "tasks#task" when present.
	Kind *string `json:"kind,omitempty"`

	// ID is the task identifier, assigned by the server.
	ID *string `json:"id,omitempty"`

	// Etag is the ETag of the resource.
	Etag *string `json:"etag,omitempty"`

	// Title is the title of the task.
	Title *string `json:"title,omitempty"`

	// Updated is the last modification time of the task. Read-only;
	// it is stripped from update requests before sending.
	Updated *time.Time `json:"updated,omitempty"`

	// SelfLink is the URL pointing to this task.
	SelfLink *string `json:"selfLink,omitempty"`

	// Parent is the identifier of the parent task. Omitted for
	// top-level tasks. Read-only; use MoveTask to reparent.
	Parent *string `json:"parent,omitempty"`

	// Position is the lexicographic position of the task among its
	// siblings. Read-only; use MoveTask to reorder.
	Position *string `json:"position,omitempty"`

	// Notes describes the task.
	Notes *string `json:"notes,omitempty"`

	// Status is either "needsAction" or "completed".
	Status *TaskStatus `json:"status,omitempty"`

	// Due is the due date of the task. The API only records the date
	// portion; the time of day is discarded on write and not readable.
	Due *time.Time `json:"due,omitempty"`

	// Completed is the completion time of the task. Omitted while the
	// task has not been completed.
	Completed *time.Time `json:"completed,omitempty"`

	// Deleted reports whether the task has been deleted.
	Deleted *bool `json:"deleted,omitempty"`

	// Hidden reports whether the task is hidden, which happens when it
	// was completed before the list was last cleared. Read-only.
	Hidden *bool `json:"hidden,omitempty"`

	// Links is a read-only collection of related links.
	Links []TaskLink `json:"links,omitempty"`
}

// TaskLink is a link related to a task, e.g. the email it was created from.
type TaskLink struct {
	// Type of the link, e.g. "email".
	Type string `json:"type"`

	// Description is the display text of the link.
	Description string `json:"description"`

	// Link is the URL.
	Link string `json:"link"`
}

// Tasks is one page of the tasks in a task list.
type Tasks struct {
	// Kind is the resource type. Always "tasks#tasks" when present.
	Kind *string `json:"kind,omitempty"`

	// Etag is the ETag of the resource.
	Etag *string `json:"etag,omitempty"`

	// Items holds the tasks on this page.
	Items []Task `json:"items,omitempty"`

	// NextPageToken continues the listing on the next page. Opaque;
	// pass it back verbatim via ListTasksOptions.PageToken.
	NextPageToken *string `json:"nextPageToken,omitempty"`
}

// String returns a pointer to v. Convenience for building resources and
// options whose fields are all optional.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Time returns a pointer to v.
func Time(v time.Time) *time.Time { return &v }

// Status returns a pointer to v.
func Status(v TaskStatus) *TaskStatus { return &v }

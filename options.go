package gtasks

import (
	"net/url"
	"strconv"
	"time"
)

// ListTaskListsOptions configures ListTaskLists. All fields are optional;
// absent fields are omitted from the query string and the server default
// applies.
type ListTaskListsOptions struct {
	// MaxResults is the maximum number of task lists returned on one
	// page. The server default is 20, the maximum 100.
	MaxResults *int64

	// PageToken specifies the result page to return, taken verbatim
	// from a previous page's NextPageToken.
	PageToken *string
}

func (o *ListTaskListsOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt64(q, "maxResults", o.MaxResults)
	setString(q, "pageToken", o.PageToken)
	return q
}

// ListTasksOptions configures ListTasks. All fields are optional; absent
// fields are omitted from the query string and the server default applies.
type ListTasksOptions struct {
	// CompletedMax is the upper bound for a task's completion time to
	// filter by.
	CompletedMax *time.Time

	// CompletedMin is the lower bound for a task's completion time to
	// filter by.
	CompletedMin *time.Time

	// DueMax is the upper bound for a task's due date to filter by.
	DueMax *time.Time

	// DueMin is the lower bound for a task's due date to filter by.
	DueMin *time.Time

	// MaxResults is the maximum number of tasks returned on one page.
	// The server default is 20, the maximum 100.
	MaxResults *int64

	// PageToken specifies the result page to return, taken verbatim
	// from a previous page's NextPageToken.
	PageToken *string

	// ShowCompleted includes completed tasks in the result. The server
	// default is true.
	ShowCompleted *bool

	// ShowDeleted includes deleted tasks in the result. The server
	// default is false.
	ShowDeleted *bool

	// ShowHidden includes hidden tasks in the result. The server
	// default is false.
	ShowHidden *bool

	// UpdatedMin is the lower bound for a task's last modification time
	// to filter by.
	UpdatedMin *time.Time
}

func (o *ListTasksOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setTime(q, "completedMax", o.CompletedMax)
	setTime(q, "completedMin", o.CompletedMin)
	setTime(q, "dueMax", o.DueMax)
	setTime(q, "dueMin", o.DueMin)
	setInt64(q, "maxResults", o.MaxResults)
	setString(q, "pageToken", o.PageToken)
	setBool(q, "showCompleted", o.ShowCompleted)
	setBool(q, "showDeleted", o.ShowDeleted)
	setBool(q, "showHidden", o.ShowHidden)
	setTime(q, "updatedMin", o.UpdatedMin)
	return q
}

// MoveTaskOptions positions a task relative to other tasks. Used by
// InsertTask and MoveTask. All fields are optional; with no fields set the
// task goes to the first position at the top level.
type MoveTaskOptions struct {
	// Parent is the identifier of the new parent task. Omitted keeps
	// the task at (or moves it to) the top level.
	Parent *string

	// Previous is the identifier of the new previous sibling task.
	// Omitted puts the task at the first position among its siblings.
	Previous *string
}

func (o *MoveTaskOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setString(q, "parent", o.Parent)
	setString(q, "previous", o.Previous)
	return q
}

func setString(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

func setInt64(q url.Values, key string, v *int64) {
	if v != nil {
		q.Set(key, strconv.FormatInt(*v, 10))
	}
}

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

func setTime(q url.Values, key string, v *time.Time) {
	if v != nil {
		q.Set(key, v.Format(time.RFC3339))
	}
}

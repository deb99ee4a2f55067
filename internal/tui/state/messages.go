package state

import "github.com/cristianoliveira/hrdesk/internal/app"

// syncDoneMsg carries the outcome of a refresh.
type syncDoneMsg struct {
	results []app.SyncResult
	err     error
}

// markReadDoneMsg carries the outcome of marking a notification read.
type markReadDoneMsg struct {
	id  string
	err error
}

// statusExpiredMsg asks the view to drop an expired status message.
type statusExpiredMsg struct{}

package meeting

import "errors"

var (
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrMeetingNotRequested = errors.New("meeting is not awaiting confirmation")
	ErrMeetingNotCompleted = errors.New("meeting is not completed")
)

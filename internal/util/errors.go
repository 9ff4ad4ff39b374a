package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrCourseNotFound     = errors.New("course not found")
	ErrExamNotFound       = errors.New("exam not found")
	ErrExamNotPublished   = errors.New("exam not published or not accessible")
	ErrAttemptNotFound    = errors.New("attempt not found")
	ErrAttemptFinished    = errors.New("attempt already submitted")
	ErrAttemptNotLive     = errors.New("attempt has no live session")
)

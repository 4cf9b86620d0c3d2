package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound  = errors.New("no stored session")
	ErrSessionCorrupted = errors.New("stored session is corrupted")
	ErrNotAuthenticated = errors.New("not logged in")

	// Round errors
	ErrRoundAlreadyStarted = errors.New("round has already started")

	// Lesson errors
	ErrLessonComplete = errors.New("lesson is already complete")
	ErrEmptyWordList  = errors.New("word list is empty")

	// Chat errors
	ErrEmptyMessage = errors.New("message is empty")

	// Support errors
	ErrResourceNotFound = errors.New("support resource not found")
)

package models

import "errors"

var (
	// ErrQuizNotFound indicates the requested quiz does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrAnswerNotFound indicates no stored response for the user/quiz pair.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrUserNotFound indicates the profile document does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrValidation covers malformed input caught before any write.
	ErrValidation = errors.New("validation failed")
	// ErrAccessDenied is returned for a private quiz without credentials.
	ErrAccessDenied = errors.New("access denied")
	// ErrIncorrectPassword is returned when a supplied quiz password does not match.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrAlreadyAnswered is returned when a response already exists for the user/quiz pair.
	ErrAlreadyAnswered = errors.New("quiz already answered")
	// ErrNotOwner is returned when a user tries to delete a quiz they do not own.
	ErrNotOwner = errors.New("not the quiz owner")
)

package models

import "errors"

// Ошибки предметной области. Все они — ожидаемые, восстановимые условия,
// которые транспортный слой превращает в текст для пользователя.
var (
	ErrInvalidRole         = errors.New("invalid role")
	ErrNotAnAuthor         = errors.New("caller is not an author")
	ErrInvalidAnswerKey    = errors.New("answer key contains invalid letters")
	ErrLengthMismatch      = errors.New("length mismatch")
	ErrCodeSpaceExhausted  = errors.New("code space exhausted")
	ErrTestNotFound        = errors.New("test not found")
	ErrNotOwner            = errors.New("caller is not the owner of the test")
	ErrAlreadyClosed       = errors.New("test is already closed")
	ErrTestClosed          = errors.New("test is closed, submissions are not accepted")
	ErrInvalidAnswers      = errors.New("answers contain invalid letters")
	ErrDuplicateSubmission = errors.New("participant already submitted answers for this test")
)

// ErrCodeTaken — внутренний сигнал хранилища о занятом коде.
// Аллокатор повторяет попытку с новым кодом; наружу ошибка не выходит.
var ErrCodeTaken = errors.New("test code is already taken")

package models

import (
	"time"
)

// Файл с моделями предметной области, которые доступны извне.
// Движок создает экземпляры моделей, заполняет их данными и
// передает в соответствующую функцию хранилища.

// Роли пользователей
const (
	RoleAuthor      = "author"
	RoleParticipant = "participant"

	// RoleUnset возвращается для пользователя без роли.
	RoleUnset = ""
)

// AnswerLetters — допустимые буквы ответов.
const AnswerLetters = "abcd"

// User определяет модель пользователя бота.
type User struct {
	ID        int64
	Role      string
	CreatedAt time.Time
}

// Test определяет модель теста: код, ключ ответов, владелец и состояние.
type Test struct {
	ID        string
	Code      string
	OwnerID   int64
	AnswerKey string
	Length    int
	IsOpen    bool
	CreatedAt time.Time
}

// Submission определяет модель сданных ответов участника.
// Пара (TestCode, UserID) уникальна: повторная сдача не допускается.
type Submission struct {
	ID          string
	TestCode    string
	UserID      int64
	Answers     string
	Score       int
	SubmittedAt time.Time
}

// SubmitResult — результат принятой сдачи.
type SubmitResult struct {
	Score  int
	Length int
}

// LeaderboardEntry — запись в таблице лидеров.
type LeaderboardEntry struct {
	Rank   int
	UserID int64
	Score  int
}

// TestResults содержит итоги теста. Пустой Leaderboard означает,
// что сдач не было; это не ошибка.
type TestResults struct {
	Code        string
	Length      int
	IsOpen      bool
	Leaderboard []LeaderboardEntry
}

// IsValidRole сообщает, входит ли role в множество допустимых ролей.
func IsValidRole(role string) bool {
	return role == RoleAuthor || role == RoleParticipant
}

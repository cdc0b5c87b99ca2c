package storage

import (
	"context"
	"sync"

	"github.com/letsssgooo/testBot/internal/domain/models"
)

// MemoryStorage реализует Storage в памяти.
// Используется в тестах и при запуске без базы данных.
type MemoryStorage struct {
	mu          sync.RWMutex
	users       map[int64]*models.User
	tests       map[string]*models.Test
	submissions map[string][]*models.Submission
	submitted   map[string]map[int64]struct{}
}

// NewMemoryStorage создаёт новый MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:       make(map[int64]*models.User),
		tests:       make(map[string]*models.Test),
		submissions: make(map[string][]*models.Submission),
		submitted:   make(map[string]map[int64]struct{}),
	}
}

// SetRole сохраняет роль пользователя, перезаписывая предыдущую.
func (s *MemoryStorage) SetRole(_ context.Context, userID int64, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		s.users[userID] = &models.User{ID: userID, Role: role}
		return nil
	}

	user.Role = role

	return nil
}

// GetRole возвращает роль пользователя или models.RoleUnset.
func (s *MemoryStorage) GetRole(_ context.Context, userID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return models.RoleUnset, nil
	}

	return user.Role, nil
}

// CreateTest сохраняет новый тест. Занятый код — models.ErrCodeTaken.
func (s *MemoryStorage) CreateTest(_ context.Context, t *models.Test) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tests[t.Code]; ok {
		return models.ErrCodeTaken
	}

	stored := *t
	s.tests[t.Code] = &stored
	s.submitted[t.Code] = make(map[int64]struct{})

	return nil
}

// GetTest возвращает копию теста по коду.
func (s *MemoryStorage) GetTest(_ context.Context, code string) (*models.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tests[code]
	if !ok {
		return nil, models.ErrTestNotFound
	}

	found := *t

	return &found, nil
}

// CloseTest закрывает тест и снимает список сдач под одной блокировкой,
// поэтому сдача не может проскочить между сменой состояния и снимком.
func (s *MemoryStorage) CloseTest(_ context.Context, code string) ([]*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tests[code]
	if !ok {
		return nil, models.ErrTestNotFound
	}

	if !t.IsOpen {
		return nil, models.ErrAlreadyClosed
	}

	t.IsOpen = false

	return s.copySubmissions(code), nil
}

// SaveSubmission сохраняет сдачу. Проверка открытости и вставка идут
// под одной блокировкой с CloseTest.
func (s *MemoryStorage) SaveSubmission(_ context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tests[sub.TestCode]
	if !ok {
		return models.ErrTestNotFound
	}

	if !t.IsOpen {
		return models.ErrTestClosed
	}

	if _, ok = s.submitted[sub.TestCode][sub.UserID]; ok {
		return models.ErrDuplicateSubmission
	}

	stored := *sub
	s.submitted[sub.TestCode][sub.UserID] = struct{}{}
	s.submissions[sub.TestCode] = append(s.submissions[sub.TestCode], &stored)

	return nil
}

// ListSubmissions возвращает все сдачи теста в порядке вставки.
func (s *MemoryStorage) ListSubmissions(_ context.Context, code string) ([]*models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tests[code]; !ok {
		return nil, models.ErrTestNotFound
	}

	return s.copySubmissions(code), nil
}

// CountTests возвращает количество созданных тестов.
func (s *MemoryStorage) CountTests(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tests), nil
}

// copySubmissions отдает копии сдач, чтобы вызывающий не делил память
// с хранилищем. Вызывается только под блокировкой.
func (s *MemoryStorage) copySubmissions(code string) []*models.Submission {
	subs := make([]*models.Submission, 0, len(s.submissions[code]))
	for _, sub := range s.submissions[code] {
		c := *sub
		subs = append(subs, &c)
	}

	return subs
}

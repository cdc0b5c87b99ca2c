package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/letsssgooo/testBot/internal/domain/models"
	"github.com/letsssgooo/testBot/internal/storage"
)

// Registry хранит соответствие пользователь → роль.
// Повторная регистрация перезаписывает роль, побеждает последняя запись.
type Registry struct {
	st storage.Storage
}

func NewRegistry(st storage.Storage) *Registry {
	return &Registry{st: st}
}

// SetRole валидирует роль и сохраняет ее за пользователем.
func (r *Registry) SetRole(ctx context.Context, userID int64, role string) error {
	if !models.IsValidRole(role) {
		return models.ErrInvalidRole
	}

	if err := r.st.SetRole(ctx, userID, role); err != nil {
		return fmt.Errorf("can not set role: %w", err)
	}

	return nil
}

// GetRole возвращает роль пользователя. Для пользователя без роли
// возвращается models.RoleUnset, это не ошибка.
func (r *Registry) GetRole(ctx context.Context, userID int64) (string, error) {
	role, err := r.st.GetRole(ctx, userID)
	if err != nil {
		return models.RoleUnset, fmt.Errorf("can not get role: %w", err)
	}

	return role, nil
}

// ParseRole валидирует сообщение пользователя и отдает роль в виде строки.
func ParseRole(message string) (string, error) {
	fields := strings.Fields(message)
	if len(fields) != 1 {
		return "", models.ErrInvalidRole
	}

	role := strings.ToLower(fields[0])
	if !models.IsValidRole(role) {
		return "", models.ErrInvalidRole
	}

	return role, nil
}

package storage

import (
	"context"

	"github.com/letsssgooo/testBot/internal/domain/models"
)

// Storage определяет интерфейс для хранения пользователей, тестов и сдач.
//
// Уникальность кода теста и пары (код, участник) обеспечивает само
// хранилище: вставка либо проходит целиком, либо возвращает доменную
// ошибку. Отдельной проверки "существует ли уже" перед записью нет,
// при конкурентных запросах она бесполезна.
type Storage interface {
	// SetRole сохраняет роль пользователя. Повторный вызов перезаписывает роль.
	SetRole(ctx context.Context, userID int64, role string) error

	// GetRole возвращает роль пользователя или models.RoleUnset.
	GetRole(ctx context.Context, userID int64) (string, error)

	// CreateTest сохраняет новый тест. Если код уже занят,
	// возвращает models.ErrCodeTaken.
	CreateTest(ctx context.Context, t *models.Test) error

	// GetTest возвращает тест по коду или models.ErrTestNotFound.
	GetTest(ctx context.Context, code string) (*models.Test, error)

	// CloseTest атомарно переводит тест в закрытое состояние и возвращает
	// снимок сдач ровно на момент закрытия. Сдача, принятая до закрытия,
	// попадает в снимок; принятая после — не может существовать.
	// Возвращает models.ErrTestNotFound или models.ErrAlreadyClosed.
	CloseTest(ctx context.Context, code string) ([]*models.Submission, error)

	// SaveSubmission сохраняет сдачу. Проверка открытости теста и вставка
	// выполняются в одном атомарном шаге по отношению к CloseTest.
	// Возвращает models.ErrTestNotFound, models.ErrTestClosed или
	// models.ErrDuplicateSubmission.
	SaveSubmission(ctx context.Context, sub *models.Submission) error

	// ListSubmissions возвращает все сдачи теста в порядке вставки.
	ListSubmissions(ctx context.Context, code string) ([]*models.Submission, error)

	// CountTests возвращает количество когда-либо созданных тестов.
	CountTests(ctx context.Context) (int, error)
}

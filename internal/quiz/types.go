package quiz

import (
	"context"

	"github.com/letsssgooo/testBot/internal/domain/models"
)

// TestEngine определяет основной интерфейс для работы с тестами.
type TestEngine interface {
	// CreateTest создаёт тест с ключом ответов и возвращает его код.
	// Доступно только пользователю с ролью author.
	CreateTest(ctx context.Context, ownerID int64, length int, answerKey string) (string, error)

	// Submit принимает ответы участника на открытый тест.
	// Каждый участник может сдать ответы на тест ровно один раз.
	Submit(ctx context.Context, code string, userID int64, answers string) (*models.SubmitResult, error)

	// FinishTest закрывает тест и возвращает топ-10 участников
	// по сдачам, существовавшим на момент закрытия.
	// Доступно только владельцу теста.
	FinishTest(ctx context.Context, code string, callerID int64) (*models.TestResults, error)

	// Results возвращает топ-15 участников открытого или закрытого теста.
	Results(ctx context.Context, code string) (*models.TestResults, error)

	// GetTest возвращает тест по коду.
	GetTest(ctx context.Context, code string) (*models.Test, error)
}

// Размеры таблицы лидеров в ответах движка.
const (
	topFinish  = 10
	topResults = 15
)

// Параметры пространства кодов. Код — codeWidth цифр без ведущего нуля.
const (
	codeWidth = 4
	codeMin   = 1000 // 10^(codeWidth-1)
	codeSpace = 9 * codeMin
)

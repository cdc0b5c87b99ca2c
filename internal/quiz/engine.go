package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/letsssgooo/testBot/internal/domain/models"
	"github.com/letsssgooo/testBot/internal/storage"
)

// Engine реализует TestEngine поверх хранилища.
//
// Вся атомарность лежит на операциях записи хранилища: вставка теста
// с занятым кодом и повторная сдача отбиваются ограничениями
// уникальности, закрытие теста и снимок сдач идут одним атомарным
// шагом. Поэтому сам движок не держит блокировок и безопасен при
// конкурентных вызовах.
type Engine struct {
	st storage.Storage
}

// NewEngine создаёт новый Engine.
func NewEngine(st storage.Storage) *Engine {
	return &Engine{st: st}
}

// CreateTest создаёт тест с ключом ответов и возвращает его код.
func (e *Engine) CreateTest(ctx context.Context, ownerID int64, length int, answerKey string) (string, error) {
	role, err := e.st.GetRole(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("can not check role: %w", err)
	}

	if role != models.RoleAuthor {
		return "", models.ErrNotAnAuthor
	}

	if !isValidChoices(answerKey) {
		return "", models.ErrInvalidAnswerKey
	}

	if len(answerKey) != length {
		return "", models.ErrLengthMismatch
	}

	return e.allocate(ctx, ownerID, length, answerKey)
}

// allocate подбирает свободный код и вставляет тест. Занятость кода
// определяет хранилище при вставке, а не предварительная проверка:
// два конкурентных создания никогда не получат один код.
func (e *Engine) allocate(ctx context.Context, ownerID int64, length int, answerKey string) (string, error) {
	count, err := e.st.CountTests(ctx)
	if err != nil {
		return "", fmt.Errorf("can not count tests: %w", err)
	}

	if count >= codeSpace {
		return "", models.ErrCodeSpaceExhausted
	}

	for attempt := 0; attempt < codeSpace; attempt++ {
		code := strconv.Itoa(codeMin + rand.Intn(codeSpace))

		test := &models.Test{
			ID:        uuid.NewString(),
			Code:      code,
			OwnerID:   ownerID,
			AnswerKey: answerKey,
			Length:    length,
			IsOpen:    true,
			CreatedAt: time.Now().UTC(),
		}

		err = e.st.CreateTest(ctx, test)
		if errors.Is(err, models.ErrCodeTaken) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("can not save test: %w", err)
		}

		slog.Debug("test created", "code", code, "owner", ownerID, "length", length)

		return code, nil
	}

	return "", models.ErrCodeSpaceExhausted
}

// Submit принимает ответы участника на открытый тест.
func (e *Engine) Submit(ctx context.Context, code string, userID int64, answers string) (*models.SubmitResult, error) {
	test, err := e.st.GetTest(ctx, code)
	if err != nil {
		return nil, err
	}

	// Ранний отказ; решающая проверка открытости произойдет
	// в SaveSubmission атомарно со вставкой.
	if !test.IsOpen {
		return nil, models.ErrTestClosed
	}

	if len(answers) != test.Length {
		return nil, models.ErrLengthMismatch
	}

	if !isValidChoices(answers) {
		return nil, models.ErrInvalidAnswers
	}

	sub := &models.Submission{
		ID:          uuid.NewString(),
		TestCode:    code,
		UserID:      userID,
		Answers:     answers,
		Score:       scoreAnswers(test.AnswerKey, answers),
		SubmittedAt: time.Now().UTC(),
	}

	if err = e.st.SaveSubmission(ctx, sub); err != nil {
		return nil, err
	}

	return &models.SubmitResult{Score: sub.Score, Length: test.Length}, nil
}

// FinishTest закрывает тест и возвращает топ-10 по сдачам на момент закрытия.
func (e *Engine) FinishTest(ctx context.Context, code string, callerID int64) (*models.TestResults, error) {
	test, err := e.st.GetTest(ctx, code)
	if err != nil {
		return nil, err
	}

	if test.OwnerID != callerID {
		return nil, models.ErrNotOwner
	}

	subs, err := e.st.CloseTest(ctx, code)
	if err != nil {
		return nil, err
	}

	slog.Debug("test closed", "code", code, "submissions", len(subs))

	return &models.TestResults{
		Code:        code,
		Length:      test.Length,
		IsOpen:      false,
		Leaderboard: truncate(Rank(subs), topFinish),
	}, nil
}

// Results возвращает топ-15 участников открытого или закрытого теста.
func (e *Engine) Results(ctx context.Context, code string) (*models.TestResults, error) {
	test, err := e.st.GetTest(ctx, code)
	if err != nil {
		return nil, err
	}

	subs, err := e.st.ListSubmissions(ctx, code)
	if err != nil {
		return nil, err
	}

	return &models.TestResults{
		Code:        code,
		Length:      test.Length,
		IsOpen:      test.IsOpen,
		Leaderboard: truncate(Rank(subs), topResults),
	}, nil
}

// GetTest возвращает тест по коду.
func (e *Engine) GetTest(ctx context.Context, code string) (*models.Test, error) {
	return e.st.GetTest(ctx, code)
}

func truncate(lb []models.LeaderboardEntry, top int) []models.LeaderboardEntry {
	if len(lb) > top {
		return lb[:top]
	}

	return lb
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/letsssgooo/testBot/internal/auth"
	"github.com/letsssgooo/testBot/internal/client"
	"github.com/letsssgooo/testBot/internal/domain/models"
	"github.com/letsssgooo/testBot/internal/events/fetcher"
	"github.com/letsssgooo/testBot/internal/events/sender"
	"github.com/letsssgooo/testBot/internal/quiz"
)

// Таймаут long polling в секундах и пауза после ошибки сети.
const (
	longPollTimeout = 30
	retryDelay      = 3 * time.Second
)

// Bot реализует Telegram бота для тестов: принимает обновления,
// разбирает команды, зовет движок и превращает результат в текст.
// Все тексты для пользователя живут только здесь.
type Bot struct {
	fetcher fetcher.Fetcher
	sender  sender.Sender
	engine  quiz.TestEngine
	reg     *auth.Registry
}

// NewBot создаёт нового бота.
func NewBot(f fetcher.Fetcher, s sender.Sender, engine quiz.TestEngine, reg *auth.Registry) *Bot {
	return &Bot{
		fetcher: f,
		sender:  s,
		engine:  engine,
		reg:     reg,
	}
}

// Run запускает бота (long polling). Возвращается при отмене контекста.
func (b *Bot) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := b.fetcher.GetUpdates(ctx, longPollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			slog.Error("can not fetch updates", "err", err)
			time.Sleep(retryDelay)

			continue
		}

		for _, update := range updates {
			if err = b.HandleUpdate(ctx, update); err != nil {
				slog.Error("can not handle update", "update_id", update.UpdateID, "err", err)
			}
		}
	}
}

// HandleUpdate обрабатывает одно обновление.
func (b *Bot) HandleUpdate(ctx context.Context, update client.Update) error {
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		return nil
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	cmd := ParseCommand(update.Message.Text)

	switch cmd.Kind {
	case CmdStart:
		return b.reply(ctx, chatID, msgStart)
	case CmdRegister:
		return b.handleRegister(ctx, chatID, userID, cmd)
	case CmdCreateTest:
		return b.handleCreateTest(ctx, chatID, userID, cmd)
	case CmdSubmit:
		return b.handleSubmit(ctx, chatID, userID, cmd)
	case CmdFinish:
		return b.handleFinish(ctx, chatID, userID, cmd)
	case CmdResults:
		return b.handleResults(ctx, chatID, cmd)
	default:
		return b.reply(ctx, chatID, msgFallback)
	}
}

func (b *Bot) handleRegister(ctx context.Context, chatID, userID int64, cmd Command) error {
	role, err := auth.ParseRole(cmd.Role)
	if err != nil {
		return b.reply(ctx, chatID, msgRegisterUsage)
	}

	if err = b.reg.SetRole(ctx, userID, role); err != nil {
		return b.replyError(ctx, chatID, err)
	}

	return b.reply(ctx, chatID, fmt.Sprintf(msgRoleSet, role))
}

func (b *Bot) handleCreateTest(ctx context.Context, chatID, userID int64, cmd Command) error {
	code, err := b.engine.CreateTest(ctx, userID, cmd.Length, cmd.AnswerKey)

	switch {
	case errors.Is(err, models.ErrNotAnAuthor):
		return b.reply(ctx, chatID, msgOnlyAuthorCreates)
	case errors.Is(err, models.ErrInvalidAnswerKey):
		return b.reply(ctx, chatID, msgBadAnswerKey)
	case errors.Is(err, models.ErrLengthMismatch):
		return b.reply(ctx, chatID, fmt.Sprintf(msgKeyLengthMismatch, len(cmd.AnswerKey), cmd.Length))
	case errors.Is(err, models.ErrCodeSpaceExhausted):
		return b.reply(ctx, chatID, msgCodeSpaceExhausted)
	case err != nil:
		return b.replyError(ctx, chatID, err)
	}

	allA := strings.Repeat("a", cmd.Length)
	text := fmt.Sprintf(msgTestCreated, code, cmd.Length, code, allA, code)

	return b.replyMarkdown(ctx, chatID, text)
}

func (b *Bot) handleSubmit(ctx context.Context, chatID, userID int64, cmd Command) error {
	result, err := b.engine.Submit(ctx, cmd.Code, userID, cmd.Answers)

	switch {
	case errors.Is(err, models.ErrTestNotFound):
		return b.reply(ctx, chatID, msgTestNotFound)
	case errors.Is(err, models.ErrTestClosed):
		return b.reply(ctx, chatID, msgTestClosed)
	case errors.Is(err, models.ErrLengthMismatch):
		return b.replyAnswersLength(ctx, chatID, cmd)
	case errors.Is(err, models.ErrInvalidAnswers):
		return b.reply(ctx, chatID, msgBadAnswers)
	case errors.Is(err, models.ErrDuplicateSubmission):
		return b.reply(ctx, chatID, msgDuplicateSubmission)
	case err != nil:
		return b.replyError(ctx, chatID, err)
	}

	return b.reply(ctx, chatID, fmt.Sprintf(msgSubmitAccepted, result.Score, result.Length))
}

func (b *Bot) handleFinish(ctx context.Context, chatID, userID int64, cmd Command) error {
	role, err := b.reg.GetRole(ctx, userID)
	if err != nil {
		return b.replyError(ctx, chatID, err)
	}

	if role != models.RoleAuthor {
		return b.reply(ctx, chatID, msgOnlyAuthorFinishes)
	}

	if cmd.Code == "" {
		return b.reply(ctx, chatID, msgFinishUsage)
	}

	results, err := b.engine.FinishTest(ctx, cmd.Code, userID)

	switch {
	case errors.Is(err, models.ErrTestNotFound):
		return b.reply(ctx, chatID, msgTestNotFound)
	case errors.Is(err, models.ErrNotOwner):
		return b.reply(ctx, chatID, msgNotOwner)
	case errors.Is(err, models.ErrAlreadyClosed):
		return b.reply(ctx, chatID, msgAlreadyClosed)
	case err != nil:
		return b.replyError(ctx, chatID, err)
	}

	if len(results.Leaderboard) == 0 {
		return b.reply(ctx, chatID, fmt.Sprintf(msgTestClosedNoEntries, cmd.Code))
	}

	header := fmt.Sprintf(msgTestClosedHeader, cmd.Code)

	return b.reply(ctx, chatID, formatLeaderboard(header, results))
}

func (b *Bot) handleResults(ctx context.Context, chatID int64, cmd Command) error {
	if cmd.Code == "" {
		return b.reply(ctx, chatID, msgResultsUsage)
	}

	results, err := b.engine.Results(ctx, cmd.Code)

	switch {
	case errors.Is(err, models.ErrTestNotFound):
		return b.reply(ctx, chatID, msgTestNotFound)
	case err != nil:
		return b.replyError(ctx, chatID, err)
	}

	status := "закрыт"
	if results.IsOpen {
		status = "открыт"
	}

	if len(results.Leaderboard) == 0 {
		return b.reply(ctx, chatID, fmt.Sprintf(msgResultsEmpty, cmd.Code, status))
	}

	header := fmt.Sprintf(msgResultsHeader, cmd.Code, status)

	return b.reply(ctx, chatID, formatLeaderboard(header, results))
}

// replyAnswersLength отдельно достает длину теста, чтобы показать
// участнику ожидаемое число ответов.
func (b *Bot) replyAnswersLength(ctx context.Context, chatID int64, cmd Command) error {
	test, err := b.engine.GetTest(ctx, cmd.Code)
	if err != nil {
		return b.replyError(ctx, chatID, err)
	}

	return b.reply(ctx, chatID, fmt.Sprintf(msgAnswersLengthMismatch, len(cmd.Answers), test.Length))
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) error {
	_, err := b.sender.Message(ctx, chatID, text, nil)

	return err
}

func (b *Bot) replyMarkdown(ctx context.Context, chatID int64, text string) error {
	_, err := b.sender.Message(ctx, chatID, text, &client.SendOptions{ParseMode: "Markdown"})

	return err
}

// replyError отвечает общим текстом на неожиданную ошибку
// и пробрасывает ее наверх для логирования.
func (b *Bot) replyError(ctx context.Context, chatID int64, err error) error {
	if sendErr := b.reply(ctx, chatID, msgInternalError); sendErr != nil {
		return errors.Join(err, sendErr)
	}

	return err
}

func formatLeaderboard(header string, results *models.TestResults) string {
	lines := []string{header}
	for _, entry := range results.Leaderboard {
		lines = append(lines, fmt.Sprintf("%d. user %d: %d/%d", entry.Rank, entry.UserID, entry.Score, results.Length))
	}

	return strings.Join(lines, "\n")
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/letsssgooo/testBot/internal/domain/models"
)

// Код SQLSTATE нарушения уникальности.
const codeUniqueViolation = "23505"

// Storage реализует storage.Storage поверх postgres.
//
// Уникальность кода теста и пары (test_code, user_id) объявлена
// ограничениями в схеме; нарушение ограничения при вставке и есть
// доменная ошибка, никакой предварительной проверки не делается.
type Storage struct {
	pool *pgxpool.Pool
}

func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

// Bootstrap создает таблицы, если их еще нет.
func (s *Storage) Bootstrap(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		user_id    BIGINT PRIMARY KEY,
		role       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS tests (
		id         UUID PRIMARY KEY,
		code       TEXT UNIQUE NOT NULL,
		owner_id   BIGINT NOT NULL,
		answer_key TEXT NOT NULL,
		length     INT NOT NULL,
		is_open    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS submissions (
		seq          BIGSERIAL PRIMARY KEY,
		id           UUID NOT NULL,
		test_code    TEXT NOT NULL,
		user_id      BIGINT NOT NULL,
		answers      TEXT NOT NULL,
		score        INT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL,
		UNIQUE (test_code, user_id)
	);
	`

	_, err := s.pool.Exec(ctx, query)

	return err
}

func (s *Storage) Close() {
	s.pool.Close()
}

// SetRole сохраняет роль пользователя, перезаписывая предыдущую.
func (s *Storage) SetRole(ctx context.Context, userID int64, role string) error {
	query := `
	INSERT INTO users (user_id, role, created_at) VALUES ($1, $2, now())
	ON CONFLICT (user_id) DO UPDATE SET role = excluded.role
	`

	_, err := s.pool.Exec(ctx, query, userID, role)

	return err
}

// GetRole возвращает роль пользователя или models.RoleUnset.
func (s *Storage) GetRole(ctx context.Context, userID int64) (string, error) {
	query := `
	SELECT role FROM users WHERE user_id = $1
	`

	var role string
	err := s.pool.QueryRow(ctx, query, userID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.RoleUnset, nil
	}
	if err != nil {
		return models.RoleUnset, err
	}

	return role, nil
}

// CreateTest вставляет новый тест. Занятый код — models.ErrCodeTaken.
func (s *Storage) CreateTest(ctx context.Context, t *models.Test) error {
	query := `
	INSERT INTO tests (id, code, owner_id, answer_key, length, is_open, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.pool.Exec(ctx, query,
		t.ID, t.Code, t.OwnerID, t.AnswerKey, t.Length, t.IsOpen, t.CreatedAt)
	if isUniqueViolation(err) {
		return models.ErrCodeTaken
	}

	return err
}

// GetTest возвращает тест по коду или models.ErrTestNotFound.
func (s *Storage) GetTest(ctx context.Context, code string) (*models.Test, error) {
	query := `
	SELECT id, code, owner_id, answer_key, length, is_open, created_at
	FROM tests WHERE code = $1
	`

	t := &models.Test{}
	err := s.pool.QueryRow(ctx, query, code).Scan(
		&t.ID, &t.Code, &t.OwnerID, &t.AnswerKey, &t.Length, &t.IsOpen, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

// CloseTest закрывает тест и снимает список сдач в одной транзакции.
// Строка теста берется FOR UPDATE, поэтому конкурентная сдача, которая
// держит FOR SHARE на этой строке, либо завершится до снимка, либо
// увидит закрытый тест.
func (s *Storage) CloseTest(ctx context.Context, code string) ([]*models.Submission, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var isOpen bool
	err = tx.QueryRow(ctx, `SELECT is_open FROM tests WHERE code = $1 FOR UPDATE`, code).Scan(&isOpen)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}

	if !isOpen {
		return nil, models.ErrAlreadyClosed
	}

	if _, err = tx.Exec(ctx, `UPDATE tests SET is_open = FALSE WHERE code = $1`, code); err != nil {
		return nil, err
	}

	subs, err := listSubmissionsTx(ctx, tx, code)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return subs, nil
}

// SaveSubmission вставляет сдачу. Проверка открытости и вставка идут в
// одной транзакции: FOR SHARE на строке теста не дает CloseTest закрыть
// тест между проверкой и вставкой.
func (s *Storage) SaveSubmission(ctx context.Context, sub *models.Submission) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var isOpen bool
	err = tx.QueryRow(ctx, `SELECT is_open FROM tests WHERE code = $1 FOR SHARE`, sub.TestCode).Scan(&isOpen)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrTestNotFound
	}
	if err != nil {
		return err
	}

	if !isOpen {
		return models.ErrTestClosed
	}

	query := `
	INSERT INTO submissions (id, test_code, user_id, answers, score, submitted_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, query,
		sub.ID, sub.TestCode, sub.UserID, sub.Answers, sub.Score, sub.SubmittedAt)
	if isUniqueViolation(err) {
		return models.ErrDuplicateSubmission
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListSubmissions возвращает все сдачи теста в порядке вставки.
func (s *Storage) ListSubmissions(ctx context.Context, code string) ([]*models.Submission, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tests WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrTestNotFound
	}

	subs, err := listSubmissionsTx(ctx, tx, code)
	if err != nil {
		return nil, err
	}

	return subs, tx.Commit(ctx)
}

// CountTests возвращает количество созданных тестов.
func (s *Storage) CountTests(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tests`).Scan(&count)

	return count, err
}

func listSubmissionsTx(ctx context.Context, tx pgx.Tx, code string) ([]*models.Submission, error) {
	query := `
	SELECT id, test_code, user_id, answers, score, submitted_at
	FROM submissions WHERE test_code = $1 ORDER BY seq
	`

	rows, err := tx.Query(ctx, query, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		sub := &models.Submission{}
		err = rows.Scan(&sub.ID, &sub.TestCode, &sub.UserID, &sub.Answers, &sub.Score, &sub.SubmittedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

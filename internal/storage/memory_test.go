package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/testBot/internal/domain/models"
)

func newOpenTest(code string) *models.Test {
	return &models.Test{
		ID:        "id-" + code,
		Code:      code,
		OwnerID:   1,
		AnswerKey: "abcd",
		Length:    4,
		IsOpen:    true,
		CreatedAt: time.Now().UTC(),
	}
}

func newSubmission(code string, userID int64) *models.Submission {
	return &models.Submission{
		ID:          "sub",
		TestCode:    code,
		UserID:      userID,
		Answers:     "abcd",
		Score:       4,
		SubmittedAt: time.Now().UTC(),
	}
}

func TestMemoryStorage_Roles(t *testing.T) {
	st := NewMemoryStorage()
	ctx := context.Background()

	role, err := st.GetRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUnset, role)

	require.NoError(t, st.SetRole(ctx, 1, models.RoleAuthor))

	role, err = st.GetRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAuthor, role)

	// повторная регистрация перезаписывает роль
	require.NoError(t, st.SetRole(ctx, 1, models.RoleParticipant))

	role, err = st.GetRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleParticipant, role)
}

func TestMemoryStorage_CreateTest_CodeTaken(t *testing.T) {
	st := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, st.CreateTest(ctx, newOpenTest("1234")))

	err := st.CreateTest(ctx, newOpenTest("1234"))
	assert.ErrorIs(t, err, models.ErrCodeTaken)
}

func TestMemoryStorage_GetTest_ReturnsCopy(t *testing.T) {
	st := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, st.CreateTest(ctx, newOpenTest("1234")))

	first, err := st.GetTest(ctx, "1234")
	require.NoError(t, err)
	first.AnswerKey = "dddd"

	second, err := st.GetTest(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, "abcd", second.AnswerKey)

	_, err = st.GetTest(ctx, "0000")
	assert.ErrorIs(t, err, models.ErrTestNotFound)
}

func TestMemoryStorage_SaveSubmission(t *testing.T) {
	st := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, st.CreateTest(ctx, newOpenTest("1234")))

	err := st.SaveSubmission(ctx, newSubmission("0000", 10))
	assert.ErrorIs(t, err, models.ErrTestNotFound)

	require.NoError(t, st.SaveSubmission(ctx, newSubmission("1234", 10)))

	err = st.SaveSubmission(ctx, newSubmission("1234", 10))
	assert.ErrorIs(t, err, models.ErrDuplicateSubmission)
}

func TestMemoryStorage_CloseTest(t *testing.T) {
	st := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, st.CreateTest(ctx, newOpenTest("1234")))
	require.NoError(t, st.SaveSubmission(ctx, newSubmission("1234", 10)))
	require.NoError(t, st.SaveSubmission(ctx, newSubmission("1234", 11)))

	subs, err := st.CloseTest(ctx, "1234")
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	// после закрытия сдачи не принимаются
	err = st.SaveSubmission(ctx, newSubmission("1234", 12))
	assert.ErrorIs(t, err, models.ErrTestClosed)

	_, err = st.CloseTest(ctx, "1234")
	assert.ErrorIs(t, err, models.ErrAlreadyClosed)

	_, err = st.CloseTest(ctx, "0000")
	assert.ErrorIs(t, err, models.ErrTestNotFound)
}

func TestMemoryStorage_ListSubmissions_InsertionOrder(t *testing.T) {
	st := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, st.CreateTest(ctx, newOpenTest("1234")))

	for _, userID := range []int64{30, 10, 20} {
		require.NoError(t, st.SaveSubmission(ctx, newSubmission("1234", userID)))
	}

	subs, err := st.ListSubmissions(ctx, "1234")
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, int64(30), subs[0].UserID)
	assert.Equal(t, int64(10), subs[1].UserID)
	assert.Equal(t, int64(20), subs[2].UserID)

	_, err = st.ListSubmissions(ctx, "0000")
	assert.ErrorIs(t, err, models.ErrTestNotFound)
}

func TestMemoryStorage_CountTests(t *testing.T) {
	st := NewMemoryStorage()
	ctx := context.Background()

	count, err := st.CountTests(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, st.CreateTest(ctx, newOpenTest("1234")))
	require.NoError(t, st.CreateTest(ctx, newOpenTest("5678")))

	count, err = st.CountTests(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

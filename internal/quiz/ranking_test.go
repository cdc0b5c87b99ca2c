package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/testBot/internal/domain/models"
)

func submissionAt(userID int64, score int, offset time.Duration) *models.Submission {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	return &models.Submission{
		UserID:      userID,
		Score:       score,
		SubmittedAt: base.Add(offset),
	}
}

func TestRank_TotalOrder(t *testing.T) {
	subs := []*models.Submission{
		submissionAt(1, 3, 10*time.Second),
		submissionAt(2, 3, 5*time.Second),
		submissionAt(3, 5, 20*time.Second),
	}

	leaderboard := Rank(subs)
	require.Len(t, leaderboard, 3)

	// больший счет выше, при равном счете раньше сданная работа выше
	assert.Equal(t, int64(3), leaderboard[0].UserID)
	assert.Equal(t, int64(2), leaderboard[1].UserID)
	assert.Equal(t, int64(1), leaderboard[2].UserID)

	for i, entry := range leaderboard {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestRank_EqualKeysKeepInsertionOrder(t *testing.T) {
	subs := []*models.Submission{
		submissionAt(7, 2, 0),
		submissionAt(8, 2, 0),
		submissionAt(9, 2, 0),
	}

	leaderboard := Rank(subs)
	require.Len(t, leaderboard, 3)
	assert.Equal(t, int64(7), leaderboard[0].UserID)
	assert.Equal(t, int64(8), leaderboard[1].UserID)
	assert.Equal(t, int64(9), leaderboard[2].UserID)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	subs := []*models.Submission{
		submissionAt(1, 0, 0),
		submissionAt(2, 5, time.Second),
	}

	_ = Rank(subs)

	assert.Equal(t, int64(1), subs[0].UserID)
	assert.Equal(t, int64(2), subs[1].UserID)
}

func TestRank_Empty(t *testing.T) {
	leaderboard := Rank(nil)
	require.NotNil(t, leaderboard)
	assert.Empty(t, leaderboard)
}

package quiz

import (
	"sort"

	"github.com/letsssgooo/testBot/internal/domain/models"
)

// Rank строит таблицу лидеров: счет по убыванию, при равном счете
// раньше сданная работа выше. Сортировка стабильная, поэтому полностью
// равные записи сохраняют порядок вставки. Чистая функция, вход
// не изменяется.
func Rank(subs []*models.Submission) []models.LeaderboardEntry {
	ordered := make([]*models.Submission, len(subs))
	copy(ordered, subs)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}

		return ordered[i].SubmittedAt.Before(ordered[j].SubmittedAt)
	})

	leaderboard := make([]models.LeaderboardEntry, 0, len(ordered))
	for i, sub := range ordered {
		leaderboard = append(leaderboard, models.LeaderboardEntry{
			Rank:   i + 1,
			UserID: sub.UserID,
			Score:  sub.Score,
		})
	}

	return leaderboard
}

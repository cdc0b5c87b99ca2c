package quiz

import (
	"strings"

	"github.com/letsssgooo/testBot/internal/domain/models"
)

// isValidChoices проверяет, что строка непуста и состоит только
// из допустимых букв ответов.
func isValidChoices(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if !strings.ContainsRune(models.AnswerLetters, c) {
			return false
		}
	}

	return true
}

// scoreAnswers возвращает число позиций, в которых ответы совпали
// с ключом. Только позиционное сравнение, частичных баллов нет.
func scoreAnswers(key, answers string) int {
	score := 0
	for i := 0; i < len(key) && i < len(answers); i++ {
		if key[i] == answers[i] {
			score++
		}
	}

	return score
}

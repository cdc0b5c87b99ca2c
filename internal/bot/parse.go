package bot

import (
	"regexp"
	"strconv"
	"strings"
)

// Разбор свободного текста живет только здесь: движок получает уже
// типизированную команду и ничего не знает про формат сообщений.

var (
	createTestRE = regexp.MustCompile(`(?i)^\s*(\d+)[^\S\r\n]*(?:тест:|:|\s+)?\s*\+([a-d]+)\s*$`)
	submitRE     = regexp.MustCompile(`(?i)^\s*(\d{4,6})\s*:\s*([a-d]+)\s*$`)
)

// CommandKind — тип команды пользователя.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdStart
	CmdRegister
	CmdCreateTest
	CmdSubmit
	CmdFinish
	CmdResults
)

// Command — разобранная команда пользователя. Заполнены только поля,
// относящиеся к ее типу.
type Command struct {
	Kind      CommandKind
	Role      string
	Length    int
	AnswerKey string
	Code      string
	Answers   string
}

// ParseCommand разбирает текст сообщения в типизированную команду.
// Непонятный текст превращается в CmdUnknown, ошибок здесь нет.
func ParseCommand(text string) Command {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "/") {
		fields := strings.Fields(trimmed)

		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch fields[0] {
		case "/start":
			return Command{Kind: CmdStart}
		case "/register":
			return Command{Kind: CmdRegister, Role: arg}
		case "/finish":
			return Command{Kind: CmdFinish, Code: digitsOrEmpty(arg)}
		case "/results":
			return Command{Kind: CmdResults, Code: digitsOrEmpty(arg)}
		}

		return Command{Kind: CmdUnknown}
	}

	if m := createTestRE.FindStringSubmatch(trimmed); m != nil {
		length, err := strconv.Atoi(m[1])
		if err != nil {
			return Command{Kind: CmdUnknown}
		}

		return Command{
			Kind:      CmdCreateTest,
			Length:    length,
			AnswerKey: strings.ToLower(m[2]),
		}
	}

	if m := submitRE.FindStringSubmatch(trimmed); m != nil {
		return Command{
			Kind:    CmdSubmit,
			Code:    m[1],
			Answers: strings.ToLower(m[2]),
		}
	}

	return Command{Kind: CmdUnknown}
}

// digitsOrEmpty возвращает s, если это число, иначе пустую строку.
func digitsOrEmpty(s string) string {
	if s == "" {
		return ""
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return ""
		}
	}

	return s
}

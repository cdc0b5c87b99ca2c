package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand_CreateTest(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Command
	}{
		{
			name:  "full form",
			input: "10 тест: +abcdabcdab",
			want:  Command{Kind: CmdCreateTest, Length: 10, AnswerKey: "abcdabcdab"},
		},
		{
			name:  "colon form",
			input: "4: +abcd",
			want:  Command{Kind: CmdCreateTest, Length: 4, AnswerKey: "abcd"},
		},
		{
			name:  "space form",
			input: "4 +abcd",
			want:  Command{Kind: CmdCreateTest, Length: 4, AnswerKey: "abcd"},
		},
		{
			name:  "uppercase key is normalized",
			input: "4 тест: +ABCD",
			want:  Command{Kind: CmdCreateTest, Length: 4, AnswerKey: "abcd"},
		},
		{
			name:  "surrounding whitespace",
			input: "  4 тест: +abcd  ",
			want:  Command{Kind: CmdCreateTest, Length: 4, AnswerKey: "abcd"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCommand(tc.input))
		})
	}
}

func TestParseCommand_Submit(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Command
	}{
		{
			name:  "four digit code",
			input: "1596:abcd",
			want:  Command{Kind: CmdSubmit, Code: "1596", Answers: "abcd"},
		},
		{
			name:  "six digit code",
			input: "159673 : ABCD",
			want:  Command{Kind: CmdSubmit, Code: "159673", Answers: "abcd"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCommand(tc.input))
		})
	}
}

func TestParseCommand_Slash(t *testing.T) {
	assert.Equal(t, Command{Kind: CmdStart}, ParseCommand("/start"))
	assert.Equal(t, Command{Kind: CmdRegister, Role: "author"}, ParseCommand("/register author"))
	assert.Equal(t, Command{Kind: CmdRegister}, ParseCommand("/register"))
	assert.Equal(t, Command{Kind: CmdFinish, Code: "1596"}, ParseCommand("/finish 1596"))
	assert.Equal(t, Command{Kind: CmdFinish}, ParseCommand("/finish abc"))
	assert.Equal(t, Command{Kind: CmdFinish}, ParseCommand("/finish"))
	assert.Equal(t, Command{Kind: CmdResults, Code: "1596"}, ParseCommand("/results 1596"))
	assert.Equal(t, Command{Kind: CmdUnknown}, ParseCommand("/help"))
}

func TestParseCommand_Unknown(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "free text", input: "привет"},
		{name: "three digit code", input: "123:abcd"},
		{name: "seven digit code", input: "1234567:abcd"},
		{name: "submit with invalid letters", input: "1596:abxy"},
		{name: "create without plus", input: "10 тест: abcd"},
		{name: "empty", input: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Command{Kind: CmdUnknown}, ParseCommand(tc.input))
		})
	}
}

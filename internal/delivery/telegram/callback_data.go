package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz = "quiz"
	actionHelp = "help"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizAnswer = "answer"
	quizExit   = "exit"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 || parts[0] == "" {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// answerParams extracts question and option indexes from "quiz:answer:<question>:<option>".
func (cd callbackData) answerParams() (questionIndex, optionIndex int, ok bool) {
	if cd.Action != actionQuiz || len(cd.Params) != 3 || cd.Params[0] != quizAnswer {
		return 0, 0, false
	}

	q, err1 := strconv.Atoi(cd.Params[1])
	o, err2 := strconv.Atoi(cd.Params[2])
	if err1 != nil || err2 != nil || q < 0 || o < 0 {
		return 0, 0, false
	}

	return q, o, true
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for answering a quiz question.
// The question index lets presses on outdated keyboards be told apart.
func buildQuizAnswerCallback(questionIndex, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			strconv.Itoa(questionIndex),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

// buildQuizExitCallback builds callback data for leaving the quiz.
func buildQuizExitCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizExit},
	}.encode()
}

func buildHelpCallback() string {
	return actionHelp
}

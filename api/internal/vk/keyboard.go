package vk

import (
	"encoding/json"

	"quiz-bot/api/internal/engine"
)

type keyboardAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

type keyboardButton struct {
	Action keyboardAction `json:"action"`
}

type keyboard struct {
	OneTime bool               `json:"one_time"`
	Buttons [][]keyboardButton `json:"buttons"`
}

func textButton(label string) keyboardButton {
	return keyboardButton{Action: keyboardAction{Type: "text", Label: label}}
}

// Keyboard is the quiz reply keyboard as messages.send JSON: two rows, score
// button on its own line.
func Keyboard() string {
	kb := keyboard{
		Buttons: [][]keyboardButton{
			{textButton(engine.ButtonNewQuestion), textButton(engine.ButtonSurrender)},
			{textButton(engine.ButtonMyScore)},
		},
	}
	js, _ := json.Marshal(kb)
	return string(js)
}

package aiapimodels

import (
	"github.com/pkg/errors"
	apimodels "scheduler-backend/models/api"
)

var ErrEmptyPrompt = errors.New(`Missing "prompt" in JSON body`)

type PromptRequest struct {
	Prompt interface{} `json:"prompt" swaggertype:"string"` // любое JSON значение приводится к строке
}

// Text значение prompt в виде строки, незаданное значение дает ""
func (r PromptRequest) Text() string {
	if !apimodels.Present(r.Prompt) {
		return ""
	}
	return apimodels.Text(r.Prompt)
}

func (r PromptRequest) Validate() error {
	if r.Text() == "" {
		return ErrEmptyPrompt
	}
	return nil
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
	Output string `json:"output"`
}

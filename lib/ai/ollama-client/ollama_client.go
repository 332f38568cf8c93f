package ollamaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	ollamamodels "scheduler-backend/models/api/ollama"
)

type impl struct {
	ollamaURL   string
	ollamaModel string
	httpClient  *http.Client
}

// NewClient ollamaURL - полный адрес метода генерации, например http://localhost:11434/api/generate
func NewClient(ollamaURL, ollamaModel string) *impl {
	return &impl{
		ollamaURL:   ollamaURL,
		ollamaModel: ollamaModel,
		httpClient:  &http.Client{},
	}
}

func (i impl) Generate(ctx context.Context, prompt string) (string, error) {
	request := ollamamodels.OllamaRequest{
		Model:   i.ollamaModel,
		Prompt:  prompt,
		Stream:  false,
		Options: ollamamodels.GetDefaultOptions(),
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.ollamaURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := i.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ошибка запроса к Ollama API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("ошибка Ollama API: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var ollamaResponse ollamamodels.OllamaResponse
	err = json.Unmarshal(body, &ollamaResponse)
	if err != nil {
		return "", errors.Wrap(err, "ошибка разбора ответа Ollama API")
	}

	return ollamaResponse.Response, nil
}

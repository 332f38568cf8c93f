package aihandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	aiapimodels "scheduler-backend/models/api/ai"
)

const (
	ProviderYandexGPT = "yandexgpt"
	ProviderOllama    = "ollama"
)

var ErrGenerationFailed = errors.New("AI generation failed")

// NotConfiguredError не задана настройка, без которой провайдер не может работать
type NotConfiguredError struct {
	Setting string
}

func (e NotConfiguredError) Error() string {
	return fmt.Sprintf("%s not set", e.Setting)
}

// Client провайдер генерации текста
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Provider interface {
	Relay(ctx context.Context, request aiapimodels.PromptRequest) (aiapimodels.PromptResponse, error)
}

func NewHandler(providerName string, client Client, timeout time.Duration) Provider {
	return impl{
		providerName: providerName,
		client:       client,
		timeout:      timeout,
	}
}

// NewUnconfiguredHandler ретранслятор без провайдера, каждый запрос с промптом завершается ошибкой настройки
func NewUnconfiguredHandler(providerName, missingSetting string) Provider {
	return impl{
		providerName:   providerName,
		missingSetting: missingSetting,
	}
}

type impl struct {
	providerName   string
	client         Client
	missingSetting string
	timeout        time.Duration
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("ai", i.providerName)
}

func (i impl) Relay(ctx context.Context, request aiapimodels.PromptRequest) (resp aiapimodels.PromptResponse, err error) {
	if err = request.Validate(); err != nil {
		return resp, err
	}
	if i.client == nil {
		return resp, NotConfiguredError{Setting: i.missingSetting}
	}
	prompt := request.Text()
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	now := time.Now()
	output, err := i.client.Generate(ctx, prompt)
	if err != nil {
		i.getLogger().
			WithError(err).
			Error("ошибка генерации ответа AI")
		return resp, ErrGenerationFailed
	}
	i.getLogger().
		WithField("answer_duration_sec", time.Since(now).Seconds()).
		Debug("получен ответ AI")
	return aiapimodels.PromptResponse{
		Prompt: prompt,
		Output: output,
	}, nil
}

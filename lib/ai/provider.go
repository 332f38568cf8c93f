package aihandler

import (
	"time"

	"github.com/pkg/errors"
	"scheduler-backend/config"
	ollamaclient "scheduler-backend/lib/ai/ollama-client"
	yagptclient "scheduler-backend/lib/ai/yagpt-client"
)

// NewProvider собирает ретранслятор по настройкам AI_PROVIDER
func NewProvider(conf config.Configuration) (Provider, error) {
	timeout := time.Duration(conf.AI.TimeoutSec) * time.Second
	switch conf.AI.Provider {
	case ProviderYandexGPT, "":
		if conf.AI.YandexGPT.IAMToken == "" {
			return NewUnconfiguredHandler(ProviderYandexGPT, "YANDEX_GPT_IAM_TOKEN"), nil
		}
		if conf.AI.YandexGPT.CatalogID == "" {
			return NewUnconfiguredHandler(ProviderYandexGPT, "YANDEX_GPT_CATALOG_ID"), nil
		}
		client := yagptclient.NewClient(conf.AI.YandexGPT.IAMToken, conf.AI.YandexGPT.CatalogID)
		return NewHandler(ProviderYandexGPT, client, timeout), nil
	case ProviderOllama:
		if conf.AI.Ollama.OllamaURL == "" {
			return NewUnconfiguredHandler(ProviderOllama, "OLLAMA_URL"), nil
		}
		if conf.AI.Ollama.OllamaModel == "" {
			return NewUnconfiguredHandler(ProviderOllama, "OLLAMA_MODEL"), nil
		}
		client := ollamaclient.NewClient(conf.AI.Ollama.OllamaURL, conf.AI.Ollama.OllamaModel)
		return NewHandler(ProviderOllama, client, timeout), nil
	}
	return nil, errors.Errorf("неизвестный AI провайдер: %s", conf.AI.Provider)
}

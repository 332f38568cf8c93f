package ollamamodels

// Структуры для работы с Ollama API (/api/generate)
type OllamaRequest struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options Options `json:"options"`
}

type Options struct {
	Temperature float64 `json:"temperature,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"` // Аналог MaxTokens
}

type OllamaResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

func GetDefaultOptions() Options {
	return Options{
		Temperature: 0.7,
		TopP:        0.9,
		NumPredict:  2000,
	}
}

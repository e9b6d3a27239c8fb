package factory

import (
	"fmt"

	"career-companion-be/pkg/llm"
	"career-companion-be/pkg/llm/openai"
)

func NewProvider(providerType, model, baseURL, apiKey string) (llm.Provider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(apiKey, baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}

package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

var checkPrompts = map[string]string{
	"grammar": "Check the following text for grammar and spelling errors. Provide corrections and explanations.",
	"style":   "Analyze the academic writing style of the following text. Suggest improvements for clarity and formality.",
	"logic":   "Evaluate the logical flow and argumentation in the following text. Identify any logical fallacies or weak points.",
	"facts":   "Check the factual accuracy of claims in the following text. Note any statements that need verification.",
}

var generatePrompts = map[string]string{
	"continue":     "Continue writing the academic text naturally, maintaining the same style and tone.",
	"rephrase":     "Rephrase the text in a more academic and formal style while preserving the meaning.",
	"outline":      "Create a detailed outline for an academic paper on the given topic.",
	"introduction": "Write an engaging academic introduction for the given topic.",
	"conclusion":   "Write a comprehensive conclusion that summarizes the key points.",
}

// CompletionClient is the slice of the OpenAI client the assistant
// needs; tests substitute a stub.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type AIService interface {
	CheckText(ctx context.Context, text, checkType string) (string, error)
	Generate(ctx context.Context, prompt, contextText, genType string) (string, error)
	SuggestSources(ctx context.Context, topic string, count int) (string, error)
	AnalyzeStructure(ctx context.Context, content string) (string, error)
}

type aiService struct {
	client CompletionClient
}

func NewAIService(client CompletionClient) AIService {
	return &aiService{client: client}
}

func (s *aiService) complete(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *aiService) CheckText(ctx context.Context, text, checkType string) (string, error) {
	return s.complete(ctx,
		"You are an academic writing assistant. Provide clear, constructive feedback.",
		fmt.Sprintf("%s\n\nText: %s", checkPrompts[checkType], text),
		0.3, 1000)
}

func (s *aiService) Generate(ctx context.Context, prompt, contextText, genType string) (string, error) {
	user := prompt
	if contextText != "" {
		user = fmt.Sprintf("Context: %s\n\n%s", contextText, prompt)
	}
	return s.complete(ctx,
		fmt.Sprintf("You are an academic writing assistant. %s", generatePrompts[genType]),
		user,
		0.7, 1500)
}

func (s *aiService) SuggestSources(ctx context.Context, topic string, count int) (string, error) {
	return s.complete(ctx,
		"You are an academic research assistant. Suggest relevant academic sources with proper citations.",
		fmt.Sprintf("Suggest %d relevant academic sources for the topic: %q. Include authors, titles, years, and brief descriptions.", count, topic),
		0.5, 1500)
}

func (s *aiService) AnalyzeStructure(ctx context.Context, content string) (string, error) {
	return s.complete(ctx,
		"Analyze the structure of academic papers. Provide feedback on completeness, balance, and organization.",
		fmt.Sprintf("Analyze the structure of this academic paper:\n\n%s", content),
		0.3, 1000)
}

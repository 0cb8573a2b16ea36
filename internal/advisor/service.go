package advisor

import (
	"context"
	"fmt"
	"strings"
)

const systemPrompt = "You are a personal financial advisor. Give practical, specific advice " +
	"based on the user's financial snapshot. Answer in plain text without markdown tables."

// Snapshot — финансовый срез пользователя, добавляемый в контекст запроса.
type Snapshot struct {
	Income      float64
	Expenses    float64
	Savings     float64
	SavingsRate float64
	NetWorth    float64
	Goals       []GoalBrief
}

type GoalBrief struct {
	Name     string
	Target   float64
	Saved    float64
	Deadline string
}

type Advice struct {
	Answer   string `json:"answer"`
	Fallback bool   `json:"fallback"`
}

type Service struct {
	client Client
}

// NewService создает сервис финансового советника.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Advise отвечает на вопрос пользователя с учетом его финансового среза.
// При недоступности LLM возвращает детерминированный совет по теме вопроса.
func (s *Service) Advise(ctx context.Context, question string, snapshot Snapshot) (Advice, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Advice{}, fmt.Errorf("question is empty")
	}

	if s.client == nil {
		return Advice{Answer: FallbackAdvice(question), Fallback: true}, nil
	}

	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(question, snapshot)},
	}

	answer, _, err := s.client.Chat(ctx, messages)
	if err != nil || strings.TrimSpace(answer) == "" {
		return Advice{Answer: FallbackAdvice(question), Fallback: true}, nil
	}

	return Advice{Answer: answer}, nil
}

func buildPrompt(question string, snapshot Snapshot) string {
	var builder strings.Builder

	builder.WriteString("Financial snapshot:\n")
	fmt.Fprintf(&builder, "- monthly income: %.2f\n", snapshot.Income)
	fmt.Fprintf(&builder, "- monthly expenses: %.2f\n", snapshot.Expenses)
	fmt.Fprintf(&builder, "- savings: %.2f (rate %.1f%%)\n", snapshot.Savings, snapshot.SavingsRate)
	fmt.Fprintf(&builder, "- net worth: %.2f\n", snapshot.NetWorth)

	if len(snapshot.Goals) > 0 {
		builder.WriteString("- goals:\n")
		for _, goal := range snapshot.Goals {
			fmt.Fprintf(&builder, "  - %s: %.2f of %.2f by %s\n", goal.Name, goal.Saved, goal.Target, goal.Deadline)
		}
	}

	builder.WriteString("\nQuestion: ")
	builder.WriteString(question)

	return builder.String()
}

package gemini

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"freelancercheckin/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

const unpricedRole = "A combinar"

var promptTemplate = template.Must(
	template.New("description_prompt.txt").
		Funcs(template.FuncMap{"roleList": roleList}).
		ParseFS(templateFS, "templates/description_prompt.txt"),
)

// roleList renders roles as "2x Garçom (R$ 150,00), 1x Caixa (A combinar)".
func roleList(roles []domain.Role) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		value := r.Value
		if value == "" {
			value = unpricedRole
		}
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", r.Vacancies, r.Title, value))
	}
	return strings.Join(parts, ", ")
}

// BuildPrompt renders the generation prompt for the event facts.
func BuildPrompt(facts domain.EventFacts) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, facts); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

package optimizer

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed system_prompt.md
var systemPrompt string

//go:embed prompting_practices.md
var promptingPractices string

//go:embed task_questions.tmpl
var questionsTemplate string

//go:embed task_optimize.tmpl
var optimizeTemplate string

// Template data types

type questionsData struct {
	Draft string
}

type optimizeData struct {
	Practices string
	Draft     string
	QA        []qaPair
	Notes     []string
}

type qaPair struct {
	Index    int
	Question string
	Answer   string
}

type promptRenderer struct {
	questionsTmpl *template.Template
	optimizeTmpl  *template.Template
}

func newPromptRenderer() (*promptRenderer, error) {
	questionsTmpl, err := template.New("questions").Parse(questionsTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse questions template: %w", err)
	}
	optimizeTmpl, err := template.New("optimize").
		Funcs(template.FuncMap{"add": func(a, b int) int { return a + b }}).
		Parse(optimizeTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse optimize template: %w", err)
	}
	return &promptRenderer{
		questionsTmpl: questionsTmpl,
		optimizeTmpl:  optimizeTmpl,
	}, nil
}

// renderClarifyMessage composes the first message of a session: the system
// prompt followed by the question-generation task instruction
func (pr *promptRenderer) renderClarifyMessage(draft string) (string, error) {
	var buf bytes.Buffer
	if err := pr.questionsTmpl.Execute(&buf, questionsData{Draft: draft}); err != nil {
		return "", fmt.Errorf("failed to execute questions template: %w", err)
	}
	return strings.TrimSpace(systemPrompt) + "\n\n" + strings.TrimSpace(buf.String()), nil
}

// renderOptimizeMessage composes a synthesis message: the prompting-practices
// preamble, the task instruction, the original draft, the ordered Q/A pairs,
// and every refinement note accumulated so far
func (pr *promptRenderer) renderOptimizeMessage(draft string, questions, answers, notes []string) (string, error) {
	qa := make([]qaPair, len(questions))
	for i, q := range questions {
		qa[i] = qaPair{
			Index:    i + 1,
			Question: q,
			Answer:   answers[i],
		}
	}

	var buf bytes.Buffer
	data := optimizeData{
		Practices: strings.TrimSpace(promptingPractices),
		Draft:     draft,
		QA:        qa,
		Notes:     notes,
	}
	if err := pr.optimizeTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute optimize template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

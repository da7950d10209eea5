package prompt

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/yantr-labs/yantr/internal/registry"
)

// ErrCancelled is returned when the user interrupts a prompt.
var ErrCancelled = errors.New("cancelled")

// Answers are the selections gathered for a new project.
type Answers struct {
	Runtime        string
	Framework      string
	DatabaseType   string
	ORM            string
	Components     []string
	PackageManager string
}

// Collector gathers Answers. Fields already set in defaults are used as
// the initial choice of each prompt.
type Collector interface {
	Collect(reg *registry.Registry, defaults Answers) (*Answers, error)
}

// SurveyCollector asks on the terminal.
type SurveyCollector struct {
	Opts []survey.AskOpt
}

// Collect runs the runtime, framework, database, ORM, component and
// package manager prompts in order.
func (s SurveyCollector) Collect(reg *registry.Registry, defaults Answers) (*Answers, error) {
	a := &Answers{}

	var err error
	if a.Runtime, err = s.selectOne("Which runtime would you like to use?", Runtimes, orDefault(defaults.Runtime, "node")); err != nil {
		return nil, err
	}
	if a.Framework, err = s.selectOne("Which framework would you like to use?", Frameworks, orDefault(defaults.Framework, registry.DefaultFramework)); err != nil {
		return nil, err
	}
	if a.DatabaseType, err = s.selectOne("Which database would you like to use?", Databases, orDefault(defaults.DatabaseType, NoDatabase)); err != nil {
		return nil, err
	}
	if a.DatabaseType == NoDatabase {
		a.DatabaseType = ""
	}

	if opts := ORMs(a.DatabaseType); len(opts) > 0 {
		if a.ORM, err = s.selectOne("Which ORM would you like to use?", opts, orDefault(defaults.ORM, DefaultORM(a.DatabaseType))); err != nil {
			return nil, err
		}
	}

	if opts := Components(reg); len(opts) > 0 {
		var picked []string
		q := &survey.MultiSelect{
			Message: "Which additional components would you like to add?",
			Options: labels(opts),
		}
		if def := selectedLabels(opts, defaults.Components); len(def) > 0 {
			q.Default = def
		}
		if err := s.ask(q, &picked); err != nil {
			return nil, err
		}
		for _, label := range picked {
			a.Components = append(a.Components, valueFor(opts, label))
		}
	}

	if a.PackageManager, err = s.selectOne("Which package manager would you like to use?", PackageManagers(), orDefault(defaults.PackageManager, "npm")); err != nil {
		return nil, err
	}

	return a, nil
}

func (s SurveyCollector) selectOne(message string, opts []Option, def string) (string, error) {
	var label string
	q := &survey.Select{
		Message: message,
		Options: labels(opts),
		Default: labelFor(opts, def),
	}
	if err := s.ask(q, &label); err != nil {
		return "", err
	}
	return valueFor(opts, label), nil
}

func (s SurveyCollector) ask(p survey.Prompt, response any) error {
	if err := survey.AskOne(p, response, s.Opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

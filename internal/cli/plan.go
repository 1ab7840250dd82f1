package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tableform/pkg/authoring"
	"github.com/goliatone/go-tableform/pkg/model"
)

// plan is the YAML authoring script applied by `build --plan`.
type plan struct {
	Base      string         `yaml:"base"`
	Table     string         `yaml:"table"`
	Questions []planQuestion `yaml:"questions"`
}

type planQuestion struct {
	Field    string    `yaml:"field"`
	Key      string    `yaml:"key,omitempty"`
	Label    string    `yaml:"label,omitempty"`
	Required bool      `yaml:"required,omitempty"`
	Options  *[]string `yaml:"options,omitempty"`
	Rule     *planRule `yaml:"rule,omitempty"`
}

type planRule struct {
	Logic      model.Logic     `yaml:"logic,omitempty"`
	Conditions []planCondition `yaml:"conditions"`
}

type planCondition struct {
	Question string         `yaml:"question"`
	Operator model.Operator `yaml:"operator,omitempty"`
	Value    string         `yaml:"value"`
}

func loadPlan(path string) (plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plan{}, fmt.Errorf("load plan: %w", err)
	}
	var p plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return plan{}, fmt.Errorf("load plan %s: %w", path, err)
	}
	return p, nil
}

// apply replays the plan against d through the authoring operations.
func (p plan) apply(d *authoring.Draft) error {
	for _, entry := range p.Questions {
		q, err := d.SelectField(entry.Field)
		if err != nil {
			return err
		}
		key := q.QuestionKey
		if entry.Key != "" {
			if err := d.SetQuestionKey(key, entry.Key); err != nil {
				return err
			}
			key = entry.Key
		}
		if entry.Label != "" {
			if err := d.SetLabel(key, entry.Label); err != nil {
				return err
			}
		}
		if entry.Required {
			if err := d.SetRequired(key, true); err != nil {
				return err
			}
		}
		if entry.Options != nil {
			if err := d.SetOptions(key, *entry.Options); err != nil {
				return err
			}
		}
		if entry.Rule != nil {
			if err := applyRule(d, key, *entry.Rule); err != nil {
				return fmt.Errorf("question %s: %w", key, err)
			}
		}
	}
	return nil
}

func applyRule(d *authoring.Draft, key string, rule planRule) error {
	if err := d.EnableConditionalLogic(key); err != nil {
		return err
	}
	if rule.Logic != "" {
		if err := d.SetLogic(key, rule.Logic); err != nil {
			return err
		}
	}
	for _, c := range rule.Conditions {
		idx, err := d.AddCondition(key)
		if err != nil {
			return err
		}
		patch := authoring.ConditionPatch{QuestionKey: &c.Question, Value: &c.Value}
		if c.Operator != "" {
			patch.Operator = &c.Operator
		}
		if err := d.UpdateCondition(key, idx, patch); err != nil {
			return err
		}
	}
	return nil
}

package carbon

import (
	"fmt"

	"github.com/footprint-app/footprint/internal/model"
)

// Advisory is a generated tip before persistence.
type Advisory struct {
	Text     string `json:"tip_text"`
	Category string `json:"category"`
}

// Evaluate returns one advisory per entry whose value × rule factor strictly
// exceeds the rule benchmark, in entry order. Entries without a rule, or whose
// rule has no benchmark, never trigger. Repeated triggers are not collapsed.
func Evaluate(entries []*model.ActivityLog, rules RuleTable) []Advisory {
	advisories := []Advisory{}
	for _, entry := range entries {
		rule, ok := rules.Rule(entry.ActivityType)
		if !ok || rule.Benchmark == nil {
			continue
		}
		if entry.Value*rule.Factor > *rule.Benchmark {
			advisories = append(advisories, Advisory{Text: rule.Tip, Category: rule.Category})
		}
	}
	return advisories
}

// Classifier evaluates a user's activity log against a rule table.
type Classifier struct {
	activities ActivityLister
	rules      RuleTable
}

func NewClassifier(activities ActivityLister, rules RuleTable) *Classifier {
	return &Classifier{activities: activities, rules: rules}
}

func (c *Classifier) Classify(userID string) ([]Advisory, error) {
	entries, err := c.activities.Activities(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return Evaluate(entries, c.rules), nil
}

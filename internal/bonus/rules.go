package bonus

import (
	"context"
	"fmt"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

// ruleContext carries the completion facts a rule condition is evaluated
// against.
type ruleContext struct {
	task       domain.Task
	completion domain.Completion

	// firstInGroup is true when this is the user's first approved completion
	// in the group.
	firstInGroup bool
	// firstOfTask is true when this is the user's first approved completion
	// of this task.
	firstOfTask bool
}

// conditionMet evaluates a rule condition against the completion facts.
func conditionMet(rule domain.Rule, rc ruleContext) bool {
	switch rule.Condition {
	case domain.RuleAlways:
		return true
	case domain.RuleOnTime:
		return !rc.task.DueAt.IsZero() &&
			!rc.completion.SubmittedAt.IsZero() &&
			!rc.completion.SubmittedAt.After(rc.task.DueAt)
	case domain.RuleEarly:
		if rc.task.DueAt.IsZero() || rc.completion.SubmittedAt.IsZero() {
			return false
		}
		early := rc.task.DueAt.Sub(rc.completion.SubmittedAt)

		return early >= time.Duration(rule.MinHoursEarly)*time.Hour
	case domain.RuleFirstCompletion:
		return rc.firstInGroup
	case domain.RuleFirstTaskCompletion:
		return rc.firstOfTask
	default:
		return false
	}
}

// bestRule picks the winning rule among the matching candidates: highest
// amount first, then the most specific scope, then the newest rule.
func bestRule(rules []domain.Rule, rc ruleContext) *domain.Rule {
	var best *domain.Rule
	for i := range rules {
		rule := rules[i]
		if !conditionMet(rule, rc) {
			continue
		}

		switch {
		case best == nil:
			best = &rules[i]
		case rule.Amount > best.Amount:
			best = &rules[i]
		case rule.Amount == best.Amount && rule.Specificity() < best.Specificity():
			best = &rules[i]
		case rule.Amount == best.Amount && rule.Specificity() == best.Specificity() &&
			rule.CreatedAt.After(best.CreatedAt):
			best = &rules[i]
		}
	}

	return best
}

// resolveAward decides how many points an approved completion earns. A fixed
// point value on the task overrides the rule engine.
func (b bonus) resolveAward(ctx context.Context,
	tx storage.AllStorage,
	task domain.Task,
	completion domain.Completion) (int64, error) {
	if task.Points > 0 {
		return task.Points, nil
	}

	rules, err := tx.MatchingRules(ctx, task.GroupID, task.ID, task.Type)
	if err != nil {
		return 0, fmt.Errorf("could not fetch matching rules: %w", err)
	}
	if len(rules) == 0 {
		return 0, nil
	}

	rc := ruleContext{task: task, completion: completion}

	// first-completion facts are only queried when some rule needs them
	for _, rule := range rules {
		switch rule.Condition {
		case domain.RuleFirstCompletion:
			count, err := tx.ApprovedCompletionCount(ctx, task.GroupID, completion.UserID)
			if err != nil {
				return 0, fmt.Errorf("could not count approved completions: %w", err)
			}
			// the reviewed completion itself may already be recorded as approved
			rc.firstInGroup = count <= 1
		case domain.RuleFirstTaskCompletion:
			count, err := tx.ApprovedTaskCompletionCount(ctx, task.ID, completion.UserID)
			if err != nil {
				return 0, fmt.Errorf("could not count approved task completions: %w", err)
			}
			rc.firstOfTask = count <= 1
		}
	}

	winner := bestRule(rules, rc)
	if winner == nil {
		return 0, nil
	}

	return winner.Amount, nil
}

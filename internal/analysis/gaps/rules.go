// Package gaps checks a cleaned model response for profile-derived facts it
// should have covered and prepends canned sections for the ones it missed.
package gaps

import (
	"strings"

	"github.com/lifecoach/backend/internal/model/coach"
	"github.com/lifecoach/backend/internal/model/profile"
)

// Policy controls how many unmet gates may inject in one pass.
type Policy string

const (
	// FirstMatch stops after the highest-priority unmet gate.
	FirstMatch Policy = "first-match"
	// AllMatches lets every unmet gate contribute its block.
	AllMatches Policy = "all-matches"
)

// ParsePolicy maps a config string onto a Policy, defaulting to FirstMatch.
func ParsePolicy(s string) Policy {
	if Policy(s) == AllMatches {
		return AllMatches
	}
	return FirstMatch
}

// Keyword families shared between gates. Matching is case-insensitive
// substring search throughout.
var (
	racialNeedKeywords = []string{"racial", "racism", "black", "slur"}
	racialTextKeywords = []string{"racial", "racism", "discriminat", "slur"}

	asthmaKeywords  = []string{"asthma"}
	lowBMIKeywords  = []string{"low bmi", "underweight"}
	highBMIKeywords = []string{"high bmi", "overweight"}

	debtKeywords      = []string{"debt", "loan", "credit card"}
	savingKeywords    = []string{"sav", "invest", "retire", "emergency fund"}
	budgetingKeywords = []string{"budget", "spend", "track"}

	experienceBuckets = []struct {
		name     string
		keywords []string
	}{
		{"entry", []string{"entry", "junior", "beginner"}},
		{"mid", []string{"mid", "intermediate"}},
		{"senior", []string{"senior", "lead", "manager", "experienced"}},
	}
)

// rule is one content gate: if it applies to the request and the cleaned
// text does not satisfy it, render supplies the block to prepend.
type rule struct {
	name      string
	modes     []coach.Mode // nil means any mode
	applies   func(p *profile.Profile) bool
	satisfied func(lower string, p *profile.Profile) bool
	render    func(mode coach.Mode, lower string, p *profile.Profile) string
}

// rules in fixed priority order; injected blocks appear in this order.
var rules = []rule{
	{
		name: "personalization",
		applies: func(p *profile.Profile) bool {
			return p.Name != "" || len(p.Interests) > 0 || len(p.Goals) > 0
		},
		satisfied: func(lower string, p *profile.Profile) bool {
			if p.Name != "" && !strings.Contains(lower, strings.ToLower(p.Name)) {
				return false
			}
			if len(p.Interests) > 0 && !anyMentioned(lower, p.Interests) {
				return false
			}
			if len(p.Goals) > 0 && !anyMentioned(lower, p.Goals) {
				return false
			}
			return true
		},
		render: func(mode coach.Mode, lower string, p *profile.Profile) string {
			return renderPersonalized(mode, p, lower)
		},
	},
	{
		name:  "fitness-health",
		modes: []coach.Mode{coach.Fitness},
		applies: func(p *profile.Profile) bool {
			if len(p.HealthConditions) == 0 {
				return false
			}
			_, ok := p.ConditionMatching(append(append(append([]string{}, asthmaKeywords...), lowBMIKeywords...), highBMIKeywords...)...)
			return ok
		},
		satisfied: func(lower string, _ *profile.Profile) bool {
			return containsAny(lower, "asthma", "bmi", "weight")
		},
		render: func(_ coach.Mode, _ string, p *profile.Profile) string {
			// First match wins: asthma, then low BMI, then high BMI.
			if _, ok := p.ConditionMatching(asthmaKeywords...); ok {
				return renderAsthmaChecklist(p.HealthConditions)
			}
			if _, ok := p.ConditionMatching(lowBMIKeywords...); ok {
				return renderBulkUpChecklist(p.HealthConditions)
			}
			return renderWeightManagementChecklist(p.HealthConditions)
		},
	},
	{
		name:  "mental-racial-support",
		modes: []coach.Mode{coach.Mental},
		applies: func(p *profile.Profile) bool {
			return profile.MentionsAny(p.MentalHealthNeeds, racialNeedKeywords...)
		},
		satisfied: func(lower string, _ *profile.Profile) bool {
			return containsAny(lower, racialTextKeywords...)
		},
		render: func(coach.Mode, string, *profile.Profile) string {
			return renderRacialSupport()
		},
	},
	{
		name:  "finance-debt",
		modes: []coach.Mode{coach.Finance},
		applies: func(p *profile.Profile) bool {
			return len(p.FinancialGoals) > 0
		},
		satisfied: func(lower string, p *profile.Profile) bool {
			// A family is covered when either the stated goals or the
			// response touch it.
			return profile.MentionsAny(p.FinancialGoals, debtKeywords...) || containsAny(lower, debtKeywords...)
		},
		render: func(_ coach.Mode, _ string, p *profile.Profile) string {
			return renderDebtStrategies(p.FinancialGoals)
		},
	},
	{
		name:  "finance-saving",
		modes: []coach.Mode{coach.Finance},
		applies: func(p *profile.Profile) bool {
			return len(p.FinancialGoals) > 0
		},
		satisfied: func(lower string, p *profile.Profile) bool {
			return profile.MentionsAny(p.FinancialGoals, savingKeywords...) || containsAny(lower, savingKeywords...)
		},
		render: func(_ coach.Mode, _ string, p *profile.Profile) string {
			return renderSavingStrategies(p.FinancialGoals)
		},
	},
	{
		name:  "finance-budgeting",
		modes: []coach.Mode{coach.Finance},
		applies: func(p *profile.Profile) bool {
			return len(p.FinancialGoals) > 0
		},
		satisfied: func(lower string, p *profile.Profile) bool {
			return profile.MentionsAny(p.FinancialGoals, budgetingKeywords...) || containsAny(lower, budgetingKeywords...)
		},
		render: func(_ coach.Mode, _ string, p *profile.Profile) string {
			return renderBudgetingStrategies(p.FinancialGoals)
		},
	},
	{
		name:  "career-occupation",
		modes: []coach.Mode{coach.Career},
		applies: func(p *profile.Profile) bool {
			return p.Occupation != ""
		},
		satisfied: func(lower string, p *profile.Profile) bool {
			return strings.Contains(lower, strings.ToLower(p.Occupation)) ||
				containsAny(lower, "current role", "your field")
		},
		render: func(_ coach.Mode, _ string, p *profile.Profile) string {
			return renderOccupationContext(p)
		},
	},
	{
		name:  "career-interests",
		modes: []coach.Mode{coach.Career},
		applies: func(p *profile.Profile) bool {
			return len(p.Interests) > 0
		},
		satisfied: func(lower string, p *profile.Profile) bool {
			return anyMentioned(lower, p.Interests)
		},
		render: func(_ coach.Mode, _ string, p *profile.Profile) string {
			return renderCareerInterests(p.Interests)
		},
	},
	{
		name:  "career-experience",
		modes: []coach.Mode{coach.Career},
		applies: func(p *profile.Profile) bool {
			_, ok := experienceBucket(p.Experience)
			return ok
		},
		satisfied: func(lower string, p *profile.Profile) bool {
			bucket, _ := experienceBucket(p.Experience)
			for _, b := range experienceBuckets {
				if b.name == bucket {
					return containsAny(lower, b.keywords...)
				}
			}
			return true
		},
		render: func(_ coach.Mode, _ string, p *profile.Profile) string {
			bucket, _ := experienceBucket(p.Experience)
			return renderExperienceAdvice(bucket, p)
		},
	},
}

// experienceBucket classifies a free-form experience string.
func experienceBucket(experience string) (string, bool) {
	lower := strings.ToLower(experience)
	if lower == "" {
		return "", false
	}
	for _, b := range experienceBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b.name, true
			}
		}
	}
	return "", false
}

// Annotate runs every applicable gate against the cleaned response and
// prepends the blocks for unmet ones. The response text itself is never
// modified; with no profile there is nothing to gate on.
func Annotate(text string, mode coach.Mode, p *profile.Profile, policy Policy) string {
	if p == nil {
		return text
	}

	lower := strings.ToLower(text)
	var blocks []string

	for _, r := range rules {
		if !r.appliesToMode(mode) {
			continue
		}
		if !r.applies(p) {
			continue
		}
		if r.satisfied(lower, p) {
			continue
		}

		block := r.render(mode, lower, p)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)

		if policy == FirstMatch {
			break
		}
	}

	if len(blocks) == 0 {
		return text
	}
	return strings.Join(blocks, "\n\n") + "\n\n" + text
}

func (r rule) appliesToMode(mode coach.Mode) bool {
	if len(r.modes) == 0 {
		return true
	}
	for _, m := range r.modes {
		if m == mode {
			return true
		}
	}
	return false
}

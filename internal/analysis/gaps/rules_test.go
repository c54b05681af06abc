package gaps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifecoach/backend/internal/model/coach"
	"github.com/lifecoach/backend/internal/model/profile"
)

func TestAnnotateNilProfileUnchanged(t *testing.T) {
	text := "Any response at all."
	got := Annotate(text, coach.Career, nil, FirstMatch)
	assert.Equal(t, text, got)
}

func TestAnnotateEmptyProfileUnchanged(t *testing.T) {
	text := "Generic advice with no names mentioned."
	got := Annotate(text, coach.Career, &profile.Profile{}, FirstMatch)
	assert.Equal(t, text, got)
}

func TestAnnotateAsthmaChecklistPrepended(t *testing.T) {
	p := &profile.Profile{HealthConditions: profile.StringList{"asthma"}}
	text := "Here is a simple plan.\n\nDo squats daily."

	got := Annotate(text, coach.Fitness, p, FirstMatch)

	assert.True(t, strings.HasPrefix(got, "### Important Health Considerations"))
	assert.Contains(t, got, "reliever inhaler")
	assert.True(t, strings.HasSuffix(got, text), "original response must be preserved after the block")
}

func TestAnnotateFitnessHealthSatisfiedByMention(t *testing.T) {
	p := &profile.Profile{HealthConditions: profile.StringList{"asthma"}}
	text := "Given your asthma, warm up slowly."

	got := Annotate(text, coach.Fitness, p, FirstMatch)
	assert.Equal(t, text, got)
}

func TestAnnotateLowBMIChecklist(t *testing.T) {
	p := &profile.Profile{HealthConditions: profile.StringList{"low bmi"}}
	text := "Eat more protein and lift."

	got := Annotate(text, coach.Fitness, p, FirstMatch)
	assert.Contains(t, got, "calorie surplus")
	assert.NotContains(t, got, "calorie deficit")
}

func TestAnnotateHighBMIChecklist(t *testing.T) {
	p := &profile.Profile{HealthConditions: profile.StringList{"high bmi"}}
	text := "Move every day and sleep well."

	got := Annotate(text, coach.Fitness, p, FirstMatch)
	assert.Contains(t, got, "calorie deficit")
	assert.NotContains(t, got, "calorie surplus")
}

func TestAnnotateRacialSupportPrependedOnce(t *testing.T) {
	p := &profile.Profile{MentalHealthNeeds: profile.StringList{"racial discrimination"}}
	text := "Take deep breaths and rest well tonight."

	got := Annotate(text, coach.Mental, p, FirstMatch)

	assert.True(t, strings.HasPrefix(got, "### Support for Dealing with Racial Discrimination"))
	assert.Equal(t, 1, strings.Count(got, "### Support for Dealing with Racial Discrimination"))
	assert.True(t, strings.HasSuffix(got, text))
}

func TestAnnotateRacialSupportSkippedWhenAddressed(t *testing.T) {
	p := &profile.Profile{MentalHealthNeeds: profile.StringList{"racism at work"}}
	text := "Facing racism at work is exhausting, and your response to it is valid."

	got := Annotate(text, coach.Mental, p, FirstMatch)
	assert.Equal(t, text, got)
}

func TestAnnotateDebtCoveredByGoals(t *testing.T) {
	p := &profile.Profile{FinancialGoals: profile.StringList{"pay off credit card debt"}}
	text := "Focus on your debt first and keep momentum."

	got := Annotate(text, coach.Finance, p, FirstMatch)
	assert.NotContains(t, got, "### Debt Payoff Strategies")
}

func TestAnnotateFinanceFirstMatchPolicy(t *testing.T) {
	p := &profile.Profile{FinancialGoals: profile.StringList{"buy a house"}}
	text := "Good luck with the purchase."

	got := Annotate(text, coach.Finance, p, FirstMatch)

	assert.Contains(t, got, "### Debt Payoff Strategies")
	assert.NotContains(t, got, "### Saving and Investing")
	assert.NotContains(t, got, "### Budgeting Basics")
}

func TestAnnotateFinanceAllMatchesPolicy(t *testing.T) {
	p := &profile.Profile{FinancialGoals: profile.StringList{"buy a house"}}
	text := "Good luck with the purchase."

	got := Annotate(text, coach.Finance, p, AllMatches)

	assert.Contains(t, got, "### Debt Payoff Strategies")
	assert.Contains(t, got, "### Saving and Investing")
	assert.Contains(t, got, "### Budgeting Basics")
	assert.True(t, strings.HasSuffix(got, text))

	// Blocks appear in priority order.
	debt := strings.Index(got, "### Debt Payoff Strategies")
	saving := strings.Index(got, "### Saving and Investing")
	budgeting := strings.Index(got, "### Budgeting Basics")
	assert.Less(t, debt, saving)
	assert.Less(t, saving, budgeting)
}

func TestAnnotateCareerOccupationGate(t *testing.T) {
	p := &profile.Profile{Occupation: "nurse"}

	missing := Annotate("Update your resume this month.", coach.Career, p, FirstMatch)
	assert.Contains(t, missing, "### Advice for Your Role as nurse")

	synonym := Annotate("Think about how this applies in your field.", coach.Career, p, FirstMatch)
	assert.NotContains(t, synonym, "### Advice for Your Role")
}

func TestAnnotateCareerExperienceBuckets(t *testing.T) {
	cases := []struct {
		experience string
		want       string
	}{
		{"entry level, 1 year", "Building from an Entry-Level Position"},
		{"mid-level developer", "Leveraging Your Mid-Level Experience"},
		{"senior engineer", "Making the Most of Your Senior Experience"},
	}

	for _, tc := range cases {
		p := &profile.Profile{Experience: tc.experience}
		got := Annotate("Polish your resume soon.", coach.Career, p, FirstMatch)
		assert.Contains(t, got, tc.want, "experience %q", tc.experience)
	}
}

func TestAnnotateExperienceNoBucketNoBlock(t *testing.T) {
	p := &profile.Profile{Experience: "a few years"}
	text := "Polish your resume soon."

	got := Annotate(text, coach.Career, p, FirstMatch)
	assert.Equal(t, text, got)
}

func TestAnnotatePersonalizationGate(t *testing.T) {
	p := &profile.Profile{
		Name:      "Alex",
		Interests: profile.StringList{"swimming"},
		Goals:     profile.StringList{"get stronger"},
	}

	got := Annotate("Lift three times a week.", coach.Fitness, p, FirstMatch)

	assert.Contains(t, got, "### Personalized Advice")
	assert.Contains(t, got, "Alex")
	assert.Contains(t, got, "#### Incorporating Your Interests")
	assert.Contains(t, got, "swimming")
	assert.Contains(t, got, "#### Your Goals")
}

func TestAnnotateRoundTripNoInjection(t *testing.T) {
	p := &profile.Profile{
		Name:      "Alex",
		Interests: profile.StringList{"swimming"},
		Goals:     profile.StringList{"get stronger"},
	}
	text := "Alex, swimming will help you get stronger over time."

	got := Annotate(text, coach.Fitness, p, FirstMatch)
	assert.Equal(t, text, got)
}

func TestAnnotateGeneralModeSkipsDomainGates(t *testing.T) {
	p := &profile.Profile{
		HealthConditions:  profile.StringList{"asthma"},
		FinancialGoals:    profile.StringList{"save more"},
		Occupation:        "teacher",
		MentalHealthNeeds: profile.StringList{"racial stress"},
	}
	text := "Here is some general advice for you today."

	got := Annotate(text, coach.General, p, FirstMatch)
	assert.Equal(t, text, got)
}

func TestExperienceBucket(t *testing.T) {
	cases := []struct {
		in     string
		bucket string
		ok     bool
	}{
		{"junior analyst", "entry", true},
		{"intermediate", "mid", true},
		{"team lead", "senior", true},
		{"", "", false},
		{"ten years", "", false},
	}

	for _, tc := range cases {
		bucket, ok := experienceBucket(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.bucket, bucket, "input %q", tc.in)
	}
}

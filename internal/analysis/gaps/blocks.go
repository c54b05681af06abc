package gaps

import (
	"fmt"
	"strings"

	"github.com/lifecoach/backend/internal/model/coach"
	"github.com/lifecoach/backend/internal/model/profile"
)

// Injected blocks are static Markdown templates with profile values
// interpolated. They are written in the coach persona's voice and prepended
// to the model's cleaned output; they never rewrite it.

func renderPersonalized(mode coach.Mode, p *profile.Profile, lower string) string {
	var b strings.Builder
	b.WriteString("### Personalized Advice\n\n")
	b.WriteString(personalizedOpening(mode, p))

	if len(p.Interests) > 0 && !anyMentioned(lower, p.Interests) {
		b.WriteString("\n\n#### Incorporating Your Interests\n\n")
		b.WriteString(interestSuggestions(mode, p.Interests))
	}

	if len(p.Goals) > 0 && !anyMentioned(lower, p.Goals) {
		b.WriteString("\n\n#### Your Goals\n\n")
		b.WriteString(goalActions(mode, p.Goals))
	}

	return b.String()
}

func personalizedOpening(mode coach.Mode, p *profile.Profile) string {
	name := p.Name
	if name == "" {
		name = "there"
	}

	switch mode {
	case coach.Fitness:
		facts := joinFacts(string(p.Age), p.Gender, p.FitnessLevel, p.HealthConditions.Join())
		return fmt.Sprintf("%s, I've tailored this plan around what you've shared (%s), so every recommendation below fits where you are right now.", name, facts)
	case coach.Career:
		facts := joinFacts(p.Occupation, p.Experience, p.Interests.Join())
		return fmt.Sprintf("%s, keeping your background in mind (%s), here is how this advice applies to your situation specifically.", name, facts)
	case coach.Finance:
		facts := joinFacts(p.Budget, p.FinancialGoals.Join())
		return fmt.Sprintf("%s, with your financial picture in mind (%s), the guidance below is matched to what you're working toward.", name, facts)
	case coach.Mental:
		facts := joinFacts(p.MentalHealthNeeds.Join())
		return fmt.Sprintf("%s, I want to acknowledge what you shared with me (%s) — the suggestions below take that into account.", name, facts)
	default:
		return fmt.Sprintf("%s, I've kept your profile in mind so the advice below speaks to your situation rather than a generic one.", name)
	}
}

func interestSuggestions(mode coach.Mode, interests profile.StringList) string {
	joined := strings.ToLower(interests.Join())

	var activity string
	switch {
	case strings.Contains(joined, "swimming"):
		activity = swimmingSuggestion(mode)
	case strings.Contains(joined, "football"), strings.Contains(joined, "soccer"), strings.Contains(joined, "fifa"):
		activity = footballSuggestion(mode)
	default:
		activity = genericInterestSuggestion(mode, interests.Join())
	}

	return activity
}

func swimmingSuggestion(mode coach.Mode) string {
	switch mode {
	case coach.Fitness:
		return "Since you enjoy swimming, build it into your week as your main cardio: two or three sessions of 20-30 minutes give you a full-body, low-impact workout that complements any strength plan."
	case coach.Mental:
		return "Swimming is a great fit here — the rhythm of laps is naturally meditative, and regular time in the water is a reliable way to lower stress."
	case coach.Career:
		return "Your interest in swimming can open doors too — coaching, aquatics management, or sports science are all paths that build on something you already love."
	default:
		return "Since swimming matters to you, look for ways to keep it in your routine — budget-wise, community pools are an inexpensive option that keeps this interest sustainable."
	}
}

func footballSuggestion(mode coach.Mode) string {
	switch mode {
	case coach.Fitness:
		return "Since you're into football, use it as your engine: pickup games cover sprint work and agility, and you can round them out with two short strength sessions a week."
	case coach.Mental:
		return "Football can do double duty here — team play is one of the most reliable mood lifters, combining exercise, structure, and social connection in one habit."
	case coach.Career:
		return "Your interest in football is worth taking seriously professionally — coaching, analytics, sports media, and club operations are all real career routes."
	default:
		return "Keep football in the picture — local leagues are usually cheap to join, so this interest doesn't have to compete with your other priorities."
	}
}

func genericInterestSuggestion(mode coach.Mode, interests string) string {
	switch mode {
	case coach.Fitness:
		return fmt.Sprintf("Your interests (%s) can anchor your routine — pick the most active one and schedule it like a workout, so consistency comes from enjoyment rather than willpower.", interests)
	case coach.Mental:
		return fmt.Sprintf("Make deliberate room for what you enjoy (%s) — protected time for your interests is one of the simplest, most effective self-care habits.", interests)
	case coach.Career:
		return fmt.Sprintf("Your interests (%s) are career signals — look for roles or side projects where they overlap with your skills, because that overlap is where motivation lasts.", interests)
	default:
		return fmt.Sprintf("Keep your interests (%s) in the plan — advice only sticks when it leaves room for the things you actually care about.", interests)
	}
}

func goalActions(mode coach.Mode, goals profile.StringList) string {
	joined := goals.Join()
	switch mode {
	case coach.Career:
		return fmt.Sprintf(`Working toward "%s", start with these steps:

- Break the goal into a 90-day milestone you can act on this week

- Identify one skill gap and commit to a concrete way of closing it

- Tell someone in your network about the goal — accountability moves careers`, joined)
	case coach.Finance:
		return fmt.Sprintf(`To make progress on "%s":

- Put a number and a date on it so you can track the gap each month

- Automate a transfer toward it the day you get paid

- Review progress monthly and adjust the amount, not the goal`, joined)
	default:
		return fmt.Sprintf(`To move toward "%s":

- Pick the single next action and schedule it

- Track your progress weekly, even when it's small

- Revisit the goal monthly to keep it realistic and motivating`, joined)
	}
}

func joinFacts(facts ...string) string {
	present := make([]string, 0, len(facts))
	for _, f := range facts {
		if strings.TrimSpace(f) != "" {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return "your profile"
	}
	return strings.Join(present, ", ")
}

func renderAsthmaChecklist(conditions profile.StringList) string {
	return fmt.Sprintf(`### Important Health Considerations

Based on your health profile (%s), the plan below has been adjusted for exercising with asthma:

- Always warm up gradually for 10-15 minutes before any intense activity

- Keep your reliever inhaler within reach during every session

- Prefer warm, humid environments (swimming is excellent) over cold, dry air

- Build intensity slowly across weeks, not within a single workout

- Stop immediately if you notice wheezing, chest tightness, or unusual breathlessness

- Confirm your exercise plan with your doctor, especially before increasing intensity`, conditions.Join())
}

func renderBulkUpChecklist(conditions profile.StringList) string {
	return fmt.Sprintf(`### Important Health Considerations

Based on your health profile (%s), here is how to build up healthily from a lower BMI:

- Eat in a modest calorie surplus of roughly 300-500 calories per day

- Aim for protein at every meal to support muscle growth

- Center your training on compound lifts: squats, presses, rows, deadlifts

- Add weight or reps gradually — progressive overload drives the gains

- Protect sleep and rest days; that's when the muscle is actually built`, conditions.Join())
}

func renderWeightManagementChecklist(conditions profile.StringList) string {
	return fmt.Sprintf(`### Important Health Considerations

Based on your health profile (%s), the plan below is adjusted for safe, sustainable weight management:

- Start with low-impact cardio such as walking, cycling, or swimming to protect your joints

- Pair it with a moderate calorie deficit — aim for gradual loss, not crash results

- Keep strength training in the mix so the weight you lose is fat, not muscle

- Watch portions rather than cutting out whole food groups

- Expect progress in months, not weeks, and check in with your doctor along the way`, conditions.Join())
}

func renderRacialSupport() string {
	return `### Support for Dealing with Racial Discrimination

What you're experiencing is real, and your feelings about it are valid:

- **Validation**: Racism and discrimination cause genuine harm. You are not overreacting, and it is not your burden to prove.

- **Boundaries**: You're allowed to step away from people, spaces, and conversations that diminish you — protecting your peace is not avoidance.

- **Identity affirmation**: Stay connected to community, culture, and people who reflect your worth back to you. Your identity is a source of strength.

- **Coping mechanisms**: Journaling, movement, breathing exercises, and time with trusted friends all help process these experiences rather than carry them alone.

- **Professional support**: A culturally competent therapist can make a real difference — directories exist specifically for finding clinicians with this expertise.`
}

func renderDebtStrategies(goals profile.StringList) string {
	return fmt.Sprintf(`### Debt Payoff Strategies

Given your goals (%s), here are proven approaches to clearing debt:

- List every debt with its balance and interest rate so you can see the whole picture

- Use the avalanche method (highest interest first) to minimize total cost, or the snowball method (smallest balance first) if quick wins keep you motivated

- Pay more than the minimum on one target debt while holding minimums on the rest

- Look into consolidating high-interest balances to a lower rate

- Pause new borrowing while you pay down — progress compounds quickly once the balances stop growing`, goals.Join())
}

func renderSavingStrategies(goals profile.StringList) string {
	return fmt.Sprintf(`### Saving and Investing

To strengthen the saving side of your plan (%s):

- Build an emergency fund of 3-6 months of expenses before anything else

- Automate savings on payday so the decision is made once, not monthly

- Capture any employer retirement match first — it's an immediate return

- For longer horizons, low-cost index funds are the simplest place to start investing

- Increase the amount whenever your income rises, before lifestyle does`, goals.Join())
}

func renderBudgetingStrategies(goals profile.StringList) string {
	return fmt.Sprintf(`### Budgeting Basics

To keep your plan (%s) on track, ground it in a budget:

- Track every expense for one month — awareness alone changes behavior

- Try the 50/30/20 split: needs, wants, and savings/debt respectively

- Review spending weekly for ten minutes rather than monthly for an hour

- Give every dollar a job before the month starts so leftover money doesn't drift

- Build in a small fun allowance — budgets fail when they feel like punishment`, goals.Join())
}

func renderOccupationContext(p *profile.Profile) string {
	return fmt.Sprintf(`### Advice for Your Role as %s

Let me connect this directly to your current role:

- Map the advice above onto your day-to-day as a %s — the fastest wins come from applying it where you already have credibility

- Identify which skills in your field are rising in demand and invest there first

- Document your accomplishments in your current role now; they are the raw material for your next move`, p.Occupation, strings.ToLower(p.Occupation))
}

func renderCareerInterests(interests profile.StringList) string {
	return fmt.Sprintf(`### Aligning Your Career with Your Interests

Your interests (%s) belong in this conversation:

- Look for roles and projects where your interests and your skills overlap — that's where sustained motivation lives

- Side projects built around an interest double as portfolio pieces

- People working in interest-adjacent fields are usually happy to talk; one informational chat can reshape a career plan`, interests.Join())
}

func renderExperienceAdvice(bucket string, p *profile.Profile) string {
	switch bucket {
	case "entry":
		return `### Building from an Entry-Level Position

At the entry stage, momentum matters more than titles:

- Say yes to stretch tasks — breadth now becomes specialization later

- Find a mentor one or two levels above you and meet regularly

- Keep a running log of what you ship; reviews and interviews both reward specifics`
	case "mid":
		return `### Leveraging Your Mid-Level Experience

With solid experience behind you, the leverage shifts:

- Start trading task execution for ownership of outcomes

- Mentor someone junior — it sharpens your own judgment and your visibility

- Decide deliberately between deepening expertise and broadening toward leadership`
	default:
		return `### Making the Most of Your Senior Experience

At the senior level, your experience is the product:

- Your network and reputation open more doors than applications do — invest in both

- Multiply your impact through the people you develop, not just your own output

- Consider advisory, speaking, or writing channels that turn experience into influence`
	}
}

func anyMentioned(lower string, values profile.StringList) bool {
	for _, v := range values {
		if v == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

func containsAny(lower string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

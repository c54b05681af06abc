package coach

import (
	"fmt"
	"strings"

	"github.com/lifecoach/backend/internal/model/chat"
	"github.com/lifecoach/backend/internal/model/coach"
	"github.com/lifecoach/backend/internal/model/profile"
)

// personaPrompts holds the static persona header for each coaching mode.
var personaPrompts = map[coach.Mode]string{
	coach.Career:  "You are an AI Career Coach. Provide helpful, actionable career advice. Focus on professional development, job searching, career planning, interviewing, resume building, and workplace skills. Be supportive, practical, and concise.",
	coach.Fitness: "You are an AI Fitness Coach. Provide helpful, actionable fitness and wellness advice. Focus on workout routines, nutrition, physical health, recovery, and healthy habits. Be supportive, practical, and concise. Avoid medical advice that should come from a healthcare professional.",
	coach.Finance: "You are an AI Financial Coach. Provide helpful, actionable financial advice. Focus on budgeting, saving, investing, debt management, and financial planning. Be supportive, practical, and concise. Clarify that you're not a licensed financial advisor when appropriate.",
	coach.Mental:  "You are an AI Mental Health Coach. Provide helpful, supportive guidance for mental wellbeing. Focus on stress management, mindfulness, emotional regulation, and self-care techniques. Be compassionate, practical, and concise. Clarify that you're not a licensed therapist and suggest professional help for serious issues.",
}

const genericPersona = "You are a helpful AI assistant."

// formattingInstructions is appended verbatim to every prompt regardless of
// mode; the downstream cleanup pass assumes the model at least attempts this.
const formattingInstructions = `
Format your responses in a clean, readable way that's easy to scan. You MUST follow these formatting rules:

1. Use short paragraphs (2-3 sentences max)
2. Use bullet points for lists with proper spacing between items
3. Use numbered steps for processes with proper spacing
4. Bold key points using **text** syntax
5. Use headings for sections with clear ### Heading format
6. Add empty lines between sections for readability
7. Keep your tone conversational and encouraging
8. NEVER format responses as continuous paragraphs

CRITICAL: Always structure your responses with proper spacing, line breaks, and formatting. Use vertical spacing to make content easy to read.`

const personalizationDirective = "Always address the user by name when possible and tailor your advice to their specific profile information. Refer to the profile data repeatedly and specifically throughout your response rather than giving generic advice."

// Keyword set that triggers the racial-trauma support clause when present in
// the stated mental-health needs.
var racialTraumaKeywords = []string{"racial", "racism", "black", "slur"}

// PersonaPrompt returns the static persona header for a mode; unrecognized
// modes get the generic assistant persona.
func PersonaPrompt(mode coach.Mode) string {
	if p, ok := personaPrompts[mode]; ok {
		return p
	}
	return genericPersona
}

// BuildPrompt serializes mode, profile, and conversation into the single
// instruction string submitted to the model. Pure function of its inputs;
// missing profile fields omit their lines, nothing fails.
func BuildPrompt(turns []chat.Turn, mode coach.Mode, p *profile.Profile) string {
	var system strings.Builder

	system.WriteString(PersonaPrompt(mode))
	system.WriteString("\n")
	system.WriteString(formattingInstructions)
	system.WriteString("\n\n")
	system.WriteString(personalizationDirective)

	if p != nil {
		writeProfileDirectives(&system, p)
		writeCrossDirectives(&system, mode, p)
		writeSpecializedClauses(&system, mode, p)
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "<s>[INST] %s [/INST]</s>", system.String())

	// User and assistant turns use swapped open/close tags per the model's
	// chat template.
	for _, turn := range turns {
		if turn.Role == chat.RoleUser {
			fmt.Fprintf(&prompt, "<s>[INST] %s [/INST]</s>", turn.Content)
		} else {
			fmt.Fprintf(&prompt, "<s>[/INST] %s [INST]</s>", turn.Content)
		}
	}

	return prompt.String()
}

func writeProfileDirectives(b *strings.Builder, p *profile.Profile) {
	b.WriteString("\n\nIMPORTANT USER PROFILE DATA (USE THIS TO PERSONALIZE YOUR RESPONSE):")

	if p.Name != "" {
		fmt.Fprintf(b, "\n- Name: %s. Address the user by name.", p.Name)
	}
	if p.Age != "" {
		fmt.Fprintf(b, "\n- Age: %s. Make sure your advice is appropriate for this age.", p.Age)
	}
	if p.Gender != "" {
		fmt.Fprintf(b, "\n- Gender: %s. Take this into account where it is relevant.", p.Gender)
	}
	if len(p.HealthConditions) > 0 {
		fmt.Fprintf(b, "\n- Health Conditions: %s. YOU MUST DIRECTLY ADDRESS THESE HEALTH CONDITIONS IN YOUR RESPONSE.", p.HealthConditions.Join())
	}
	if p.FitnessLevel != "" {
		fmt.Fprintf(b, "\n- Fitness Level: %s. Match the intensity of any recommendation to this level.", p.FitnessLevel)
	}
	if len(p.Goals) > 0 {
		fmt.Fprintf(b, "\n- Goals: %s. Tie your advice back to these goals explicitly.", p.Goals.Join())
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(b, "\n- Interests: %s. Work these interests into your suggestions.", p.Interests.Join())
	}
	if p.Occupation != "" {
		fmt.Fprintf(b, "\n- Occupation: %s. Consider how their work affects your advice.", p.Occupation)
	}
	if p.Experience != "" {
		fmt.Fprintf(b, "\n- Experience: %s. Pitch your advice at this experience level.", p.Experience)
	}
	if len(p.MentalHealthNeeds) > 0 {
		fmt.Fprintf(b, "\n- Mental Health Needs: %s. Acknowledge and address these needs directly.", p.MentalHealthNeeds.Join())
	}
	if len(p.FinancialGoals) > 0 {
		fmt.Fprintf(b, "\n- Financial Goals: %s. Relate your advice to these goals concretely.", p.FinancialGoals.Join())
	}
	if p.Budget != "" {
		fmt.Fprintf(b, "\n- Budget: %s. Keep every recommendation within this budget.", p.Budget)
	}
}

// writeCrossDirectives adds the interest and occupation directives whose
// imperative wording depends on the coaching mode.
func writeCrossDirectives(b *strings.Builder, mode coach.Mode, p *profile.Profile) {
	if len(p.Interests) > 0 {
		interests := p.Interests.Join()
		switch mode {
		case coach.Career:
			fmt.Fprintf(b, "\n\nThe user is interested in %s. Suggest career paths or professional opportunities that connect to these interests.", interests)
		case coach.Fitness:
			fmt.Fprintf(b, "\n\nThe user is interested in %s. Suggest exercises and activities that build on these interests.", interests)
		case coach.Mental:
			fmt.Fprintf(b, "\n\nThe user is interested in %s. Suggest self-care activities that draw on these interests.", interests)
		case coach.Finance:
			fmt.Fprintf(b, "\n\nThe user is interested in %s. Relate your financial advice to these interests where possible.", interests)
		}
	}

	if p.Occupation != "" {
		switch mode {
		case coach.Fitness:
			fmt.Fprintf(b, "\n\nThe user works as %s. Suggest exercise that complements the physical demands of this occupation.", p.Occupation)
		case coach.Finance:
			fmt.Fprintf(b, "\n\nThe user works as %s. Keep your financial advice realistic for the income typical of this occupation.", p.Occupation)
		case coach.Mental:
			fmt.Fprintf(b, "\n\nThe user works as %s. Consider stress factors commonly linked to this occupation.", p.Occupation)
		}
	}
}

// writeSpecializedClauses appends the multi-point instruction blocks that
// fire on specific profile contents.
func writeSpecializedClauses(b *strings.Builder, mode coach.Mode, p *profile.Profile) {
	if profile.MentionsAny(p.MentalHealthNeeds, racialTraumaKeywords...) {
		b.WriteString(`

CRITICAL INSTRUCTION: The user has shared that they are dealing with racial discrimination. Your response MUST:
1. Validate their experience and feelings without minimizing them
2. Offer guidance on setting boundaries with people and environments that cause harm
3. Affirm their identity as a source of strength
4. Suggest concrete coping mechanisms for processing these experiences
5. Recommend seeking a culturally competent mental health professional`)
	}

	if mode == coach.Fitness && len(p.HealthConditions) > 0 {
		fmt.Fprintf(b, "\n\nCRITICAL INSTRUCTION: Since this is a fitness conversation and the user has health conditions (%s), you MUST explicitly acknowledge these conditions and provide specific adaptations or precautions for each one. Include a dedicated section addressing each health condition.", p.HealthConditions.Join())

		if _, ok := p.ConditionMatching("asthma"); ok {
			b.WriteString(`

For the user's asthma specifically, your plan MUST include: gradual warm-ups, keeping a reliever inhaler at hand, preferring warm humid environments, building intensity slowly, and stopping at any sign of wheezing or chest tightness.`)
		}

		if _, ok := p.ConditionMatching("bmi", "weight", "underweight", "overweight"); ok {
			if _, low := p.ConditionMatching("low bmi", "underweight"); low {
				b.WriteString(`

The user's BMI is on the low side. Your plan MUST focus on healthy weight gain: a modest calorie surplus, protein at every meal, compound strength training, progressive overload, and adequate rest. Do NOT suggest weight loss.`)
			} else {
				b.WriteString(`

The user's BMI is on the high side. Your plan MUST focus on safe weight management: low-impact cardio, a moderate calorie deficit, strength training to preserve muscle, and gradual sustainable progress. Do NOT suggest bulking.`)
			}
		}
	}
}

package profile

import (
	"encoding/json"
	"strings"
)

// StringList accepts either a JSON string or an array of strings, which is
// how the client has historically sent list-valued profile fields.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			*l = nil
			return nil
		}
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// Join renders the list for prompt interpolation.
func (l StringList) Join() string {
	return strings.Join(l, ", ")
}

// FlexString accepts a JSON string or number; ages arrive as both.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Profile is the optional attribute set used to personalize prompts and
// responses. Every field is independent; absence of a field simply omits the
// matching directive line. Unknown JSON keys are preserved in Extra but
// nothing reads them.
type Profile struct {
	Name              string     `json:"name,omitempty"`
	Age               FlexString `json:"age,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	Goals             StringList `json:"goals,omitempty"`
	Interests         StringList `json:"interests,omitempty"`
	Occupation        string     `json:"occupation,omitempty"`
	Experience        string     `json:"experience,omitempty"`
	HealthConditions  StringList `json:"healthConditions,omitempty"`
	FitnessLevel      string     `json:"fitnessLevel,omitempty"`
	FinancialGoals    StringList `json:"financialGoals,omitempty"`
	Budget            string     `json:"budget,omitempty"`
	MentalHealthNeeds StringList `json:"mentalHealthNeeds,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var knownKeys = map[string]struct{}{
	"name": {}, "age": {}, "gender": {}, "goals": {}, "interests": {},
	"occupation": {}, "experience": {}, "healthConditions": {},
	"fitnessLevel": {}, "financialGoals": {}, "budget": {},
	"mentalHealthNeeds": {},
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	var known alias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range knownKeys {
		delete(raw, key)
	}
	if len(raw) == 0 {
		raw = nil
	}

	*p = Profile(known)
	p.Extra = raw
	return nil
}

// ConditionMatching returns the first health condition containing any of the
// given keywords, case-insensitively.
func (p *Profile) ConditionMatching(keywords ...string) (string, bool) {
	for _, cond := range p.HealthConditions {
		lower := strings.ToLower(cond)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return cond, true
			}
		}
	}
	return "", false
}

// MentionsAny reports whether any entry of the list contains any of the
// keywords, case-insensitively.
func MentionsAny(values StringList, keywords ...string) bool {
	for _, v := range values {
		lower := strings.ToLower(v)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

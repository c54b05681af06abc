package profile

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUnmarshalStringOrList(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{
		"goals": "run a 5k",
		"interests": ["swimming", "chess"]
	}`), &p))

	assert.Equal(t, StringList{"run a 5k"}, p.Goals)
	assert.Equal(t, StringList{"swimming", "chess"}, p.Interests)
}

func TestProfileUnmarshalAgeNumberOrString(t *testing.T) {
	var fromNumber Profile
	require.NoError(t, json.Unmarshal([]byte(`{"age": 29}`), &fromNumber))
	assert.Equal(t, FlexString("29"), fromNumber.Age)

	var fromString Profile
	require.NoError(t, json.Unmarshal([]byte(`{"age": "29"}`), &fromString))
	assert.Equal(t, FlexString("29"), fromString.Age)
}

func TestProfileUnmarshalKeepsUnknownKeysInExtra(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Alex",
		"favoriteColor": "green",
		"signupSource": "campaign-7"
	}`), &p))

	assert.Equal(t, "Alex", p.Name)
	assert.Len(t, p.Extra, 2)
	assert.Contains(t, p.Extra, "favoriteColor")
	assert.Contains(t, p.Extra, "signupSource")
}

func TestProfileUnmarshalNoExtras(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Alex"}`), &p))
	assert.Nil(t, p.Extra)
}

func TestStringListJoin(t *testing.T) {
	assert.Equal(t, "a, b", StringList{"a", "b"}.Join())
	assert.Equal(t, "", StringList(nil).Join())
}

func TestStringListEmptyString(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"  "`), &l))
	assert.Nil(t, l)
}

func TestConditionMatching(t *testing.T) {
	p := Profile{HealthConditions: StringList{"mild Asthma", "low BMI"}}

	cond, ok := p.ConditionMatching("asthma")
	assert.True(t, ok)
	assert.Equal(t, "mild Asthma", cond)

	_, ok = p.ConditionMatching("diabetes")
	assert.False(t, ok)
}

func TestMentionsAny(t *testing.T) {
	needs := StringList{"dealing with Racial discrimination"}
	assert.True(t, MentionsAny(needs, "racial", "slur"))
	assert.False(t, MentionsAny(needs, "anxiety"))
	assert.False(t, MentionsAny(nil, "racial"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(map[string]Profile{"u1": {Name: "Maya"}})

	p, ok, err := store.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Maya", p.Name)

	_, ok, err = store.FindByUserID(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

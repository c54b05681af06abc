package textfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanupStripsRoleTags(t *testing.T) {
	got := Cleanup("<s>[INST] Hello there [/INST]</s>")
	assert.Equal(t, "Hello there", got)
}

func TestCleanupCollapsesExcessNewlines(t *testing.T) {
	got := Cleanup("First part here\n\n\n\nSecond part here")
	assert.Equal(t, "First part here\n\nSecond part here", got)
}

func TestCleanupSeparatesSentencesIntoParagraphs(t *testing.T) {
	got := Cleanup("Try this today.\nNext week add more weight.")
	assert.Equal(t, "Try this today.\n\nNext week add more weight.", got)
}

func TestCleanupSpacesBulletItems(t *testing.T) {
	got := Cleanup("Key points:\n- first item\n- second item")
	assert.Equal(t, "Key points:\n\n- first item\n\n- second item", got)
}

func TestCleanupSpacesNumberedItems(t *testing.T) {
	got := Cleanup("Steps:\n1. warm up\n2. stretch out")
	assert.Equal(t, "Steps:\n\n1. warm up\n\n2. stretch out", got)
}

func TestCleanupSpacesHeadings(t *testing.T) {
	got := Cleanup("intro line\n### Section One\nbody line")
	assert.Equal(t, "intro line\n\n### Section One\n\nbody line", got)
}

func TestCleanupReflowsUnstructuredText(t *testing.T) {
	input := "this is a long unstructured reply about daily habits. it never breaks into paragraphs on its own. it just keeps going and going."
	got := Cleanup(input)

	assert.Contains(t, got, "\n\n")
	assert.Contains(t, got, "habits.\n\nit never")
}

func TestCleanupShortTextNotReflowed(t *testing.T) {
	got := Cleanup("short note. nothing else.")
	assert.Equal(t, "short note. nothing else.", got)
}

func TestCleanupBoldSpacing(t *testing.T) {
	got := Cleanup("**Remember**hydration matters")
	assert.Equal(t, "**Remember** hydration matters", got)
}

func TestCleanupInsertsSectionRule(t *testing.T) {
	got := Cleanup("intro line\n### Workout Plan\nsquats and rows")
	assert.Contains(t, got, "---\n\n### Workout Plan")
}

func TestCleanupSectionRuleNotDuplicated(t *testing.T) {
	input := "intro line\n\n---\n\n### Nutrition Tips\n\neat well"
	got := Cleanup(input)
	assert.Equal(t, 1, strings.Count(got, "---"))
}

func TestCleanupIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain short text",
		"<s>[INST] tagged [/INST]</s> and more",
		"First sentence here.\nSecond sentence here.",
		"Key points:\n- one\n- two\n- three",
		"Steps:\n1. first\n2. second",
		"intro\n# Title\nbody text follows here",
		"intro\n### Diet Plan\neat greens",
		"**Bold**text and **more**words",
		"this is a very long lowercase ramble that has no breaks at all. it continues well past one hundred characters in total. so the fallback applies.",
		"Mixed:\n- bullet one. Then More text\n\n\n\n### Training Notes\nline",
	}

	for _, input := range inputs {
		once := Cleanup(input)
		twice := Cleanup(once)
		assert.Equal(t, once, twice, "cleanup not idempotent for input %q", input)
	}
}

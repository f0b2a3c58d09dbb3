package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstContained(t *testing.T) {
	terms := []string{"youtube", "google", "github"}

	got, ok := FirstContained("open github or google", terms)
	assert.True(t, ok)
	assert.Equal(t, "google", got, "slice order wins, not position in text")

	_, ok = FirstContained("nothing here", terms)
	assert.False(t, ok)
	assert.False(t, ContainsAny("", terms))
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		s, sub string
		want   int
	}{
		{"What's the Weather in Tokyo?", "weather in ", 11},
		{"WEATHER AT home", "weather at ", 0},
		{"no match", "weather", -1},
		{"abc", "", 0},
		{"ab", "abc", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IndexFold(tt.s, tt.sub), "%q in %q", tt.sub, tt.s)
	}
}

func TestHasWord(t *testing.T) {
	assert.True(t, HasWord("eth price today", "eth"))
	assert.True(t, HasWord("how is btc?", "btc"))
	assert.False(t, HasWord("whether or not", "eth"))
	assert.False(t, HasWord("canada", "ada"))
	assert.True(t, HasWord("is it ada, or sol", "ada"))
	assert.False(t, HasWord("", "sol"))
}

func TestHasWordPrefix(t *testing.T) {
	assert.True(t, HasWordPrefix("tesla stocks", "stock"))
	assert.True(t, HasWordPrefix("is it rainy", "rain"))
	assert.False(t, HasWordPrefix("take the train", "rain"))
	assert.False(t, HasWordPrefix("a photo", "hot"))
	assert.True(t, HasWordPrefix("what day is it", "what day"))
	assert.True(t, AnyWordPrefix("cpu load", []string{"memory", "cpu"}))
	assert.False(t, AnyWordPrefix("sometimes", []string{"time"}))
}

func TestCutAt(t *testing.T) {
	assert.Equal(t, "Tokyo", CutAt("Tokyo? please", "?.!"))
	assert.Equal(t, "New York", CutAt("New York. Thanks", "?.!"))
	assert.Equal(t, "Paris", CutAt("Paris", "?.!"))
}

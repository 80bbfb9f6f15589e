package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDomainProfilesUnknownFallsBackToGeneral(t *testing.T) {
	profiles := DefaultDomainProfiles()
	_, general := profiles.Resolve("general")

	for _, tag := range []string{"", "unknown", "HR", "sales", "general "} {
		d, prompt := profiles.Resolve(tag)
		assert.Equal(t, DomainGeneral, d, "tag %q", tag)
		assert.Equal(t, general, prompt, "tag %q", tag)
	}
}

func TestDomainProfilesKnownTags(t *testing.T) {
	profiles := DefaultDomainProfiles()
	for _, d := range []Domain{DomainHR, DomainMedical, DomainLegal, DomainFinance, DomainGeneral} {
		got, prompt := profiles.Resolve(string(d))
		assert.Equal(t, d, got)
		assert.NotEmpty(t, prompt)
	}
	_, hr := profiles.Resolve("hr")
	assert.Contains(t, hr, "HR assistant")
}

func TestNewDomainProfilesAlwaysHasGeneral(t *testing.T) {
	profiles := NewDomainProfiles(map[Domain]string{DomainHR: "hr prompt"})
	d, prompt := profiles.Resolve("legal")
	assert.Equal(t, DomainGeneral, d)
	assert.Equal(t, defaultPrompts[DomainGeneral], prompt)
}

func TestResolveFamily(t *testing.T) {
	tests := []struct {
		modelID string
		want    ProviderFamily
	}{
		{"anthropic.claude-3-sonnet-20240229-v1:0", FamilyAnthropic},
		{"anthropic.claude-v2", FamilyAnthropic},
		{"meta.llama3-70b-instruct-v1:0", FamilyMeta},
		{"meta.llama2-13b-chat-v1", FamilyMeta},
		{"ai21.j2-ultra-v1", FamilyAI21},
		{"ai21.jamba-instruct-v1:0", FamilyAI21},
		{"Anthropic.claude-3", FamilyUnknown},
		{"anthropic.titan", FamilyUnknown},
		{"unknown.provider-x", FamilyUnknown},
		{"", FamilyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveFamily(tt.modelID), tt.modelID)
	}
}

func TestModelProfilesFallbackIsPerFamily(t *testing.T) {
	profiles := DefaultModelProfiles()

	p, ok := profiles.Resolve(FamilyMeta, "meta.llama3-8b-instruct-v1:0")
	assert.True(t, ok)
	assert.Equal(t, FamilyMeta, p.Family)
	assert.Equal(t, 2048, p.MaxTokens)
	assert.Equal(t, 0.9, p.TopP)

	// An exact id from another family must not be used.
	p, ok = profiles.Resolve(FamilyAI21, "anthropic.claude-3-haiku-20240307-v1:0")
	assert.True(t, ok)
	assert.Equal(t, FamilyAI21, p.Family)

	_, ok = profiles.Resolve(FamilyUnknown, "unknown.provider-x")
	assert.False(t, ok)
}

func TestModelProfilesIgnoreMismatchedDefault(t *testing.T) {
	profiles := NewModelProfiles(
		map[string]ModelProfile{"meta.llama-x": {Family: FamilyMeta, MaxTokens: 1}},
		map[ProviderFamily]string{FamilyAnthropic: "meta.llama-x"},
	)
	_, ok := profiles.Resolve(FamilyAnthropic, "anthropic.claude-x")
	assert.False(t, ok)
}

func TestFormatTimestampIsFixedWidth(t *testing.T) {
	a := FormatTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 100000000, time.UTC))
	b := FormatTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 120000000, time.UTC))
	assert.Equal(t, "2024-01-02T03:04:05.100000Z", a)
	assert.Len(t, b, len(a))
	assert.Less(t, a, b)
}

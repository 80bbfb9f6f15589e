package domain

import "strings"

// ProviderFamily is the wire-schema family a model identifier belongs to.
type ProviderFamily int

const (
	FamilyUnknown ProviderFamily = iota
	FamilyAnthropic
	FamilyMeta
	FamilyAI21
)

// familyPrefixes is checked in order; the first match wins.
var familyPrefixes = []struct {
	prefix string
	family ProviderFamily
}{
	{"anthropic.claude", FamilyAnthropic},
	{"meta.llama", FamilyMeta},
	{"ai21", FamilyAI21},
}

// ResolveFamily maps a model identifier to its provider family by
// case-sensitive prefix match.
func ResolveFamily(modelID string) ProviderFamily {
	for _, p := range familyPrefixes {
		if strings.HasPrefix(modelID, p.prefix) {
			return p.family
		}
	}
	return FamilyUnknown
}

func (f ProviderFamily) String() string {
	switch f {
	case FamilyAnthropic:
		return "anthropic"
	case FamilyMeta:
		return "meta"
	case FamilyAI21:
		return "ai21"
	default:
		return "unknown"
	}
}

// DefaultModelID is used when a request does not name a model.
const DefaultModelID = "anthropic.claude-3-sonnet-20240229-v1:0"

// ModelProfile holds invocation parameters for one model.
// Adapters decide which wire field names carry these values.
type ModelProfile struct {
	Family      ProviderFamily
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// ModelProfiles maps model identifiers to invocation parameters, with one
// designated default per provider family.
type ModelProfiles struct {
	profiles map[string]ModelProfile
	defaults map[ProviderFamily]ModelProfile
}

// NewModelProfiles builds a profile table. defaults names, per family, the
// model id whose profile is used when an exact match is absent.
func NewModelProfiles(profiles map[string]ModelProfile, defaults map[ProviderFamily]string) *ModelProfiles {
	p := &ModelProfiles{
		profiles: make(map[string]ModelProfile, len(profiles)),
		defaults: make(map[ProviderFamily]ModelProfile, len(defaults)),
	}
	for id, profile := range profiles {
		p.profiles[id] = profile
	}
	for family, id := range defaults {
		if profile, ok := p.profiles[id]; ok && profile.Family == family {
			p.defaults[family] = profile
		}
	}
	return p
}

// DefaultModelProfiles returns the built-in Bedrock model table.
func DefaultModelProfiles() *ModelProfiles {
	return NewModelProfiles(
		map[string]ModelProfile{
			"anthropic.claude-3-sonnet-20240229-v1:0": {Family: FamilyAnthropic, MaxTokens: 4000, Temperature: 0.7, TopP: 1.0},
			"anthropic.claude-3-haiku-20240307-v1:0":  {Family: FamilyAnthropic, MaxTokens: 4000, Temperature: 0.7, TopP: 1.0},
			"meta.llama3-70b-instruct-v1:0":           {Family: FamilyMeta, MaxTokens: 2048, Temperature: 0.7, TopP: 0.9},
			"ai21.j2-ultra-v1":                        {Family: FamilyAI21, MaxTokens: 2048, Temperature: 0.7, TopP: 1.0},
		},
		map[ProviderFamily]string{
			FamilyAnthropic: "anthropic.claude-3-sonnet-20240229-v1:0",
			FamilyMeta:      "meta.llama3-70b-instruct-v1:0",
			FamilyAI21:      "ai21.j2-ultra-v1",
		},
	)
}

// Resolve returns the profile for modelID within family. A profile that
// exists but belongs to another family is ignored, so one provider's
// parameters never leak into another provider's request.
func (p *ModelProfiles) Resolve(family ProviderFamily, modelID string) (ModelProfile, bool) {
	if profile, ok := p.profiles[modelID]; ok && profile.Family == family {
		return profile, true
	}
	profile, ok := p.defaults[family]
	return profile, ok
}

package domain

// Domain selects the system prompt used for a conversation.
type Domain string

const (
	DomainHR      Domain = "hr"
	DomainMedical Domain = "medical"
	DomainLegal   Domain = "legal"
	DomainFinance Domain = "finance"
	DomainGeneral Domain = "general"
)

// DomainProfiles maps domain tags to system prompts.
// It is built once and never mutated, so concurrent reads are safe.
type DomainProfiles struct {
	prompts map[Domain]string
}

// NewDomainProfiles builds a profile table. A general prompt is required;
// it is the fallback for every unknown tag.
func NewDomainProfiles(prompts map[Domain]string) *DomainProfiles {
	copied := make(map[Domain]string, len(prompts))
	for k, v := range prompts {
		copied[k] = v
	}
	if _, ok := copied[DomainGeneral]; !ok {
		copied[DomainGeneral] = defaultPrompts[DomainGeneral]
	}
	return &DomainProfiles{prompts: copied}
}

// DefaultDomainProfiles returns the built-in persona table.
func DefaultDomainProfiles() *DomainProfiles {
	return NewDomainProfiles(defaultPrompts)
}

// Resolve returns the effective domain and its system prompt.
// Unknown or empty tags resolve to DomainGeneral.
func (p *DomainProfiles) Resolve(tag string) (Domain, string) {
	d := Domain(tag)
	if prompt, ok := p.prompts[d]; ok {
		return d, prompt
	}
	return DomainGeneral, p.prompts[DomainGeneral]
}

var defaultPrompts = map[Domain]string{
	DomainHR: "You are an HR assistant. Help with employee policies, benefits, " +
		"leave requests, and workplace guidelines. Be professional and empathetic.",
	DomainMedical: "You are a medical triage assistant. Provide general health " +
		"information and guidance. Always remind users to consult healthcare professionals " +
		"for serious concerns. Do not provide specific medical diagnoses.",
	DomainLegal: "You are a legal document assistant. Help explain legal concepts " +
		"and documents in plain language. Always remind users to consult qualified " +
		"attorneys for legal advice.",
	DomainFinance: "You are a financial analysis assistant. Help with financial " +
		"reports, budgeting, and basic financial concepts. Do not provide specific " +
		"investment advice.",
	DomainGeneral: "You are a helpful AI assistant. Provide accurate, helpful, " +
		"and professional responses to user queries.",
}

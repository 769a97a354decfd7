package rag

import "strings"

type Mode string

const (
	ModeOnboarding Mode = "onboarding"
	ModeKnowledge  Mode = "knowledge"
)

// ParseMode maps unknown or empty values to ModeKnowledge.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeOnboarding {
		return ModeOnboarding
	}
	return ModeKnowledge
}

// Context is the tone instruction embedded in the generation prompt.
func (m Mode) Context() string {
	if m == ModeOnboarding {
		return "The user is a new team member going through onboarding. Be welcoming, patient, and thorough in explanations."
	}
	return "The user is looking for quick information from team documentation. Be concise and direct."
}

func (m Mode) Welcome() string {
	if m == ModeOnboarding {
		return "Welcome to the team! I'm TeamMind AI, your onboarding companion.\n\n" +
			"I'm here to help you get up to speed quickly. I can answer questions about:\n\n" +
			"- Setting up your development environment\n" +
			"- Team processes and workflows\n" +
			"- Tools and technologies we use\n" +
			"- Who to contact for what\n" +
			"- Where to find documentation\n\n" +
			"What would you like to know first?"
	}
	return "Hello! I'm TeamMind AI, your team knowledge assistant.\n\n" +
		"I have access to our team's documentation, including:\n\n" +
		"- Technical documentation & architecture\n" +
		"- Deployment processes\n" +
		"- Coding standards\n" +
		"- FAQs and troubleshooting guides\n\n" +
		"Ask me anything about our team's processes, tools, or documentation!"
}

// SuggestedTopics are starter questions offered to new users.
var SuggestedTopics = []string{
	"How do I set up my environment?",
	"What's the deployment process?",
	"Who should I contact for help?",
	"What tools does the team use?",
}

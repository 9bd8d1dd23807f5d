package templates

// CategoryInfo describes a category for human-facing output.
type CategoryInfo struct {
	Description string
	Examples    []string
}

// CategoryDescriptions holds a short gloss and example phrases per category.
var CategoryDescriptions = map[string]CategoryInfo{
	"payment_issue": {
		Description: "Issues related to billing, invoicing, payment processing, or financial transactions",
		Examples:    []string{"can't pay invoice", "billing error", "charge on my card", "refund request"},
	},
	"technical_support": {
		Description: "Software bugs, crashes, errors, performance issues, or technical difficulties",
		Examples:    []string{"app crashes", "error message", "cannot login", "feature not working"},
	},
	"information_request": {
		Description: "Questions about features, pricing, documentation, or general information",
		Examples:    []string{"how does it work", "pricing question", "feature availability", "documentation"},
	},
	"greeting": {
		Description: "Casual messages, holiday wishes, informal communication, or social interaction",
		Examples:    []string{"happy holidays", "thank you", "great job", "just saying hi"},
	},
	"complaint": {
		Description: "Customer dissatisfaction, negative feedback, frustration, or service quality issues",
		Examples:    []string{"unhappy with service", "disappointed", "this is unacceptable", "poor quality"},
	},
	"spam": {
		Description: "Promotional content, irrelevant messages, or unsolicited communication",
		Examples:    []string{"buy now", "click here for discount", "you've won", "unrelated marketing"},
	},
}

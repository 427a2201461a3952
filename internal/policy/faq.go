package policy

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = [...]FAQEntry{
	{
		Question: "How to register?",
		Answer:   "Go to the 'Register' tab and fill out the form based on your role.",
	},
	{
		Question: "How to apply for internships?",
		Answer:   "Students can go to their dashboard and click on available internships.",
	},
	{
		Question: "How do MSMEs post internships?",
		Answer:   "MSME users can post internship details from their dashboard.",
	},
	{
		Question: "Where do I provide feedback?",
		Answer:   "Mentors can provide feedback via their dashboard section.",
	},
}

// FAQs returns the questions and answers in display order.
func FAQs() []FAQEntry {
	out := make([]FAQEntry, len(faqs))
	copy(out, faqs[:])
	return out
}

// Questions returns the question strings in display order.
func Questions() []string {
	out := make([]string, len(faqs))
	for i, f := range faqs {
		out[i] = f.Question
	}
	return out
}

// Answer looks up the answer to an exact question string.
func Answer(question string) (string, bool) {
	for _, f := range faqs {
		if f.Question == question {
			return f.Answer, true
		}
	}
	return "", false
}

package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"

	// ClarifyPrefix marks a message as a direct question for the LLM.
	ClarifyPrefix = "clarify:"

	ClarifySystemPrompt = `You are a concise, student-friendly guidance assistant for Indian students. ` +
		`Reply in WhatsApp-friendly bullet points when useful. ` +
		`Keep answers crisp and practical. If unsure, say so briefly.`

	ClarifyTemperature = 0.4
	ClarifyMaxTokens   = 400

	// MenuOptionLimit caps how many names a numbered menu lists at once.
	MenuOptionLimit = 30

	MsgMissingCredential = "Clarify is enabled, but the OpenAI API key is missing. " +
		"Set OPENAI_API_KEY in your environment and redeploy."
	MsgClarifyFailed = "Sorry, I could not get an answer right now. Please try again in a moment."

	MsgEmptyMessage = "Choose an option: Browse Careers, Browse Courses, or Clarify."
	MsgBadPayload   = "Send JSON like {\"user_id\": \"u1\", \"message\": \"careers\"}."

	MsgWebCareersHeader = "Careers — click a name to view details, or press Clarify to ask a question."
	MsgWebCoursesHeader = "Courses — click a name to view details, or press Clarify to ask a question."
	MsgWebFallback      = "Not sure yet. Use the buttons above, or type 'clarify: <your question>'."

	MsgMenuCareersHeader = "Careers (reply with a number):"
	MsgMenuCoursesHeader = "Courses (reply with a number):"
	MsgMenuFooter        = "Or ask: clarify: <your question>"
	MsgMenuHelp          = "Hi! Reply with 'career' to browse careers, 'course' to browse courses, " +
		"or 'clarify: <question>' to ask anything."
	MsgInvalidSelection = "That number is not in the list. Reply with one of the numbers shown above."
)

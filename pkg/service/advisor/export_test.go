package advisor

// Exposed for prompt construction tests
var (
	BuildAdvicePrompt = buildAdvicePrompt
	BuildChatPrompt   = buildChatPrompt
	SystemPrompt      = systemPrompt
)

const (
	TestAdviseSystemPrompt = adviseSystemPrompt
	TestChatSystemPrompt   = chatSystemPrompt
)

package llmprovider

const (
	LogPrefixGenerate = "pkg.llmprovider.Manager.GenerateContent"
	LogPrefixInit     = "pkg.llmprovider.InitializeProviders"
)

// Provider names understood by the factory.
const (
	ProviderOpenAI    = "openai"
	ProviderDeepSeek  = "deepseek"
	ProviderQwen      = "qwen"
	ProviderAlibaba   = "alibaba"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderClaude    = "claude"
)

// Base URLs of OpenAI-compatible vendors.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

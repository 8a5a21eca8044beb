package notify

// Embed colors
const (
	ColorSuccess = 0x2ecc71 // Green
	ColorFailure = 0xe74c3c // Red
)

// Embed text
const (
	TitleReloadSucceeded = "✅ Recipe catalog reloaded"
	TitleReloadFailed    = "❌ Recipe catalog reload failed"
	FieldItems           = "Items"
	FieldRecipes         = "Recipes"
	FieldDuration        = "Duration"
	FooterText           = "craft-market"
)

// Error messages
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
	ErrMsgCreateSession     = "failed to create discord session: %w"
	ErrMsgExecuteWebhook    = "failed to execute discord webhook: %w"
)

package prompt

const (
	// Placeholder marks where the user's text is substituted.
	Placeholder = "{input}"

	// DefaultDestination is the routing sentinel for "no specialised persona".
	DefaultDestination = "DEFAULT"

	// PassThroughTemplate forwards the input unchanged.
	PassThroughTemplate = Placeholder
)

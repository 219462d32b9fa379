package handlers

const (
	// Minimum viable blog length after sanitization, in characters.
	// Anything shorter is treated as a failed generation.
	minBlogChars = 100

	// Response error strings. These are part of the external contract;
	// clients match on them.
	errMissingTopic   = "Missing 'topic' in request body"
	errEmptyBlog      = "Blog generation failed or returned empty content."
	errInternalServer = "Internal server error."
)

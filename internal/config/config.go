package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; ideas are not persisted unless provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultRedisURL is empty; duplicate suppression falls back to process memory.
	DefaultRedisURL = ""

	// DefaultEndpointURL is the base URL the submit command talks to.
	DefaultEndpointURL = "http://localhost:8080"

	// SubmitIdeaPath is the path of the idea submission endpoint.
	SubmitIdeaPath = "/api/submit-idea"

	// SurfaceHeader names the form surface a submission came from.
	SurfaceHeader = "X-Form-Surface"

	// DefaultGreenAPIURL is the Green API host used for WhatsApp delivery.
	DefaultGreenAPIURL = "https://api.green-api.com"

	// DefaultTimeZone is used for timestamps in notifications.
	DefaultTimeZone = "Asia/Almaty"

	// DefaultRateLimit is the default requests per minute per IP address.
	DefaultRateLimit = 20

	// DefaultDedupeTTL is how long an identical idea is rejected as a duplicate.
	DefaultDedupeTTL = 10 * time.Minute

	// DefaultNotifyTimeout bounds a single notifier call.
	DefaultNotifyTimeout = 10 * time.Second

	// DefaultSubmitTimeout bounds a client-side submission before it counts as a transport failure.
	DefaultSubmitTimeout = 20 * time.Second

	// DefaultResetDelay is how long a successful submission stays visible before the form resets.
	DefaultResetDelay = 3 * time.Second

	// DefaultPageLimit is the default number of ideas per page in listings.
	DefaultPageLimit = 20
)

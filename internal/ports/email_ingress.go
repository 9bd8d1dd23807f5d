package ports

// EmailIngress defines the interface for an inbound transport that feeds
// emails into the classification pipeline
type EmailIngress interface {
	// Start starts serving inbound requests
	Start() error

	// Stop stops serving and releases resources
	Stop() error
}

package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Dreams() DreamRepository

	// Close releases the underlying storage resources
	Close() error
}

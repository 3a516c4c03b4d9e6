package interfaces

// Repository aggregates the data repositories of the application
type Repository interface {
	Guide() GuideRepository

	// Close releases any resources held by the repository
	Close() error
}

package interfaces

// AssetStore abstracts the bundled read-only asset capability
type AssetStore interface {
	// LoadString reads the asset at the given path as a string
	LoadString(path string) (string, error)
}

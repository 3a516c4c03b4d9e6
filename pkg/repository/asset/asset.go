package asset

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultGuidePath is the path of the bundled emergency dataset within
// both the embedded bundle and directory-backed stores.
const DefaultGuidePath = "data/emergencies.json"

//go:embed data/emergencies.json
var bundledFiles embed.FS

// Bundle is an AssetStore backed by files compiled into the binary
type Bundle struct{}

var _ interfaces.AssetStore = &Bundle{}

// NewBundle returns the embedded asset store
func NewBundle() *Bundle {
	return &Bundle{}
}

// LoadString reads an embedded asset as a string
func (b *Bundle) LoadString(path string) (string, error) {
	data, err := bundledFiles.ReadFile(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read bundled asset", goerr.V("path", path))
	}
	return string(data), nil
}

// Dir is an AssetStore backed by a directory on disk, used when the
// dataset is overridden with an external file tree.
type Dir struct {
	root string
}

var _ interfaces.AssetStore = &Dir{}

// NewDir creates a directory-backed asset store rooted at root
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// LoadString reads a file under the store's root as a string
func (d *Dir) LoadString(path string) (string, error) {
	full := filepath.Join(d.root, filepath.Clean(path))
	data, err := os.ReadFile(full) // #nosec G304 - root is provided by CLI configuration
	if err != nil {
		return "", goerr.Wrap(err, "failed to read asset file", goerr.V("path", full))
	}
	return string(data), nil
}

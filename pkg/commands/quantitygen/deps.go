package quantitygen

import (
	"github.com/smartcontractkit/quantities/internal/codegen"
	"github.com/smartcontractkit/quantities/internal/codegen/config"
	"github.com/smartcontractkit/quantities/internal/codegen/render"
	"github.com/smartcontractkit/quantities/internal/codegen/table"
)

// ConfigLoaderFunc loads the generator config from the file at path.
type ConfigLoaderFunc func(path string) (*config.Config, error)

// Deps holds the injectable dependencies for the quantitygen commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the generator config.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// TableLoader loads and validates the quantity tables.
	// Default: table.Load
	TableLoader codegen.TableLoaderFunc

	// FileWriter writes the generated files.
	// Default: render.Write
	FileWriter codegen.WriterFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.TableLoader == nil {
		d.TableLoader = table.Load
	}
	if d.FileWriter == nil {
		d.FileWriter = render.Write
	}
}

package table

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// SchemaVersion is the version written when a table is marshalled.
	SchemaVersion = "1.0.0"
	// DefaultSchemaConstraint is the range of schema versions accepted by Load.
	DefaultSchemaConstraint = "^1.0.0"
)

// ErrUnsupportedSchema is returned when a table file declares a schema version outside of the
// accepted range.
var ErrUnsupportedSchema = errors.New("unsupported schema version")

// Manifest is the file representation of a quantity table.
type Manifest struct {
	SchemaVersion string     `yaml:"schema_version" toml:"schema_version"`
	Quantities    []Quantity `yaml:"quantities" toml:"quantities"`
	Vectors       []Vector   `yaml:"vectors,omitempty" toml:"vectors,omitempty"`
}

// Table is a collection of quantities and vectors, loaded from one or more manifest files.
type Table struct {
	// quantities and vectors are keyed by name so that later files can override entries of
	// earlier ones.
	quantities map[string]Quantity
	vectors    map[string]Vector
}

// NewTable creates a table from quantities and vectors. Entries with duplicate names are
// overwritten by the last one.
func NewTable(quantities []Quantity, vectors []Vector) *Table {
	t := &Table{
		quantities: make(map[string]Quantity, len(quantities)),
		vectors:    make(map[string]Vector, len(vectors)),
	}

	for _, q := range quantities {
		t.quantities[q.Name] = q
	}

	for _, v := range vectors {
		t.vectors[v.Name] = v
	}

	return t
}

// newTableFromManifest creates a table from a single manifest, rejecting duplicate names.
func newTableFromManifest(m Manifest) (*Table, error) {
	seen := make(map[string]bool, len(m.Quantities)+len(m.Vectors))
	for _, q := range m.Quantities {
		if seen[q.Name] {
			return nil, fmt.Errorf("quantity %s: declared more than once", q.Name)
		}
		seen[q.Name] = true
	}

	for _, v := range m.Vectors {
		if seen[v.Name] {
			return nil, fmt.Errorf("vector %s: declared more than once", v.Name)
		}
		seen[v.Name] = true
	}

	return NewTable(m.Quantities, m.Vectors), nil
}

// Quantities returns the quantities of the table, sorted by name.
func (t *Table) Quantities() []Quantity {
	return slices.SortedFunc(maps.Values(t.quantities), func(a, b Quantity) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// Vectors returns the vectors of the table, sorted by name.
func (t *Table) Vectors() []Vector {
	return slices.SortedFunc(maps.Values(t.vectors), func(a, b Vector) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// Quantity retrieves a quantity by name. If the quantity is not found, an error is returned.
func (t *Table) Quantity(name string) (Quantity, error) {
	q, ok := t.quantities[name]
	if !ok {
		return Quantity{}, fmt.Errorf("quantity %s not found in table", name)
	}

	return q, nil
}

// Vector retrieves a vector by name. If the vector is not found, an error is returned.
func (t *Table) Vector(name string) (Vector, error) {
	v, ok := t.vectors[name]
	if !ok {
		return Vector{}, fmt.Errorf("vector %s not found in table", name)
	}

	return v, nil
}

// UnitOwner returns the quantity declaring the units of q: q itself, or the quantity named
// by its unit_of.
func (t *Table) UnitOwner(q Quantity) (Quantity, error) {
	if q.OwnsUnits() {
		return q, nil
	}

	owner, err := t.Quantity(q.UnitOf)
	if err != nil {
		return Quantity{}, fmt.Errorf("unit_of: %w", err)
	}

	if !owner.OwnsUnits() {
		return Quantity{}, fmt.Errorf("unit_of: %s does not declare its own units", owner.Name)
	}

	return owner, nil
}

// Symbol returns the symbol rendered by String for q: its own symbol, or that of the SI unit
// it is measured in.
func (t *Table) Symbol(q Quantity) (string, error) {
	if q.Symbol != "" {
		return q.Symbol, nil
	}

	owner, err := t.UnitOwner(q)
	if err != nil {
		return "", err
	}

	si, ok := owner.SIUnit()
	if !ok {
		return "", fmt.Errorf("quantity %s has no SI unit", owner.Name)
	}

	return si.Symbol, nil
}

// Len returns the number of quantities and vectors in the table.
func (t *Table) Len() int {
	return len(t.quantities) + len(t.vectors)
}

// Validate ensures that every entry is valid on its own, that every reference resolves and
// that no two entries generate the same identifier.
func (t *Table) Validate() error {
	for _, q := range t.Quantities() {
		if err := t.validateQuantity(q); err != nil {
			return fmt.Errorf("quantity %s: %w", q.Name, err)
		}
	}

	for _, v := range t.Vectors() {
		if err := validateIdentifier(v.Name); err != nil {
			return fmt.Errorf("vector %s: %w", v.Name, err)
		}

		if _, err := t.Quantity(v.Scalar); err != nil {
			return fmt.Errorf("vector %s: scalar: %w", v.Name, err)
		}
	}

	return t.validateIdentifiers()
}

func (t *Table) validateQuantity(q Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}

	if _, err := t.UnitOwner(q); err != nil {
		return err
	}

	for _, ref := range q.References() {
		if _, err := t.Quantity(ref); err != nil {
			return err
		}
	}

	if q.Vector != "" {
		v, err := t.Vector(q.Vector)
		if err != nil {
			return err
		}

		if v.Scalar != q.Name {
			return fmt.Errorf("vector %s is declared for %s", v.Name, v.Scalar)
		}
	}

	if slices.Contains(q.Associated, q.Name) {
		return errors.New("a quantity cannot be associated with itself")
	}

	return nil
}

func (t *Table) validateIdentifiers() error {
	declaredBy := make(map[string]string)
	declare := func(origin string, ids []string) error {
		for _, id := range ids {
			if other, ok := declaredBy[id]; ok {
				return fmt.Errorf("identifier %s is generated for both %s and %s", id, other, origin)
			}
			declaredBy[id] = origin
		}

		return nil
	}

	for _, q := range t.Quantities() {
		owner, err := t.UnitOwner(q)
		if err != nil {
			return fmt.Errorf("quantity %s: %w", q.Name, err)
		}

		if err := declare("quantity "+q.Name, identifiers(q, owner)); err != nil {
			return err
		}
	}

	for _, v := range t.Vectors() {
		if err := declare("vector "+v.Name, vectorIdentifiers(v)); err != nil {
			return err
		}
	}

	return nil
}

// Merge merges another table into the current table. It overwrites any entries with the same
// name.
func (t *Table) Merge(other *Table) {
	maps.Copy(t.quantities, other.quantities)
	maps.Copy(t.vectors, other.vectors)
}

// Manifest returns the file representation of the table.
func (t *Table) Manifest() Manifest {
	return Manifest{
		SchemaVersion: SchemaVersion,
		Quantities:    t.Quantities(),
		Vectors:       t.Vectors(),
	}
}

// MarshalYAML implements the yaml.Marshaler interface for the Table struct.
func (t *Table) MarshalYAML() (any, error) {
	return t.Manifest(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for the Table struct.
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	m := Manifest{}
	if err := value.Decode(&m); err != nil {
		return err
	}

	decoded, err := newTableFromManifest(m)
	if err != nil {
		return err
	}

	*t = *decoded

	return nil
}

// QuantityFilter defines a function type that filters quantities based on certain criteria.
type QuantityFilter func(Quantity) bool

// FilterWith returns a new Table containing only the quantities that pass all filters, and
// the vectors of those quantities.
func (t *Table) FilterWith(filters ...QuantityFilter) *Table {
	quantities := t.Quantities()
	for _, filter := range filters {
		quantities = slices.DeleteFunc(quantities, func(q Quantity) bool {
			return !filter(q)
		})
	}

	kept := make(map[string]bool, len(quantities))
	for _, q := range quantities {
		kept[q.Name] = true
	}

	vectors := slices.DeleteFunc(t.Vectors(), func(v Vector) bool {
		return !kept[v.Scalar]
	})

	return NewTable(quantities, vectors)
}

// NamesFilter returns a filter matching quantities with one of the given names.
func NamesFilter(names ...string) QuantityFilter {
	return func(q Quantity) bool {
		return slices.Contains(names, q.Name)
	}
}

// AdditiveFilter returns a filter matching quantities that expose Add and Subtract.
func AdditiveFilter() QuantityFilter {
	return func(q Quantity) bool {
		return q.Additive
	}
}

// UnitOwnerFilter returns a filter matching quantities that declare their own units.
func UnitOwnerFilter() QuantityFilter {
	return func(q Quantity) bool {
		return q.OwnsUnits()
	}
}

// Load loads quantity tables from the specified file paths and merges them into a single
// Table. Files ending in .toml are decoded as TOML, every other file as YAML. Entries of later
// files override entries of earlier files with the same name.
//
// It accepts load options to customize the loading behavior.
func Load(filePaths []string, opts ...LoadOption) (*Table, error) {
	loadCfg := &loadConfig{
		schemaConstraint: DefaultSchemaConstraint,
	}
	for _, opt := range opts {
		opt(loadCfg)
	}

	constraint, err := semver.NewConstraint(loadCfg.schemaConstraint)
	if err != nil {
		return nil, fmt.Errorf("invalid schema constraint %q: %w", loadCfg.schemaConstraint, err)
	}

	t := NewTable(nil, nil)
	for _, fp := range filePaths {
		fileTable, err := loadFile(fp, constraint)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fp, err)
		}

		t.Merge(fileTable)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate quantity table: %w", err)
	}

	if len(loadCfg.filters) > 0 {
		t = t.FilterWith(loadCfg.filters...)
	}

	return t, nil
}

func loadFile(fp string, constraint *semver.Constraints) (*Table, error) {
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("failed to read quantity table: %w", err)
	}

	m, err := decodeManifest(filepath.Ext(fp), data)
	if err != nil {
		return nil, err
	}

	if err := CheckSchemaVersion(m.SchemaVersion, constraint); err != nil {
		return nil, err
	}

	return newTableFromManifest(m)
}

func decodeManifest(ext string, data []byte) (Manifest, error) {
	var m Manifest
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return Manifest{}, fmt.Errorf("failed to unmarshal quantity table TOML: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return Manifest{}, fmt.Errorf("failed to unmarshal quantity table YAML: %w", err)
		}
	}

	return m, nil
}

// CheckSchemaVersion checks that version satisfies constraint.
func CheckSchemaVersion(version string, constraint *semver.Constraints) error {
	if version == "" {
		return fmt.Errorf("schema_version is required: %w", ErrUnsupportedSchema)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("schema_version %q: %w: %w", version, ErrUnsupportedSchema, err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("schema_version %s does not satisfy %s: %w", v, constraint, ErrUnsupportedSchema)
	}

	return nil
}

// LoadOption defines a function which modifies the load configuration.
type LoadOption func(*loadConfig)

// loadConfig holds the configuration for loading tables.
type loadConfig struct {
	schemaConstraint string
	filters          []QuantityFilter
}

// WithSchemaConstraint overrides the range of accepted schema versions.
func WithSchemaConstraint(constraint string) LoadOption {
	return func(opts *loadConfig) {
		opts.schemaConstraint = constraint
	}
}

// WithFilters narrows the loaded table to the quantities passing every filter. The table is
// validated before filtering.
func WithFilters(filters ...QuantityFilter) LoadOption {
	return func(opts *loadConfig) {
		opts.filters = append(opts.filters, filters...)
	}
}

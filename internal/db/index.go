package db

import (
	"errors"
	"strconv"
	"strings"
)

// IndexFieldType is the FT schema kind of an indexed attribute.
type IndexFieldType int

const (
	// IndexFieldNumeric indexes a number for range queries.
	IndexFieldNumeric IndexFieldType = iota
	// IndexFieldTag indexes exact-match values; arrays index every element.
	IndexFieldTag
)

// IndexField is one SCHEMA entry: a JSON path exposed under an alias.
type IndexField struct {
	Name  string // JSON path, e.g. $.rating
	Alias string // attribute name used in queries
	Type  IndexFieldType

	Sortable bool

	// TAG options
	TagSeparator     string
	TagCaseSensitive bool
}

// IndexDefinition describes an FT index over JSON documents.
type IndexDefinition struct {
	Name     string
	Prefixes []string
	Fields   []IndexField
}

// Validate rejects definitions FT.CREATE would refuse or that queries could not address.
func (idx *IndexDefinition) Validate() error {
	if idx.Name == "" {
		return errors.New("index name is required")
	}
	if !IsValidIdentifier(idx.Name) {
		return errors.New("index name contains invalid characters")
	}
	if len(idx.Fields) == 0 {
		return errors.New("at least one field is required")
	}

	seen := make(map[string]bool)
	for i := range idx.Fields {
		f := &idx.Fields[i]
		if f.Name == "" {
			return errors.New("field name is required at index " + strconv.Itoa(i))
		}
		if !strings.HasPrefix(f.Name, "$") {
			return errors.New("field name must be a json path: " + f.Name)
		}
		if f.Alias == "" {
			return errors.New("json path field requires an alias: " + f.Name)
		}
		if seen[f.Alias] {
			return errors.New("duplicate field name: " + f.Alias)
		}
		seen[f.Alias] = true
	}

	return nil
}

// IsValidIdentifier reports whether s is non-empty and uses only [a-zA-Z0-9_:-].
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isSpecial := r == '_' || r == ':' || r == '-'
		if !isAlpha && !isDigit && !isSpecial {
			return false
		}
	}
	return true
}

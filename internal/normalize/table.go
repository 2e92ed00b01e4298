// Package normalize maps arbitrary raw status labels (language, case,
// accent and abbreviation variants) onto the closed set of canonical status
// categories. The mapping is data-driven: an embedded default synonym table
// that can be replaced by an external JSON file, validated against a schema
// before use.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/qa-dash/metrics-engine/constants"
	"github.com/qa-dash/metrics-engine/internal/common"

	_ "embed"
)

//go:embed default_synonyms.json
var defaultSynonymsJSON []byte

//go:embed synonyms_schema.json
var synonymsSchemaJSON []byte

// Table is an immutable synonym table. Normalize is a pure function over it,
// so a single Table is safe to share across concurrent pipelines.
type Table struct {
	// entries are (folded synonym, category) pairs ordered longest-first so
	// "nao executado" wins over any shorter synonym it might contain.
	entries []entry
}

type entry struct {
	synonym  string
	category constants.StatusCategory
}

type tableFile struct {
	Synonyms map[string][]string `json:"synonyms"`
}

// NewDefaultTable builds the Table from the embedded synonym set.
func NewDefaultTable() *Table {
	t, err := parseTable(defaultSynonymsJSON)
	if err != nil {
		// The embedded table is validated by tests; reaching this is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("normalize: embedded synonym table invalid: %v", err))
	}
	return t
}

// LoadTable reads and validates an external synonym table. An empty path
// falls back to the embedded default.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return NewDefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synonym table: %w", err)
	}
	if err := validateTableJSON(data); err != nil {
		return nil, common.NewAppError("SYNONYMS_INVALID", path, err)
	}
	return parseTable(data)
}

func validateTableJSON(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("synonyms_schema.json", bytes.NewReader(synonymsSchemaJSON)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("synonyms_schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal synonym table: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("synonym table does not match schema: %w", err)
	}
	return nil
}

func parseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal synonym table: %w", err)
	}
	t := &Table{}
	for cat, synonyms := range file.Synonyms {
		category := constants.StatusCategory(cat)
		if !category.Valid() || category == constants.StatusUnmapped {
			return nil, fmt.Errorf("unknown status category %q in synonym table", cat)
		}
		for _, s := range synonyms {
			folded := Fold(s)
			if folded == "" {
				return nil, fmt.Errorf("empty synonym for category %q", cat)
			}
			t.entries = append(t.entries, entry{synonym: folded, category: category})
		}
	}
	// Longest synonym first; ties broken lexically for determinism.
	sort.SliceStable(t.entries, func(i, j int) bool {
		a, b := t.entries[i].synonym, t.entries[j].synonym
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return t, nil
}

// Normalize maps a raw status label to its canonical category. A label
// containing a known synonym as a whole word maps to that synonym's category
// even with surrounding punctuation or extra words. No match is a normal
// outcome and yields StatusUnmapped, never an error.
func (t *Table) Normalize(raw string) constants.StatusCategory {
	folded := Fold(raw)
	if folded == "" {
		return constants.StatusUnmapped
	}
	for _, e := range t.entries {
		if containsWord(folded, e.synonym) {
			return e.category
		}
	}
	return constants.StatusUnmapped
}

// Matches reports whether the label normalizes to a mapped category. The
// extractors use it as their shared status vocabulary.
func (t *Table) Matches(raw string) bool {
	return t.Normalize(raw) != constants.StatusUnmapped
}

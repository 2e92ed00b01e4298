package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-dash/metrics-engine/constants"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "nao executado", Fold("Não Executado"))
	assert.Equal(t, "bloqueado", Fold("  BLOQUEADO "))
	assert.Equal(t, "passed", Fold("Passed"))
	assert.Equal(t, "", Fold("   "))
}

func TestNormalizeSynonyms(t *testing.T) {
	table := NewDefaultTable()

	cases := []struct {
		raw  string
		want constants.StatusCategory
	}{
		{"Passou", constants.StatusPassed},
		{"passed", constants.StatusPassed},
		{"OK", constants.StatusPassed},
		{"Aprovado", constants.StatusPassed},
		{"Falhou", constants.StatusFailed},
		{"FALHADO", constants.StatusFailed},
		{"Reprovado", constants.StatusFailed},
		{"Bloqueado", constants.StatusBlocked},
		{"blocked", constants.StatusBlocked},
		{"Não Executado", constants.StatusNotExecuted},
		{"nao executado", constants.StatusNotExecuted},
		{"not executed", constants.StatusNotExecuted},
		{"Pendente", constants.StatusNotExecuted},
		{"N/A", constants.StatusNotExecuted},
		{"Em Revisão", constants.StatusUnmapped},
		{"", constants.StatusUnmapped},
		{"garbage", constants.StatusUnmapped},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, table.Normalize(tc.raw), "raw=%q", tc.raw)
	}
}

func TestNormalizeWholeWordMatching(t *testing.T) {
	table := NewDefaultTable()

	// Surrounding punctuation and extra words still match.
	assert.Equal(t, constants.StatusPassed, table.Normalize("Resultado: passou."))
	assert.Equal(t, constants.StatusFailed, table.Normalize("** FALHOU **"))
	assert.Equal(t, constants.StatusPassed, table.Normalize("Test case passed successfully"))

	// Substrings inside larger words do not.
	assert.Equal(t, constants.StatusUnmapped, table.Normalize("passable"))
	assert.Equal(t, constants.StatusUnmapped, table.Normalize("okay-ish"))
}

func TestNormalizeLongestSynonymWins(t *testing.T) {
	table := NewDefaultTable()

	// "não executado" must not be claimed by a shorter synonym of another
	// category regardless of table iteration order.
	assert.Equal(t, constants.StatusNotExecuted, table.Normalize("Caso não executado"))
}

func TestLoadTableExternal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synonyms.json")
	data := `{"synonyms": {"PASSED": ["verde"], "FAILED": ["vermelho"]}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPassed, table.Normalize("Verde"))
	assert.Equal(t, constants.StatusFailed, table.Normalize("vermelho"))
	// External tables replace, not extend, the default set.
	assert.Equal(t, constants.StatusUnmapped, table.Normalize("passou"))
}

func TestLoadTableRejectsInvalidSchema(t *testing.T) {
	dir := t.TempDir()

	for name, data := range map[string]string{
		"unknown category": `{"synonyms": {"BOGUS": ["x"]}}`,
		"empty synonym":    `{"synonyms": {"PASSED": [""]}}`,
		"no synonyms key":  `{"labels": {}}`,
		"not json":         `not json at all`,
	} {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		_, err := LoadTable(path)
		assert.Error(t, err, name)
	}
}

func TestLoadTableEmptyPathUsesDefault(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPassed, table.Normalize("passou"))
}

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/slovar-dev/slovar/internal/errors"
)

// run executes the CLI against the embedded seed with env overrides cleared.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, k := range []string{"ENV", "LOG_LEVEL", "LOG_FORMAT", "SLOVAR_DATA", "SERVER_PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ORIGINS", "SERVER_TRUST_PROXY"} {
		t.Setenv(k, "")
	}
	base := []string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "--log-format", "json"}

	var out, errOut bytes.Buffer
	err = Run(append(base, args...), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestList_Default(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Найдено терминов: 6\n")
	assert.NotContains(t, out, "Результаты поиска для")
	assert.NotContains(t, out, "Жанр:")
	for _, name := range []string{"Метафора", "Сонет", "Эпифора", "Роман", "Аллегория", "Трагедия"} {
		assert.Contains(t, out, name)
	}
	assert.Less(t, bytes.Index([]byte(out), []byte("[1] Метафора")), bytes.Index([]byte(out), []byte("[2] Сонет")))
}

func TestList_Filters(t *testing.T) {
	out, _, err := run(t, "list", "-g", "tropy")
	require.NoError(t, err)
	assert.Contains(t, out, "Найдено терминов: 2\n")
	assert.Contains(t, out, "Жанр: Тропы · Буква: Все")
	assert.Contains(t, out, "[1] Метафора · Тропы")
	assert.Contains(t, out, "[5] Аллегория · Тропы")
	assert.NotContains(t, out, "Сонет")

	out, _, err = run(t, "list", "-q", "СОНЕТ")
	require.NoError(t, err)
	assert.Contains(t, out, "Найдено терминов: 1\n")
	assert.Contains(t, out, `Результаты поиска для: "СОНЕТ"`)

	out, _, err = run(t, "list", "-l", "р")
	require.NoError(t, err)
	assert.Contains(t, out, "Найдено терминов: 1\n")
	assert.Contains(t, out, "[4] Роман")
}

func TestList_EmptyResult(t *testing.T) {
	out, _, err := run(t, "list", "-q", "xyz")
	require.NoError(t, err)
	assert.Contains(t, out, "Найдено терминов: 0\n")
	assert.Contains(t, out, emptyResult)
}

func TestList_InvalidGenre(t *testing.T) {
	_, _, err := run(t, "list", "-g", "Поэма")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestShow(t *testing.T) {
	out, _, err := run(t, "show", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Сонет\nЛирика · Стихосложение\n")
	assert.Contains(t, out, "Определение\n  Твёрдая стихотворная форма")
	assert.Contains(t, out, "Этимология\n  От ит. sonetto")
	assert.Contains(t, out, "Примеры\n  - Сонеты Шекспира\n  - «Поэту» М.Ю. Лермонтова\n")
}

func TestShow_Errors(t *testing.T) {
	_, _, err := run(t, "show", "99")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, _, err = run(t, "show", "abc")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, _, err = run(t, "show")
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	out, _, err := run(t, "index")
	require.NoError(t, err)

	assert.Contains(t, out, "Алфавитный указатель\n")
	var last int
	for _, section := range []string{"\nА\n", "\nМ\n", "\nР\n", "\nС\n", "\nТ\n", "\nЭ\n"} {
		pos := bytes.Index([]byte(out), []byte(section))
		require.GreaterOrEqual(t, pos, 0, section)
		assert.Greater(t, pos, last, section)
		last = pos
	}
	assert.NotContains(t, out, "\nБ\n")
}

func TestSearch(t *testing.T) {
	out, _, err := run(t, "search", "метафора")
	require.NoError(t, err)
	assert.Contains(t, out, `Результаты поиска для: "метафора"`)
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "Метафора")
	assert.Contains(t, out, "По жанрам:")
}

func TestSearch_NoHits(t *testing.T) {
	out, _, err := run(t, "search", "qwertyuiop")
	require.NoError(t, err)
	assert.Contains(t, out, "Найдено терминов: 0\n")
	assert.Contains(t, out, emptyResult)
}

func TestDatasetFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": 7, "term": "Гипербола", "definition": "Художественное преувеличение.", "genre": "Тропы", "examples": []}
	]`), 0o600))

	out, _, err := run(t, "--data", path, "index")
	require.NoError(t, err)
	assert.Contains(t, out, "\nГ\n  [7] Гипербола\n")
}

func TestLogsGoToStderr(t *testing.T) {
	out, errOut, err := run(t, "--log-level", "debug", "list")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"Catalog loaded"`)
	assert.NotContains(t, out, "Catalog loaded")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "--env", "qa", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

package render

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rdeusser/fuzzy/fuzzyset"
	"github.com/rdeusser/fuzzy/relation"
	"github.com/rdeusser/fuzzy/set"
)

var update = flag.Bool("update", false, "update golden files in testdata")

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fuzzySet(symbols string, degrees ...float64) *fuzzyset.Set[rune] {
	s := fuzzyset.New[rune]()
	for i, r := range symbols {
		s.Add(r, degrees[i])
	}
	return s
}

func golden(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if *update {
		require.NoError(t, os.MkdirAll("testdata", 0o755))
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(want), got)
}

func TestRelation(t *testing.T) {
	arb := relation.New(fuzzySet("abc", 0.2, 0.7, 0.4), fuzzySet("de", 0.5, 0.6))
	crd := relation.New(fuzzySet("ace", 0.6, 0.1, 0.1), fuzzySet("def", 0.9, 0.2, 0.2))

	testCases := []struct {
		name string
		r    *relation.Relation[rune]
		opts []Option
	}{
		{"arb", arb, nil},
		{"complement", relation.Complement(arb), nil},
		{"union", relation.Union(arb, crd), nil},
		{"precision", arb, []Option{WithPrecision(3)}},
		{"empty", relation.Intersection(arb, relation.New(fuzzySet("x", 1), fuzzySet("y", 1))), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]Option{WithColor(false)}, tc.opts...)
			golden(t, tc.name, Sprint(tc.r, opts...))
		})
	}
}

func TestRelationShape(t *testing.T) {
	r := relation.New(fuzzySet("abc", 0.2, 0.7, 0.4), fuzzySet("de", 0.5, 0.6))

	lines := strings.Split(strings.TrimSuffix(Sprint(r, WithColor(false)), "\n"), "\n")

	// Border, header, one line per domain symbol, border.
	require.Len(t, lines, r.Rows()+3)
	for _, line := range lines {
		assert.Len(t, line, (r.Cols()+1)*cellWidth+4, "%q", line)
	}
	assert.Equal(t, lines[0], lines[len(lines)-1])
}

func TestRelationColor(t *testing.T) {
	r := relation.New(fuzzySet("a", 0.5), fuzzySet("b", 0.5))

	colored := Sprint(r, WithColor(true))
	plain := Sprint(r, WithColor(false))

	assert.Contains(t, colored, "\x1b[36;1m")
	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, plain, "0.50")
}

func TestRelationStringKeys(t *testing.T) {
	r, err := relation.FromMatrix(
		set.NewSet("hot", "cold"),
		set.NewSet("fan"),
		[][]float64{{0.9}, {0.1}},
	)
	require.NoError(t, err)

	out := Sprint(r, WithColor(false), WithPrecision(1))

	assert.Contains(t, out, "| hot          0.9 |")
	assert.Contains(t, out, "| cold         0.1 |")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRelationWriteError(t *testing.T) {
	r := relation.New(fuzzySet("a", 0.5), fuzzySet("b", 0.5))

	assert.EqualError(t, Relation(failingWriter{}, r), "closed")
}

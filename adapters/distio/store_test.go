package distio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statplug/adapters/distributions"
	"statplug/domain/core"
	"statplug/domain/dist"
)

func TestYAMLStore_RoundTrip(t *testing.T) {
	catalog := distributions.NewCatalog()
	store := NewYAMLStore(catalog)

	cases := []dist.Handle{
		{Kind: distributions.KindNormal, Params: map[string]float64{"mu": 1.5, "sigma": 2}},
		{Kind: distributions.KindUniform, Params: map[string]float64{"a": -1, "b": 3}},
		{Kind: distributions.KindGamma, Params: map[string]float64{"shape": 2, "scale": 0.5}},
		{Kind: distributions.KindBinomial, Params: map[string]float64{"n": 12, "p": 0.25}},
		{Kind: distributions.KindGeometric, Params: map[string]float64{"p": 0.125}},
	}
	for _, h := range cases {
		var buf bytes.Buffer
		require.NoError(t, store.Save(h, &buf), h.Kind)

		loaded, err := store.Load(&buf)
		require.NoError(t, err, h.Kind)
		assert.True(t, h.Equal(loaded), "%s: loaded %v, saved %v", h.Kind, loaded.Params, h.Params)
	}
}

func TestYAMLStore_RecordShape(t *testing.T) {
	store := NewYAMLStore(distributions.NewCatalog())
	var buf bytes.Buffer

	h := dist.Handle{Kind: distributions.KindNormal, Params: map[string]float64{"mu": 0, "sigma": 1}}
	require.NoError(t, store.Save(h, &buf))

	out := buf.String()
	assert.Contains(t, out, "distribution: normal")
	assert.Contains(t, out, "parameters:")
	assert.Contains(t, out, "sigma: 1")
}

func TestYAMLStore_LoadFillsDefaults(t *testing.T) {
	store := NewYAMLStore(distributions.NewCatalog())

	h, err := store.Load(strings.NewReader("distribution: normal\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, h.Params["mu"])
	assert.Equal(t, 1.0, h.Params["sigma"])
}

func TestYAMLStore_LoadNormalizesKindCase(t *testing.T) {
	store := NewYAMLStore(distributions.NewCatalog())

	h, err := store.Load(strings.NewReader("distribution: Normal\nparameters:\n  mu: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, distributions.KindNormal, h.Kind)
}

func TestYAMLStore_LoadErrors(t *testing.T) {
	store := NewYAMLStore(distributions.NewCatalog())

	cases := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"not yaml", "{{{{", core.IsFormatError},
		{"missing kind", "parameters:\n  mu: 1\n", core.IsFormatError},
		{"unexpected field", "distribution: normal\nextra: 1\n", core.IsFormatError},
		{"non-numeric parameter", "distribution: normal\nparameters:\n  mu: abc\n", core.IsFormatError},
		{"unknown kind", "distribution: zeta\n", core.IsUnknownDistribution},
		{"out-of-domain parameter", "distribution: normal\nparameters:\n  sigma: -1\n", core.IsInvalidParameter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Load(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.True(t, tc.check(err), "got %v", err)
		})
	}
}

func TestYAMLStore_SaveRejectsBadHandles(t *testing.T) {
	store := NewYAMLStore(distributions.NewCatalog())
	var buf bytes.Buffer

	err := store.Save(dist.Handle{}, &buf)
	assert.True(t, core.IsFormatError(err), "got %v", err)

	err = store.Save(dist.Handle{Kind: core.DistKind("zeta")}, &buf)
	assert.True(t, core.IsUnknownDistribution(err), "got %v", err)
}

func TestYAMLStore_FileRoundTrip(t *testing.T) {
	store := NewYAMLStore(distributions.NewCatalog())
	path := filepath.Join(t.TempDir(), "exp.dist.yaml")

	h := dist.Handle{Kind: distributions.KindExponential, Params: map[string]float64{"scale": 2.5}}
	require.NoError(t, store.SaveFile(h, path))

	loaded, err := store.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, h.Equal(loaded))
}

package fontobfuscate

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/wordengine/docflow/internal/registry"
)

func TestObfuscateRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	ent := registry.NewEntropy(5)
	properties.Property("deobfuscate undoes obfuscate for any payload", prop.ForAll(
		func(data []byte) bool {
			g := GUID(ent.RawGUIDBytes())
			obf := Obfuscate(data, g)
			back := Deobfuscate(obf, g)
			return bytes.Equal(data, back)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestObfuscateLeavesTailUntouched(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 64)
	g := GUID(registry.NewEntropy(7).RawGUIDBytes())

	out := Obfuscate(data, g)
	require.Equal(t, data[32:], out[32:])
	require.NotEqual(t, data[:32], out[:32])
}

func TestObfuscateKeyOrientation(t *testing.T) {
	data := make([]byte, 50)
	for i := range data {
		data[i] = byte(i)
	}
	g := GUID(registry.NewEntropy(7).RawGUIDBytes())

	out := Obfuscate(data, g)
	for i := 0; i < 32; i++ {
		require.Equal(t, byte(i)^g[15-(i%16)], out[i], "byte %d", i)
	}
	require.Equal(t, data[32:], out[32:])
}

func TestGUIDStringParseRoundTrip(t *testing.T) {
	ent := registry.NewEntropy(11)
	for i := 0; i < 20; i++ {
		g := GUID(ent.RawGUIDBytes())

		s := g.String()
		parsed, err := ParseGUID(s)
		require.NoError(t, err)
		require.Equal(t, g, parsed)
	}
}

func TestManagerEmbedAssignsUniqueFileNames(t *testing.T) {
	m := NewManager(registry.NewEntropy(3))
	e1, err := m.Embed("Calibri", StyleRegular, []byte("fontdata-one"))
	require.NoError(t, err)
	e2, err := m.Embed("Calibri", StyleBold, []byte("fontdata-two"))
	require.NoError(t, err)

	require.NotEqual(t, e1.FileName, e2.FileName)
	require.NotEqual(t, e1.GUID, e2.GUID)
	require.Len(t, m.All(), 2)
}

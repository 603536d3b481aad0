package sdk

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmdev/palmdev-prep/internal/logging"
)

func analyze(t *testing.T, inv *Inventory, report *Reporter, bases ...string) {
	t.Helper()
	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
	a := NewAnalyzer(inv, WithReporter(report))
	for _, base := range bases {
		require.NoError(t, a.Analyze(ctx, base))
	}
}

func TestAnalyze_SDKsAndCommon(t *testing.T) {
	base := tree(t,
		"sdk-3.5/include", "sdk-3.5/lib",
		"sdk-5/Incs",
		"include",
		"docs",
	)
	inv := NewInventory(nil)

	analyze(t, inv, nil, base)

	require.Equal(t, 2, inv.Len())
	sdk35, ok := inv.Lookup("3.5")
	require.True(t, ok)
	assert.Equal(t, base+"/sdk-3.5", sdk35.Prefix)
	assert.Equal(t, "include", sdk35.Headers)
	assert.Equal(t, "lib", sdk35.Libraries)
	assert.Equal(t, "3.5", sdk35.Key)

	sdk5, ok := inv.Lookup("5")
	require.True(t, ok)
	assert.Equal(t, "Incs", sdk5.Headers)
	assert.Empty(t, sdk5.Libraries)

	require.Len(t, inv.Generic(), 1)
	assert.Equal(t, base, inv.Generic()[0].Prefix)
	assert.Empty(t, inv.Generic()[0].Key)
}

func TestAnalyze_FirstScannedWins(t *testing.T) {
	first := tree(t, "sdk-5/include")
	second := tree(t, "sdk-5/include", "sdk-5/lib")
	inv := NewInventory(nil)

	var out bytes.Buffer
	analyze(t, inv, NewReporter(&out), first, second)

	root, ok := inv.Lookup("5")
	require.True(t, ok)
	assert.Equal(t, first+"/sdk-5", root.Prefix)
	assert.Contains(t, out.String(), "UNUSED -- hidden by "+first+"/sdk-5")
}

func TestAnalyze_OnlySDKEntriesScanned(t *testing.T) {
	base := tree(t, "PalmOSSDK-4.0/include", "sdk-4/include")
	inv := NewInventory(nil)

	analyze(t, inv, nil, base)

	// "PalmOSSDK-4.0" is not an sdk- entry, so only "sdk-4" is scanned.
	root, ok := inv.Lookup("4")
	require.True(t, ok)
	assert.Equal(t, base+"/sdk-4", root.Prefix)
	assert.Equal(t, 1, inv.Len())
}

func TestAnalyze_DotZeroOverride(t *testing.T) {
	base := tree(t, "sdk-4.0/include", "sdk-4/include")
	inv := NewInventory(nil)

	var out bytes.Buffer
	analyze(t, inv, NewReporter(&out), base)

	// "sdk-4" sorts before "sdk-4.0".
	root, ok := inv.Lookup("4")
	require.True(t, ok)
	assert.Equal(t, base+"/sdk-4", root.Prefix)
	assert.Equal(t, 1, inv.Len())
	assert.Contains(t, out.String(), "UNUSED -- hidden by "+base+"/sdk-4")
}

func TestAnalyze_HeadersRequired(t *testing.T) {
	base := tree(t, "sdk-3/lib")
	inv := NewInventory(nil)

	var out bytes.Buffer
	analyze(t, inv, NewReporter(&out), base)

	_, ok := inv.Lookup("3")
	assert.False(t, ok, "SDK without headers must not be stored")
	assert.Equal(t, 0, inv.Len())
	assert.Contains(t, out.String(), "INVALID -- no headers")
}

func TestAnalyze_InvalidDoesNotHideLaterSDK(t *testing.T) {
	first := tree(t, "sdk-3/lib")
	second := tree(t, "sdk-3/include")
	inv := NewInventory(nil)

	analyze(t, inv, nil, first, second)

	root, ok := inv.Lookup("3")
	require.True(t, ok)
	assert.Equal(t, second+"/sdk-3", root.Prefix)
}

func TestAnalyze_GenericOrder(t *testing.T) {
	first := tree(t, "lib")
	second := tree(t, "include")
	empty := tree(t, "docs")
	inv := NewInventory(nil)

	analyze(t, inv, nil, first, empty, second)

	generic := inv.Generic()
	require.Len(t, generic, 2)
	assert.Equal(t, first, generic[0].Prefix)
	assert.Equal(t, second, generic[1].Prefix)
}

func TestAnalyze_MissingBaseIsNoop(t *testing.T) {
	inv := NewInventory(nil)

	var out bytes.Buffer
	analyze(t, inv, NewReporter(&out), filepath.Join(t.TempDir(), "absent"))

	assert.Equal(t, 0, inv.Len())
	assert.Empty(t, inv.Generic())
	assert.Empty(t, out.String())
}

func TestAnalyze_IgnoresFilesAndOtherNames(t *testing.T) {
	base := tree(t, "tools/include", "SDK-5/include")
	writeFile(t, base+"/sdk-6")
	inv := NewInventory(nil)

	analyze(t, inv, nil, base)

	assert.Equal(t, 1, inv.Len())
	_, ok := inv.Lookup("5")
	assert.True(t, ok)
}

func TestAnalyze_Report(t *testing.T) {
	base := tree(t,
		"sdk-3.5/include", "sdk-3.5/lib",
		"sdk-5/Incs",
		"sdk-6/lib",
		"include", "lib",
	)
	inv := NewInventory(nil)

	var out bytes.Buffer
	analyze(t, inv, NewReporter(&out), base)

	want := strings.Join([]string{
		"Checking SDKs in " + base,
		"  sdk-3.5      \theaders in 'include', libraries in 'lib'",
		"  sdk-5        \theaders in 'Incs', no libraries",
		"  sdk-6        \tINVALID -- no headers",
		"  and material in " + base + " used regardless of SDK choice",
		"    (common)   \theaders in 'include', libraries in 'lib'",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestAnalyze_ReportNone(t *testing.T) {
	base := tree(t, "docs")
	inv := NewInventory(nil)

	var out bytes.Buffer
	analyze(t, inv, NewReporter(&out), base)

	assert.Equal(t, "Checking SDKs in "+base+"\n  (none)\n\n", out.String())
}

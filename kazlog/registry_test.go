package kazlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_SameInstance(t *testing.T) {
	ctx := NewContext()

	a := ctx.Logger("subsystem")
	b := ctx.Logger("subsystem")
	assert.Same(t, a, b)

	// Configuration persists across lookups.
	h := &recordHandler{}
	a.AddHandler(h)
	a.SetThreshold(LevelWarn)

	c := ctx.Logger("subsystem")
	assert.Equal(t, LevelWarn, c.Threshold())
	c.Warn("w")
	assert.Len(t, h.snapshot(), 1)
}

func TestContext_DistinctNames(t *testing.T) {
	ctx := NewContext()
	assert.NotSame(t, ctx.Logger("a"), ctx.Logger("b"))
}

func TestContext_LazyDefault(t *testing.T) {
	ctx := NewContext()
	l := ctx.Logger("fresh")
	assert.Equal(t, LevelDebug, l.Threshold(), "new loggers are maximally verbose")
	assert.Equal(t, "fresh", l.Name())

	// No handlers attached yet; logging is a quiet no-op.
	l.Info("goes nowhere")
}

func TestContext_SharedWarnOnceTable(t *testing.T) {
	ctx := NewContext()
	a := ctx.Logger("a")
	b := ctx.Logger("b")

	ha := &recordHandler{}
	hb := &recordHandler{}
	a.AddHandler(ha)
	b.AddHandler(hb)

	site := Callsite{File: "shared.go", Line: 7}
	a.WarnOnceAt("x", site)
	b.WarnOnceAt("x", site)

	// The dedup table is context-wide, keyed by call site alone.
	assert.Len(t, ha.snapshot(), 1)
	assert.Empty(t, hb.snapshot())
}

func TestGetLogger_UsesDefaultContext(t *testing.T) {
	assert.Same(t, GetLogger("surface"), GetLogger("surface"))
}

func TestRoot_IsRegistryEntry(t *testing.T) {
	assert.Same(t, Root(), GetLogger("root"))
}

func TestFreeFunctions_CaptureCallsite(t *testing.T) {
	root := Root()
	h := &recordHandler{}
	root.AddHandler(h)
	old := root.Threshold()
	t.Cleanup(func() { root.SetThreshold(old) })
	root.SetThreshold(LevelDebug)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	calls := h.snapshot()
	require.Len(t, calls, 4)
	for _, c := range calls {
		assert.Contains(t, c.message, "registry_test.go:",
			"free functions must capture the caller's site, not their own")
	}
	assert.Equal(t, "DEBUG", calls[0].level)
	assert.Equal(t, "INFO", calls[1].level)
	assert.Equal(t, "WARN", calls[2].level)
	assert.Equal(t, "ERROR", calls[3].level)
}

func TestFreeWarnOnce_Dedups(t *testing.T) {
	root := Root()
	h := &recordHandler{}
	root.AddHandler(h)
	old := root.Threshold()
	t.Cleanup(func() { root.SetThreshold(old) })
	root.SetThreshold(LevelDebug)

	for i := 0; i < 3; i++ {
		WarnOnce("free function call site")
	}
	assert.Len(t, h.snapshot(), 1)
}

func TestApplyEnvThreshold(t *testing.T) {
	l := NewContext().Logger("env")

	t.Setenv("KAZLOG_LEVEL", "ERROR")
	applyEnvThreshold(l)
	assert.Equal(t, LevelError, l.Threshold())

	t.Setenv("KAZLOG_LEVEL", "")
	l.SetThreshold(LevelDebug)
	applyEnvThreshold(l)
	assert.Equal(t, LevelDebug, l.Threshold(), "unset variable leaves the threshold alone")
}

func TestApplyEnvThreshold_InvalidValue(t *testing.T) {
	errBuf := captureStderr(t)
	l := NewContext().Logger("env")

	t.Setenv("KAZLOG_LEVEL", "VERBOSE")
	applyEnvThreshold(l)

	assert.Equal(t, LevelDebug, l.Threshold(), "an unknown level name is ignored")
	assert.Contains(t, errBuf.String(), "VERBOSE")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"NONE":  LevelNone,
		"ERROR": LevelError,
		"WARN":  LevelWarn,
		"INFO":  LevelInfo,
		"DEBUG": LevelDebug,
		"debug": LevelDebug,
		" info": LevelInfo,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, "ParseLevel(%q)", in)
		assert.Equal(t, want, got, "ParseLevel(%q)", in)
	}

	for _, in := range []string{"", "TRACE", "WARNING", "3"} {
		if _, err := ParseLevel(in); err == nil {
			t.Fatalf("ParseLevel(%q) should reject values outside the fixed set", in)
		}
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "NONE", LevelNone.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())
}

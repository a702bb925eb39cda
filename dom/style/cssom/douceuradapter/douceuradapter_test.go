package douceuradapter

import (
	"testing"

	"github.com/npillmayer/cascade/dom/style"
	sel "github.com/npillmayer/cascade/dom/style/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mainBar = sel.P(sel.ID("main"), sel.Child(), sel.Class("bar"))

func TestNewRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	r, err := NewRule(mainBar, 7, "color: red; padding: 1em 2em !important; width: 10px")
	require.NoError(t, err)
	t.Logf("rule = %s", r)
	assert.Equal(t, mainBar, r.Selector())
	assert.Equal(t, 7, r.Priority())
	assert.Equal(t, []string{"color", "padding-top", "padding-right", "padding-bottom", "padding-left",
		"width"}, r.Properties())
	assert.Equal(t, style.Property("red"), r.Value("color"))
	assert.Equal(t, style.Property("2em"), r.Value("padding-left"))
	assert.Equal(t, style.NullStyle, r.Value("margin-top"))
	assert.True(t, r.IsImportant("padding-bottom"), "split properties inherit !important")
	assert.False(t, r.IsImportant("color"))
}

func TestRuleLastDeclarationWins(t *testing.T) {
	r, err := NewRule(mainBar, 0, "color: red; color: blue")
	require.NoError(t, err)
	assert.Equal(t, style.Property("blue"), r.Value("color"))
	assert.Len(t, r.Properties(), 2)
}

func TestNewRuleBadCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	if _, err := NewRule(mainBar, 0, "margin: 1px 2px 3px 4px 5px"); err == nil {
		t.Error("expected error for margin with 5 values")
	}
}

func TestSheet(t *testing.T) {
	sheet := &Sheet{}
	assert.True(t, sheet.Empty())
	require.NoError(t, sheet.Add(mainBar, 1, "color: red"))
	r, err := NewRule(sel.P(sel.Global()), 0, "display: block")
	require.NoError(t, err)
	other := NewSheet(r)
	sheet.AppendRules(other)
	sheet.AppendRules(nil)
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "#main > .bar", rules[0].Selector().String())
	assert.Equal(t, "*", rules[1].Selector().String())
	rules[0] = nil
	assert.NotNil(t, sheet.Rules()[0], "Rules must return a copy")
	assert.Len(t, other.Rules(), 1)
}

func TestNewRuleWithoutTrailingSemicolon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	for _, block := range []string{"color: red", "color: red;", "  color: red  "} {
		r, err := NewRule(mainBar, 0, block)
		require.NoError(t, err, "block %q", block)
		assert.Equal(t, style.Property("red"), r.Value("color"), "block %q", block)
	}
	r, err := NewRule(mainBar, 0, "margin: 0")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{
		{Key: "margin-top", Value: "0"}, {Key: "margin-right", Value: "0"},
		{Key: "margin-bottom", Value: "0"}, {Key: "margin-left", Value: "0"},
	}, r.Declarations())
	r, err = NewRule(mainBar, 0, "width: 10px; color: blue !important")
	require.NoError(t, err)
	assert.Equal(t, style.Property("blue"), r.Value("color"))
	assert.True(t, r.IsImportant("color"))
	r, err = NewRule(mainBar, 0, "")
	require.NoError(t, err)
	assert.Empty(t, r.Properties())
}

func TestRuleDeclarationsKeepRepeatedKeys(t *testing.T) {
	r, err := NewRule(mainBar, 0, "color: red; color: blue")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{{Key: "color", Value: "red"}, {Key: "color", Value: "blue"}},
		r.Declarations())
}

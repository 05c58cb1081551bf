package sunmao

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoPanelTree returns a tree whose root has a bottom tenon, handy for
// two-panel legend scenarios.
func twoPanelTree(t *testing.T) (*Tree, *Panel, *Panel, *fakeFigure) {
	t.Helper()
	tree, fig := newTestTree(t, 4, 4)
	root := tree.Root()
	child, err := root.Tenon(Bottom, 1)
	require.NoError(t, err)
	return tree, root, child, fig
}

func plotLabeled(t *testing.T, p *Panel, labels ...string) {
	t.Helper()
	for i, label := range labels {
		_, err := p.Plot([]float64{0, 1}, []float64{float64(i), float64(i + 1)}, WithLabel(label))
		require.NoError(t, err)
	}
}

func TestGlobalLegendDeduplicates(t *testing.T) {
	tree, root, child, fig := twoPanelTree(t)
	plotLabeled(t, root, "sin(x)")
	plotLabeled(t, child, "sin(x)")

	require.NoError(t, tree.CreateLegend(WithMode(LegendGlobal)))
	require.NotNil(t, fig.legend)
	assert.Equal(t, []string{"sin(x)"}, fig.legend.labels())
	assert.Equal(t, TopCenter, fig.legend.at)
	assert.Equal(t, 1, fig.legend.ncol)
	// First occurrence wins: the handle comes from the root's series.
	assert.Same(t, root, fig.legend.entries[0].Panel)
}

func TestLocalLegends(t *testing.T) {
	tree, root, child, fig := twoPanelTree(t)
	plotLabeled(t, root, "b", "a")
	plotLabeled(t, child, "b")

	require.NoError(t, tree.CreateLegend(WithMode(LegendLocal)))
	assert.Nil(t, fig.legend, "local mode must not create a figure legend")
	// No cross-panel deduplication, insertion order preserved.
	assert.Equal(t, []string{"b", "a"}, surfaceOf(root).legend.labels())
	assert.Equal(t, []string{"b"}, surfaceOf(child).legend.labels())
	assert.Equal(t, TopRight, surfaceOf(root).legend.at)
}

func TestMixedLegendPartition(t *testing.T) {
	tree, a, b, fig := twoPanelTree(t)
	plotLabeled(t, a, "a", "b")
	plotLabeled(t, b, "b", "c")

	require.NoError(t, tree.CreateLegend(WithMode(LegendMixed)))
	// "b" is produced by two panels: exactly once in the global legend.
	require.NotNil(t, fig.legend)
	assert.Equal(t, []string{"b"}, fig.legend.labels())
	// "a" and "c" stay local to their panels.
	assert.Equal(t, []string{"a"}, surfaceOf(a).legend.labels())
	assert.Equal(t, []string{"c"}, surfaceOf(b).legend.labels())
}

func TestMixedAllShared(t *testing.T) {
	tree, a, b, fig := twoPanelTree(t)
	plotLabeled(t, a, "x")
	plotLabeled(t, b, "x")

	require.NoError(t, tree.CreateLegend(WithMode(LegendMixed)))
	assert.Equal(t, []string{"x"}, fig.legend.labels())
	assert.Nil(t, surfaceOf(a).legend)
	assert.Nil(t, surfaceOf(b).legend)
}

func TestAutoPicksGlobalForSmallLabelSets(t *testing.T) {
	tree, a, b, fig := twoPanelTree(t)
	plotLabeled(t, a, "sin(x)", "cos(x)")
	plotLabeled(t, b, "sin(x)")

	require.NoError(t, tree.CreateLegend())
	require.NotNil(t, fig.legend)
	assert.ElementsMatch(t, []string{"sin(x)", "cos(x)"}, fig.legend.labels())
	assert.Nil(t, surfaceOf(a).legend)
}

func TestAutoFallsBackToMixed(t *testing.T) {
	// More distinct labels than autoGlobalMaxLabels.
	tree, a, b, fig := twoPanelTree(t)
	plotLabeled(t, a, "a", "b", "c")
	plotLabeled(t, b, "d", "e", "a")

	require.NoError(t, tree.CreateLegend())
	require.NotNil(t, fig.legend)
	assert.Equal(t, []string{"a"}, fig.legend.labels(), "only the shared label goes global in mixed")
	assert.Equal(t, []string{"b", "c"}, surfaceOf(a).legend.labels())

	// Few labels, but one repeats inside a single panel.
	tree2, c, _, fig2 := twoPanelTree(t)
	plotLabeled(t, c, "a", "a")
	require.NoError(t, tree2.CreateLegend())
	assert.Nil(t, fig2.legend, "within-panel repetition must not produce a global legend")
	assert.Equal(t, []string{"a", "a"}, surfaceOf(c).legend.labels(), "local legends do not deduplicate")
}

func TestCreateLegendNoEntries(t *testing.T) {
	tree, _, _, fig := twoPanelTree(t)
	require.NoError(t, tree.CreateLegend())
	assert.Nil(t, fig.legend)
	assert.Zero(t, fig.legendCalls)
}

func TestEmptyLabelsNeverDeduplicationKeys(t *testing.T) {
	tree, root, _, fig := twoPanelTree(t)
	plotLabeled(t, root, "a", "", "")

	require.NoError(t, tree.CreateLegend(WithMode(LegendGlobal)))
	require.NotNil(t, fig.legend)
	assert.Equal(t, []string{"a"}, fig.legend.labels())
	assert.Equal(t, 1, fig.legend.ncol)

	// Counted for placement only on request.
	tree.ClearLegends()
	plotLabeled(t, root, "a", "", "")
	require.NoError(t, tree.CreateLegend(WithMode(LegendGlobal), IncludeUnlabeled()))
	assert.Equal(t, []string{"a"}, fig.legend.labels())
	assert.Equal(t, 3, fig.legend.ncol)
}

func TestLegendColumns(t *testing.T) {
	tree, root, _, fig := twoPanelTree(t)
	plotLabeled(t, root, "a", "b", "c", "d", "e", "f")

	require.NoError(t, tree.CreateLegend(WithMode(LegendGlobal)))
	assert.Equal(t, defaultLegendColumns, fig.legend.ncol)

	require.NoError(t, tree.CreateLegend(WithMode(LegendGlobal), WithColumns(2)))
	assert.Equal(t, 2, fig.legend.ncol)
}

func TestClearLegendsIdempotent(t *testing.T) {
	tree, root, _, fig := twoPanelTree(t)
	plotLabeled(t, root, "a")
	require.NoError(t, tree.CreateLegend(WithMode(LegendGlobal)))
	require.NotNil(t, fig.legend)

	tree.ClearLegends()
	assert.Nil(t, fig.legend)
	tree.ClearLegends() // second clear is a no-op

	// The registry is gone too: auto legend creation is now a no-op.
	require.NoError(t, tree.CreateLegend())
	assert.Nil(t, fig.legend)
	assert.Equal(t, 1, fig.legendCalls)
}

func TestClearLegendsRemovesLocals(t *testing.T) {
	tree, root, child, _ := twoPanelTree(t)
	plotLabeled(t, root, "a")
	plotLabeled(t, child, "b")
	require.NoError(t, tree.CreateLegend(WithMode(LegendLocal)))

	tree.ClearLegends()
	assert.Nil(t, surfaceOf(root).legend)
	assert.Nil(t, surfaceOf(child).legend)
	assert.Equal(t, 1, surfaceOf(root).legendClears)
}

func TestSetLegendPosition(t *testing.T) {
	tree, root, child, fig := twoPanelTree(t)

	err := tree.SetLegendPosition(nil, BottomCenter)
	assert.ErrorIs(t, err, ErrNoLegendRendered)

	plotLabeled(t, root, "a")
	plotLabeled(t, child, "b")
	require.NoError(t, tree.CreateLegend(WithMode(LegendLocal)))

	// Still no figure-level legend to move.
	assert.ErrorIs(t, tree.SetLegendPosition(nil, BottomCenter), ErrNoLegendRendered)

	require.NoError(t, tree.SetLegendPosition(child, BottomLeft))
	assert.Equal(t, BottomLeft, surfaceOf(child).legend.at)
	assert.Equal(t, []string{"b"}, surfaceOf(child).legend.labels())

	require.NoError(t, tree.CreateLegend(WithMode(LegendGlobal), At(TopLeft)))
	assert.Equal(t, TopLeft, fig.legend.at)
	require.NoError(t, tree.SetLegendPosition(nil, BottomCenter))
	assert.Equal(t, BottomCenter, fig.legend.at)
}

func TestAddLegendItemJoinsLegend(t *testing.T) {
	tree, root, child, fig := twoPanelTree(t)
	root.AddLegendItem("external", "h0")
	plotLabeled(t, child, "a")

	require.NoError(t, tree.CreateLegend(WithMode(LegendGlobal)))
	require.NotNil(t, fig.legend)
	assert.Equal(t, []string{"external", "a"}, fig.legend.labels())
	assert.Equal(t, Handle("h0"), fig.legend.entries[0].Handle)
	assert.Same(t, root, fig.legend.entries[0].Panel)
}

func TestMixedColumnsCountUnlabeled(t *testing.T) {
	tree, a, b, fig := twoPanelTree(t)
	plotLabeled(t, a, "s", "")
	plotLabeled(t, b, "s")

	require.NoError(t, tree.CreateLegend(WithMode(LegendMixed)))
	require.NotNil(t, fig.legend)
	assert.Equal(t, 1, fig.legend.ncol)

	tree.ClearLegends()
	plotLabeled(t, a, "s", "")
	plotLabeled(t, b, "s")
	require.NoError(t, tree.CreateLegend(WithMode(LegendMixed), IncludeUnlabeled()))
	assert.Equal(t, []string{"s"}, fig.legend.labels())
	assert.Equal(t, 2, fig.legend.ncol)
}

func TestLocalLegendFailureRollsBack(t *testing.T) {
	tree, root, child, _ := twoPanelTree(t)
	plotLabeled(t, root, "a")
	plotLabeled(t, child, "b")
	surfaceOf(child).legendErr = errors.New("canvas gone")

	err := tree.CreateLegend(WithMode(LegendLocal))
	require.Error(t, err)
	// The root's legend was rendered before the failure; the failed call
	// must take it down again.
	assert.Nil(t, surfaceOf(root).legend)
	assert.Equal(t, 1, surfaceOf(root).legendClears)
	assert.ErrorIs(t, tree.SetLegendPosition(root, TopLeft), ErrNoLegendRendered)
}

func TestMixedLocalFailureClearsGlobal(t *testing.T) {
	tree, a, b, fig := twoPanelTree(t)
	plotLabeled(t, a, "s", "only-a")
	plotLabeled(t, b, "s", "only-b")
	surfaceOf(b).legendErr = errors.New("canvas gone")

	err := tree.CreateLegend(WithMode(LegendMixed))
	require.Error(t, err)
	assert.Nil(t, fig.legend)
	assert.Equal(t, 1, fig.clears)
	assert.Nil(t, surfaceOf(a).legend)
	assert.ErrorIs(t, tree.SetLegendPosition(nil, BottomCenter), ErrNoLegendRendered)
}

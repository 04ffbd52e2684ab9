// Package builder holds white-box tests for option resolution.
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/core"
)

func TestBuilderConfigDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
	require.NotNil(t, cfg.newGraph)
	assert.IsType(t, &core.MapGraph{}, cfg.newGraph())
}

func TestIDSchemeOptionsApplyInOrder(t *testing.T) {
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "v3", newBuilderConfig(WithPrefixIDs("v")).idFn(3))
	assert.Equal(t, "3", newBuilderConfig(WithExcelColumnIDs(), WithDefaultIDs()).idFn(3))
}

func TestWithPartitionPrefix(t *testing.T) {
	cfg := newBuilderConfig(WithPartitionPrefix("left", ""))
	assert.Equal(t, "left", cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)

	cfg = newBuilderConfig(WithPartitionPrefix("", ""))
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}

func TestWithBackend(t *testing.T) {
	cfg := newBuilderConfig(WithBackend(func() core.Graph { return core.NewIndexGraph() }))
	assert.IsType(t, &core.IndexGraph{}, cfg.newGraph())
}

func TestOptionConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithBackend(nil) })
	assert.Panics(t, func() { WithPartitionPrefix("X", "X") })
	// "" on the left resolves to "L", colliding with an explicit "L" on the right.
	assert.Panics(t, func() { WithPartitionPrefix("", defaultLeftPrefix) })
}

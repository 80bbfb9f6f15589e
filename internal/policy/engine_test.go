package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restrictivePolicy = `
package model_policy

default decision = "allow"

decision = "block" {
	input.domain == "medical"
	startswith(input.model_id, "ai21")
}
`

func TestDefaultPolicyAllows(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, DefaultPolicy)
	require.NoError(t, err)

	decision, err := engine.Evaluate(ctx, Input{ModelID: "ai21.j2-ultra-v1", Domain: "medical"})
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision)
}

func TestPolicyBlocks(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, restrictivePolicy)
	require.NoError(t, err)

	decision, err := engine.Evaluate(ctx, Input{ModelID: "ai21.j2-ultra-v1", Domain: "medical"})
	require.NoError(t, err)
	assert.Equal(t, DecisionBlock, decision)

	decision, err = engine.Evaluate(ctx, Input{ModelID: "ai21.j2-ultra-v1", Domain: "general"})
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision)
}

func TestPolicyUnknownDecision(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, "package model_policy\n\ndefault decision = \"maybe\"\n")
	require.NoError(t, err)

	_, err = engine.Evaluate(ctx, Input{ModelID: "x"})
	assert.Error(t, err)
}

func TestPolicyUndefinedIsAllow(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, "package model_policy\n\ndecision = \"block\" {\n\tinput.model_id == \"never\"\n}\n")
	require.NoError(t, err)

	decision, err := engine.Evaluate(ctx, Input{ModelID: "anthropic.claude-v2"})
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision)
}

func TestInvalidPolicy(t *testing.T) {
	_, err := NewEngine(context.Background(), "package model_policy\n\ndecision = {")
	assert.Error(t, err)
}

func TestNewEngineFromFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "policy.rego")
	require.NoError(t, os.WriteFile(path, []byte(restrictivePolicy), 0o600))

	engine, err := NewEngineFromFile(ctx, path)
	require.NoError(t, err)
	decision, err := engine.Evaluate(ctx, Input{ModelID: "ai21.j2-mid-v1", Domain: "medical"})
	require.NoError(t, err)
	assert.Equal(t, DecisionBlock, decision)

	_, err = NewEngineFromFile(ctx, filepath.Join(t.TempDir(), "missing.rego"))
	assert.Error(t, err)

	engine, err = NewEngineFromFile(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, engine)
}

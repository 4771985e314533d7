package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revet-dev/revet/pkg/core"
)

func TestDuplicateServices(t *testing.T) {
	t.Run("same service name across languages", func(t *testing.T) {
		ctx := projectContext(t, map[string]string{
			"frontend/UserService.ts": "x\n",
			"legacy/userservice.js":   "x\n",
			"api/OrderService.cs":     "x\n",
		})

		findings := runRule(ctx, "PR01")
		require.Len(t, findings, 1)
		assert.Equal(t, core.SeverityCritical, findings[0].Severity)
		assert.Equal(t, "frontend/UserService.ts", findings[0].Path)
		assert.Contains(t, findings[0].Message, "frontend/UserService.ts")
		assert.Contains(t, findings[0].Message, "legacy/userservice.js")
		assert.NotContains(t, findings[0].Message, "OrderService")
	})

	t.Run("distinct service names pass", func(t *testing.T) {
		ctx := projectContext(t, map[string]string{
			"a/UserService.ts":  "x\n",
			"b/OrderService.ts": "x\n",
		})
		assert.Empty(t, runRule(ctx, "PR01"))
	})

	t.Run("non-service duplicates ignored", func(t *testing.T) {
		ctx := projectContext(t, map[string]string{
			"a/helpers.ts": "x\n",
			"b/helpers.js": "x\n",
		})
		assert.Empty(t, runRule(ctx, "PR01"))
	})

	t.Run("triplicate reported once listing all", func(t *testing.T) {
		ctx := projectContext(t, map[string]string{
			"a/AuthService.ts": "x\n",
			"b/authService.js": "x\n",
			"c/authservice.py": "x\n",
		})
		findings := runRule(ctx, "PR01")
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "a/AuthService.ts")
		assert.Contains(t, findings[0].Message, "b/authService.js")
		assert.Contains(t, findings[0].Message, "c/authservice.py")
	})
}

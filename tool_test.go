package vcal_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vcal "github.com/njchilds90/go-vcal"
)

func callTool(t *testing.T, raw string) vcal.ToolResponse {
	t.Helper()
	var req vcal.ToolRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	return vcal.HandleToolCall(req)
}

func TestTool_Laplacian(t *testing.T) {
	resp := callTool(t, `{
		"tool": "laplacian",
		"params": {
			"system": "cylindrical",
			"expr": {
				"type": "mul",
				"factors": [
					{"type": "pow", "base": {"type": "sym", "name": "rho"}, "exp": {"type": "num", "value": "2"}},
					{"type": "sym", "name": "theta"}
				]
			}
		}
	}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, "4*theta", resp.String)
}

func TestTool_GradComponents(t *testing.T) {
	resp := callTool(t, `{
		"tool": "grad",
		"params": {
			"system": "cylindrical",
			"expr": {
				"type": "mul",
				"factors": [
					{"type": "pow", "base": {"type": "sym", "name": "rho"}, "exp": {"type": "num", "value": "2"}},
					{"type": "sym", "name": "z"}
				]
			}
		}
	}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, map[string]string{
		"e_rho":   "2*rho*z",
		"e_theta": "0",
		"e_z":     "rho^2",
	}, resp.Result)
}

func TestTool_DivRadialSpherical(t *testing.T) {
	resp := callTool(t, `{
		"tool": "div",
		"params": {
			"system": "spherical",
			"v1": {"type": "sym", "name": "r"},
			"v2": {"type": "num", "value": "0"},
			"v3": {"type": "num", "value": "0"}
		}
	}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, "3", resp.String)
}

func TestTool_CurlComponents(t *testing.T) {
	resp := callTool(t, `{
		"tool": "curl",
		"params": {
			"system": "cylindrical",
			"v1": {"type": "num", "value": "0"},
			"v2": {"type": "sym", "name": "rho"},
			"v3": {"type": "num", "value": "0"}
		}
	}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, map[string]string{
		"e_rho":   "0",
		"e_theta": "0",
		"e_z":     "2",
	}, resp.Result)
}

func TestTool_Diff(t *testing.T) {
	resp := callTool(t, `{
		"tool": "diff",
		"params": {
			"expr": {"type": "func", "name": "sin", "arg": {"type": "sym", "name": "x"}},
			"var": "x"
		}
	}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, "cos(x)", resp.String)
}

func TestTool_Substitute(t *testing.T) {
	resp := callTool(t, `{
		"tool": "substitute",
		"params": {
			"expr": {"type": "pow", "base": {"type": "sym", "name": "x"}, "exp": {"type": "num", "value": "2"}},
			"var": "x",
			"value": {"type": "num", "value": "3"}
		}
	}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, "9", resp.String)
}

func TestTool_FreeSymbols(t *testing.T) {
	resp := callTool(t, `{
		"tool": "free_symbols",
		"params": {
			"expr": {
				"type": "mul",
				"factors": [
					{"type": "sym", "name": "z"},
					{"type": "sym", "name": "rho"}
				]
			}
		}
	}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, []string{"rho", "z"}, resp.Result)
}

func TestTool_UnknownTool(t *testing.T) {
	resp := callTool(t, `{"tool": "integrate", "params": {}}`)
	assert.Contains(t, resp.Error, "unknown tool")
}

func TestTool_MissingParam(t *testing.T) {
	resp := callTool(t, `{"tool": "simplify", "params": {}}`)
	assert.Contains(t, resp.Error, "missing param: expr")
}

func TestTool_UnknownSystem(t *testing.T) {
	resp := callTool(t, `{
		"tool": "grad",
		"params": {"system": "cartesian", "expr": {"type": "sym", "name": "x"}}
	}`)
	assert.Contains(t, resp.Error, "unknown coordinate system")
}

func TestToolSpec_ListsAllTools(t *testing.T) {
	spec := vcal.ToolSpec()
	for _, name := range []string{
		"grad", "div", "curl", "laplacian",
		"simplify", "deep_simplify", "diff", "substitute",
		"free_symbols", "to_latex", "tool_spec",
	} {
		assert.True(t, strings.Contains(spec, `"name": "`+name+`"`), "spec missing tool %s", name)
	}

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(spec), &parsed))
	tools, ok := parsed["tools"].([]interface{})
	require.True(t, ok)
	assert.Len(t, tools, 11)
}

package vcal

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	sym "github.com/njchilds90/go-vcal/symexpr"
)

// ToolRequest is one tool invocation, MCP style.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries the result or an error message.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall dispatches a tool request. Operator tools take a
// "system" param ("cylindrical" or "spherical"); scalar operators take
// an "expr" expression object, vector operators take component
// expressions "v1", "v2", "v3".
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (sym.Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		return sym.FromJSON(m)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getSystem := func() (*CoordSys, error) {
		name, err := getString("system")
		if err != nil {
			return nil, err
		}
		switch name {
		case "cylindrical":
			return Cylindrical(), nil
		case "spherical":
			return Spherical(), nil
		}
		return nil, fmt.Errorf("unknown coordinate system: %s", name)
	}
	getVector := func(c *CoordSys) (sym.Expr, error) {
		var comp [3]sym.Expr
		for i, key := range []string{"v1", "v2", "v3"} {
			e, err := getExpr(key)
			if err != nil {
				return nil, err
			}
			comp[i] = e
		}
		return c.Vector(comp[0], comp[1], comp[2]), nil
	}
	respond := func(e sym.Expr) ToolResponse {
		return ToolResponse{Result: sym.Encode(e), LaTeX: sym.LaTeX(e), String: sym.String(e)}
	}
	respondVec := func(c *CoordSys, v sym.Expr) ToolResponse {
		comps := make(map[string]string, 3)
		strs := make([]string, 3)
		latexStrs := make([]string, 3)
		for i := 0; i < 3; i++ {
			ci := c.Component(v, i)
			comps[c.Unit(i).Name()] = ci.String()
			strs[i] = "(" + ci.String() + ")*" + c.Unit(i).String()
			latexStrs[i] = `\left(` + ci.LaTeX() + `\right)` + c.Unit(i).LaTeX()
		}
		return ToolResponse{
			Result: comps,
			String: strings.Join(strs, " + "),
			LaTeX:  strings.Join(latexStrs, " + "),
		}
	}

	switch req.Tool {
	case "grad":
		c, err := getSystem()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		f, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respondVec(c, c.Grad(f))

	case "div":
		c, err := getSystem()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, err := getVector(c)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(c.Div(v))

	case "curl":
		c, err := getSystem()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, err := getVector(c)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respondVec(c, c.Curl(v))

	case "laplacian":
		c, err := getSystem()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		f, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(c.Laplacian(f))

	case "simplify":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(sym.Simplify(e))

	case "deep_simplify":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(sym.DeepSimplify(e))

	case "diff":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, err := getString("var")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(sym.Diff(e, v))

	case "substitute":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, err := getString("var")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		val, err := getExpr("value")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(sym.Sub(e, v, val))

	case "free_symbols":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		syms := sym.FreeSymbols(e)
		names := make([]string, 0, len(syms))
		for n := range syms {
			names = append(names, n)
		}
		sort.Strings(names)
		return ToolResponse{Result: names}

	case "to_latex":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{LaTeX: sym.LaTeX(e), String: sym.String(e)}

	case "tool_spec":
		return ToolResponse{Result: ToolSpec(), String: "go-vcal tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ToolSpec returns the tool schema for agent registration.
func ToolSpec() string {
	tools := []map[string]interface{}{
		ts("grad", "Gradient ∇f in cylindrical or spherical coordinates", []string{"system", "expr"}, map[string]string{"system": "string", "expr": "object"}),
		ts("div", "Divergence ∇·V; v1,v2,v3 are the components along the basis", []string{"system", "v1", "v2", "v3"}, map[string]string{"system": "string", "v1": "object", "v2": "object", "v3": "object"}),
		ts("curl", "Curl ∇×V; v1,v2,v3 are the components along the basis", []string{"system", "v1", "v2", "v3"}, map[string]string{"system": "string", "v1": "object", "v2": "object", "v3": "object"}),
		ts("laplacian", "Laplacian ∇²f in cylindrical or spherical coordinates", []string{"system", "expr"}, map[string]string{"system": "string", "expr": "object"}),
		ts("simplify", "Simplify a symbolic expression", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("deep_simplify", "Apply repeated simplification passes including trig identities", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("diff", "Partial derivative ∂/∂var", []string{"expr", "var"}, map[string]string{"expr": "object", "var": "string"}),
		ts("substitute", "Substitute var with value", []string{"expr", "var", "value"}, map[string]string{"expr": "object", "var": "string", "value": "object"}),
		ts("free_symbols", "Return free symbol names", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("to_latex", "Convert to LaTeX", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

package model

// Tool describes one entry in the fixed tool catalog. The set of names and
// required-parameter lists is a contract with the provider and must not
// silently change shape.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []ToolParam `json:"parameters"`
}

// ToolParam describes a single tool parameter.
type ToolParam struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
}

// RequiredParam builds a required parameter definition.
func RequiredParam(name, description, paramType string) ToolParam {
	return ToolParam{Name: name, Description: description, Type: paramType, Required: true}
}

// OptionalParam builds an optional parameter definition.
func OptionalParam(name, description, paramType string) ToolParam {
	return ToolParam{Name: name, Description: description, Type: paramType, Required: false}
}

// RequiredNames returns the names of all required parameters, in
// declaration order.
func (t Tool) RequiredNames() []string {
	names := make([]string, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

package server

import (
	"testing"
)

var expectedTools = []string{
	"image_load",
	"image_dimensions",
	"hog_compute",
	"hog_summary",
	"hog_visualize",
	"hog_gradient_map",
}

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) != len(expectedTools) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := toolsByName()
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	toolMap := toolsByName()

	for _, name := range expectedTools {
		tool := toolMap[name]

		t.Run(name, func(t *testing.T) {
			requiredList, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			if len(requiredList) != 1 || requiredList[0] != "path" {
				t.Errorf("required: got %v, want [path]", requiredList)
			}
		})
	}
}

func TestToolDefinitions_HOGParameters(t *testing.T) {
	toolMap := toolsByName()

	tests := []struct {
		tool   string
		params []string
	}{
		{"hog_compute", []string{"path", "region", "quadrant", "max_width", "cell_size", "bins", "include_vector"}},
		{"hog_summary", []string{"path", "region", "quadrant", "max_width", "cell_size", "bins"}},
		{"hog_visualize", []string{"path", "region", "quadrant", "max_width", "cell_size", "bins", "show_grid"}},
		{"hog_gradient_map", []string{"path", "region", "quadrant", "max_width"}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			props, ok := toolMap[tt.tool].InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("properties should be a map")
			}
			if len(props) != len(tt.params) {
				t.Errorf("property count: got %d, want %d", len(props), len(tt.params))
			}
			for _, p := range tt.params {
				if _, ok := props[p]; !ok {
					t.Errorf("missing property %s", p)
				}
			}
		})
	}
}

func TestToolDefinitions_SharedPropertiesNotAliased(t *testing.T) {
	toolMap := toolsByName()

	// include_vector and show_grid are added to one tool each.
	props := toolMap["hog_summary"].InputSchema["properties"].(map[string]interface{})
	for _, name := range []string{"include_vector", "show_grid"} {
		if _, ok := props[name]; ok {
			t.Errorf("hog_summary should not expose %s", name)
		}
	}
}

func TestToolDefinitions_QuadrantEnum(t *testing.T) {
	props := toolsByName()["hog_compute"].InputSchema["properties"].(map[string]interface{})

	quadrant, ok := props["quadrant"].(map[string]interface{})
	if !ok {
		t.Fatal("quadrant property should exist and be a map")
	}
	enum, ok := quadrant["enum"].([]string)
	if !ok {
		t.Fatal("quadrant should have enum")
	}

	expectedRegions := []string{
		"top-left", "top-right", "bottom-left", "bottom-right",
		"top-half", "bottom-half", "left-half", "right-half", "center",
	}
	enumMap := make(map[string]bool)
	for _, e := range enum {
		enumMap[e] = true
	}
	for _, region := range expectedRegions {
		if !enumMap[region] {
			t.Errorf("Expected region '%s' not in enum", region)
		}
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	toolDefaults := map[string]map[string]interface{}{
		"hog_compute":      {"cell_size": 8, "bins": 9, "max_width": 500, "include_vector": false},
		"hog_summary":      {"cell_size": 8, "bins": 9, "max_width": 500},
		"hog_visualize":    {"cell_size": 8, "bins": 9, "max_width": 500, "show_grid": false},
		"hog_gradient_map": {"max_width": 500},
	}

	toolMap := toolsByName()

	for toolName, expectedDefaults := range toolDefaults {
		tool, ok := toolMap[toolName]
		if !ok {
			t.Errorf("Tool %s not found", toolName)
			continue
		}

		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Errorf("%s: properties should be a map", toolName)
			continue
		}

		for paramName, expectedDefault := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}

			actualDefault, ok := param["default"]
			if !ok {
				t.Errorf("%s.%s: missing default value", toolName, paramName)
				continue
			}

			if actualDefault != expectedDefault {
				t.Errorf("%s.%s: default got %v (%T), want %v", toolName, paramName, actualDefault, actualDefault, expectedDefault)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

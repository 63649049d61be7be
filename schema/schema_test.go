package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodNames(t *testing.T) {
	testCases := []struct {
		description string
		method      string
		expect      string
	}{
		{description: "initialize", method: MethodInitialize, expect: "initialize"},
		{description: "ping", method: MethodPing, expect: "ping"},
		{description: "tools list", method: MethodToolsList, expect: "tools/list"},
		{description: "tools call", method: MethodToolsCall, expect: "tools/call"},
		{description: "cancel notification", method: MethodNotificationCancel, expect: "notifications/cancelled"},
		{description: "initialized notification", method: MethodNotificationInitialized, expect: "notifications/initialized"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.method, testCase.description)
	}
	assert.True(t, strings.HasPrefix(MethodNotificationCancel, NotificationPrefix))
}

func TestNewExportTool(t *testing.T) {
	tool, err := NewExportTool()
	require.NoError(t, err)
	assert.Equal(t, "export_to_mentraflow", tool.Name)
	assert.Equal(t, "object", tool.InputSchema.Type)
	assert.Equal(t, []string{"user_id", "conversations"}, tool.InputSchema.Required)

	userID := tool.InputSchema.Properties["user_id"]
	assert.Equal(t, "string", userID["type"])
	assert.Equal(t, "MentraFlow user ID", userID["description"])

	conversations := tool.InputSchema.Properties["conversations"]
	assert.Equal(t, "array", conversations["type"])
	items, ok := conversations["items"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "object", items["type"])
	_, hasRequired := items["required"]
	assert.False(t, hasRequired, "nested conversation fields are optional")

	itemProps, ok := items["properties"].(ToolInputSchemaProperties)
	require.True(t, ok)
	for _, name := range []string{"conversation_id", "platform", "title", "messages"} {
		assert.Contains(t, itemProps, name)
	}
	messages := itemProps["messages"]
	assert.Equal(t, "array", messages["type"])
}

func TestToolInputSchema_Load(t *testing.T) {
	type sample struct {
		Name    string            `json:"name"`
		Count   *int              `json:"count"`
		Tags    []string          `json:"tags,omitempty"`
		Labels  map[string]string `json:"labels,omitempty"`
		Skipped string            `json:"-"`
		hidden  string
	}
	testCases := []struct {
		description string
		input       any
		expectErr   bool
		required    []string
		properties  []string
	}{
		{
			description: "struct pointer",
			input:       &sample{},
			required:    []string{"name"},
			properties:  []string{"name", "count", "tags", "labels"},
		},
		{
			description: "struct value",
			input:       sample{},
			required:    []string{"name"},
			properties:  []string{"name", "count", "tags", "labels"},
		},
		{
			description: "not a struct",
			input:       42,
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		s := &ToolInputSchema{}
		err := s.Load(testCase.input)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.required, s.Required, testCase.description)
		assert.Len(t, s.Properties, len(testCase.properties), testCase.description)
		for _, name := range testCase.properties {
			assert.Contains(t, s.Properties, name, testCase.description)
		}
		assert.Equal(t, true, s.Properties["count"]["nullable"], testCase.description)
	}
}

func TestCallToolRequestParams_Argument(t *testing.T) {
	params := &CallToolRequestParams{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","arguments":{"user_id":"u1","conversations":[1,2]}}`), params))
	assert.Equal(t, `"u1"`, string(params.Argument("user_id")))
	assert.Equal(t, `[1,2]`, string(params.Argument("conversations")))
	assert.Nil(t, params.Argument("missing"))
	assert.Nil(t, (&CallToolRequestParams{}).Argument("user_id"))
}

func TestNewTextResult(t *testing.T) {
	data, err := json.Marshal(NewTextResult("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":[{"type":"text","text":"hello"}]}`, string(data))
}

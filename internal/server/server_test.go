package server

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11ytree/internal/config"
	"github.com/mj1618/a11ytree/internal/describe"
	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/platform"
)

type handlerFunc func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func newTestServer(t *testing.T) (*Server, *describe.SRFirst) {
	t.Helper()
	scene := &describe.SRFirst{}
	sess, err := platform.NewSession(config.Default(), scene, true)
	require.NoError(t, err)
	return New(sess), scene
}

func call(t *testing.T, h handlerFunc, args map[string]interface{}) (map[string]interface{}, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	if res.IsError {
		return map[string]interface{}{"error": text.Text}, true
	}
	out := map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal([]byte(text.Text), &out))
	return out, false
}

func idOf(t *testing.T, s *Server, title string) string {
	t.Helper()
	for _, el := range model.FlattenElements(s.session.Elements()) {
		if el.Title == title {
			return el.ID
		}
	}
	t.Fatalf("no element titled %q", title)
	return ""
}

func TestTree(t *testing.T) {
	s, _ := newTestServer(t)
	out, isErr := call(t, s.handleTree, map[string]interface{}{"flat": true, "text": "dreamer"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, "srfirst", out["scene"])
	els := out["elements"].([]interface{})
	require.Len(t, els, 3)
	last := els[2].(map[string]interface{})
	assert.Equal(t, "Hello, Dreamer of dreams.", last["t"])
	assert.Equal(t, "main/main/hello-dreamer-of-dreams", last["ref"])
}

func TestTree_ScopeAndRoles(t *testing.T) {
	s, _ := newTestServer(t)
	out, isErr := call(t, s.handleTree, map[string]interface{}{"scope": "@main/main", "roles": "content", "flat": true})
	require.False(t, isErr, out["error"])
	assert.Len(t, out["elements"], 4)

	out, isErr = call(t, s.handleTree, map[string]interface{}{"roles": "interactive", "flat": true})
	require.False(t, isErr, out["error"])
	assert.Len(t, out["elements"], 2)
}

func TestNavigate(t *testing.T) {
	s, _ := newTestServer(t)
	out, isErr := call(t, s.handleNavigate, map[string]interface{}{"element": "root", "direction": "first"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, true, out["found"])
	assert.Equal(t, idOf(t, s, "Main"), out["element"])

	out, isErr = call(t, s.handleNavigate, map[string]interface{}{"element": "root", "direction": "parent"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, false, out["found"])

	_, isErr = call(t, s.handleNavigate, map[string]interface{}{"element": "root", "direction": "sideways"})
	assert.True(t, isErr)
}

func TestGetProperty(t *testing.T) {
	s, _ := newTestServer(t)
	out, isErr := call(t, s.handleGetProperty, map[string]interface{}{"element": "@minimize-application", "property": "name"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, "Minimize Application", out["name"])

	out, isErr = call(t, s.handleGetProperty, map[string]interface{}{"element": "@minimize-application"})
	require.False(t, isErr, out["error"])
	assert.Contains(t, out, "control-type")
	assert.Contains(t, out, "runtime-id")
}

func TestStaleElementIsToolError(t *testing.T) {
	s, _ := newTestServer(t)
	out, isErr := call(t, s.handleBoundingRect, map[string]interface{}{"element": "00000000deadbeef"})
	assert.True(t, isErr)
	assert.Contains(t, out["error"], "not in current tree")

	_, isErr = call(t, s.handleBoundingRect, map[string]interface{}{})
	assert.True(t, isErr)
}

func TestPatternsAndBoundingRect(t *testing.T) {
	s, _ := newTestServer(t)
	out, isErr := call(t, s.handlePatterns, map[string]interface{}{"element": "@main/main"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, []interface{}{"text", "value"}, out["patterns"])

	out, isErr = call(t, s.handleBoundingRect, map[string]interface{}{"element": "root"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, 1200, out["width"])
	assert.Equal(t, 800, out["height"])
}

func TestInvokeReportsChanges(t *testing.T) {
	s, scene := newTestServer(t)
	out, isErr := call(t, s.handleInvoke, map[string]interface{}{"element": "@minimize-application"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, 1, scene.Minimized)
	assert.Empty(t, out["changes"])

	_, isErr = call(t, s.handleInvoke, map[string]interface{}{"element": "@main/main"})
	assert.True(t, isErr, "documents have no action")
}

func TestFocusTools(t *testing.T) {
	s, _ := newTestServer(t)
	out, _ := call(t, s.handleGetFocus, nil)
	assert.Equal(t, "root", out["focused"])

	out, isErr := call(t, s.handleKey, map[string]interface{}{"chord": "down"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, "focus-next", out["command"])
	assert.Equal(t, idOf(t, s, "Main"), out["focused"])
	assert.Equal(t, true, out["focus_moved"])

	close := idOf(t, s, "Close Application")
	out, isErr = call(t, s.handleSetFocus, map[string]interface{}{"element": close})
	require.False(t, isErr, out["error"])
	assert.Equal(t, close, out["focused"])

	out, isErr = call(t, s.handleKey, map[string]interface{}{"chord": "return"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, false, out["focus_moved"], "activation leaves focus in place")

	_, isErr = call(t, s.handleKey, map[string]interface{}{"chord": "ctrl+x"})
	assert.True(t, isErr)
}

func TestHitTest(t *testing.T) {
	s, _ := newTestServer(t)
	out, isErr := call(t, s.handleHitTest, map[string]interface{}{"x": float64(30), "y": float64(65)})
	require.False(t, isErr, out["error"])
	assert.Equal(t, idOf(t, s, "Hello, Dreamer of dreams."), out["element"])
}

func TestRangeFindUnsupportedModes(t *testing.T) {
	s, _ := newTestServer(t)
	doc, isErr := call(t, s.handleDocumentRange, map[string]interface{}{"element": "@main/main"})
	require.False(t, isErr, doc["error"])
	h := doc["range"].(string)

	for _, flag := range []string{"ignore_case", "backward"} {
		out, isErr := call(t, s.handleRangeFind, map[string]interface{}{"range": h, "text": "Dreamer", flag: true})
		assert.True(t, isErr, flag)
		assert.Contains(t, out["error"], "not implemented", flag)
	}
}

func TestRangeLifecycle(t *testing.T) {
	s, _ := newTestServer(t)
	doc, isErr := call(t, s.handleDocumentRange, map[string]interface{}{"element": "@main/main"})
	require.False(t, isErr, doc["error"])
	h := doc["range"].(string)

	out, isErr := call(t, s.handleRangeText, map[string]interface{}{"range": h})
	require.False(t, isErr, out["error"])
	assert.Contains(t, out["text"], "Hello, Dreamer of dreams.")

	found, isErr := call(t, s.handleRangeFind, map[string]interface{}{"range": h, "text": "Dreamer"})
	require.False(t, isErr, found["error"])
	fh := found["range"].(string)

	out, _ = call(t, s.handleRangeText, map[string]interface{}{"range": fh})
	assert.Equal(t, "Dreamer", out["text"])

	out, _ = call(t, s.handleRangeEnclosing, map[string]interface{}{"range": fh})
	assert.Equal(t, idOf(t, s, "Hello, Dreamer of dreams."), out["element"])

	out, _ = call(t, s.handleRangeCompareEndpoints, map[string]interface{}{
		"range": h, "endpoint": "start", "other": fh, "other_endpoint": "start",
	})
	assert.Equal(t, -1, out["order"])

	clone, _ := call(t, s.handleRangeClone, map[string]interface{}{"range": fh})
	out, _ = call(t, s.handleRangeCompare, map[string]interface{}{"range": fh, "other": clone["range"]})
	assert.Equal(t, true, out["equal"])

	out, _ = call(t, s.handleRangeRelease, map[string]interface{}{"range": fh})
	assert.Equal(t, 1, out["released"])
	_, isErr = call(t, s.handleRangeText, map[string]interface{}{"range": fh})
	assert.True(t, isErr)

	out, _ = call(t, s.handleRangeRelease, map[string]interface{}{"range": "all"})
	assert.Equal(t, 2, out["released"])
	assert.Equal(t, 0, s.ranges.Len())
}

func TestRangeNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	doc, _ := call(t, s.handleDocumentRange, map[string]interface{}{"element": "@main/main"})
	out, isErr := call(t, s.handleRangeFind, map[string]interface{}{"range": doc["range"], "text": "absent"})
	require.False(t, isErr, out["error"])
	assert.Equal(t, false, out["found"])
}

func TestDocumentRange_RequiresTextPattern(t *testing.T) {
	s, _ := newTestServer(t)
	_, isErr := call(t, s.handleDocumentRange, map[string]interface{}{"element": "@minimize-application"})
	assert.True(t, isErr)
}

func TestRangeMoveAndExpand(t *testing.T) {
	s, _ := newTestServer(t)
	doc, _ := call(t, s.handleDocumentRange, map[string]interface{}{"element": "@main/main/this-is-the-first-paragraph"})
	h := doc["range"]

	out, isErr := call(t, s.handleRangeMove, map[string]interface{}{"range": h, "unit": "paragraph", "count": float64(1)})
	require.False(t, isErr, out["error"])
	assert.Equal(t, 1, out["moved"])
	text, _ := call(t, s.handleRangeText, map[string]interface{}{"range": h})
	assert.Equal(t, "Hello, Dreamer of dreams.", text["text"])

	_, isErr = call(t, s.handleRangeExpand, map[string]interface{}{"range": h, "unit": "sentence"})
	assert.True(t, isErr)
}

func TestRender(t *testing.T) {
	s, _ := newTestServer(t)
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{"labels": "ids"}
	res, err := s.handleRender(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)
	img, ok := res.Content[0].(mcp.ImageContent)
	require.True(t, ok)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.NotEmpty(t, img.Data)
}

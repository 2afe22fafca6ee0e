// Package server exposes a session's client contract as MCP tools.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/a11ytree/internal/logger"
	"github.com/mj1618/a11ytree/internal/platform"
	"github.com/mj1618/a11ytree/internal/version"
)

// maxOpenRanges bounds the range handles a client may hold.
const maxOpenRanges = 1024

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server serializes tool calls against one session.
type Server struct {
	mu      sync.Mutex
	session *platform.Session
	ranges  *RangeStore
	mcp     *mcpserver.MCPServer
}

// New creates a server with every tool registered.
func New(session *platform.Session) *Server {
	s := &Server{
		session: session,
		ranges:  NewRangeStore(maxOpenRanges),
		mcp:     mcpserver.NewMCPServer("a11ytree", version.Version),
	}
	s.registerTools()
	return s
}

// Serve blocks serving the configured transport.
func (s *Server) Serve(cfg Config) error {
	logger.Info("mcp server starting", "transport", cfg.Transport, "port", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func element(desc string) mcp.ToolOption {
	return mcp.WithString("element", mcp.Description(desc+`: "root", a hex id, or "@ref"`), mcp.Required())
}

func handle(name string) mcp.ToolOption {
	return mcp.WithString(name, mcp.Description("Range handle returned by another range tool"), mcp.Required())
}

func endpoint(name string) mcp.ToolOption {
	return mcp.WithString(name, mcp.Description("Endpoint: start or end"), mcp.Required())
}

func unit() mcp.ToolOption {
	return mcp.WithString("unit", mcp.Description("Text unit: character, format, word, line, paragraph, page, document"), mcp.Required())
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Return the current element tree with ids, roles, names, screen bounds, focus and refs"),
			mcp.WithString("scope", mcp.Description(`Only return this element's subtree ("root", hex id or "@ref")`)),
			mcp.WithBoolean("flat", mcp.Description("Return a flat list with path breadcrumbs")),
			mcp.WithString("text", mcp.Description("Only keep elements whose name contains this text")),
			mcp.WithString("roles", mcp.Description("Comma-separated roles or meta-roles (btn, txt, doc, pane, interactive, content)")),
			mcp.WithBoolean("focused", mcp.Description("Only return the focused element and its ancestors")),
		),
		s.handleTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("navigate",
			mcp.WithDescription("Step from an element to its parent, next or previous sibling, or first or last child"),
			element("Starting element"),
			mcp.WithString("direction", mcp.Description("parent, next, prev, first, last"), mcp.Required()),
		),
		s.handleNavigate,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_property",
			mcp.WithDescription("Read one property of an element, or all of them when property is omitted"),
			element("Element"),
			mcp.WithString("property", mcp.Description("Property name, e.g. name, control-type, has-keyboard-focus, runtime-id")),
		),
		s.handleGetProperty,
	)

	s.mcp.AddTool(
		mcp.NewTool("bounding_rect",
			mcp.WithDescription("Return an element's rectangle in screen coordinates"),
			element("Element"),
		),
		s.handleBoundingRect,
	)

	s.mcp.AddTool(
		mcp.NewTool("patterns",
			mcp.WithDescription("List the control patterns (text, value, invoke) an element supports"),
			element("Element"),
		),
		s.handlePatterns,
	)

	s.mcp.AddTool(
		mcp.NewTool("invoke",
			mcp.WithDescription("Activate a button and return the resulting tree changes"),
			element("Button"),
		),
		s.handleInvoke,
	)

	s.mcp.AddTool(
		mcp.NewTool("set_focus",
			mcp.WithDescription("Move keyboard focus to an element; the root clears focus"),
			element("Element"),
		),
		s.handleSetFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_focus",
			mcp.WithDescription("Return the focused element, or root when nothing is focused"),
		),
		s.handleGetFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("hit_test",
			mcp.WithDescription("Return the deepest element under a screen point"),
			mcp.WithNumber("x", mcp.Description("Screen X"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Screen Y"), mcp.Required()),
		),
		s.handleHitTest,
	)

	s.mcp.AddTool(
		mcp.NewTool("key",
			mcp.WithDescription("Press and release a key chord (up, down, tab, shift+tab, return, space, escape)"),
			mcp.WithString("chord", mcp.Description("Key chord, e.g. 'down' or 'shift+tab'"), mcp.Required()),
		),
		s.handleKey,
	)

	s.mcp.AddTool(
		mcp.NewTool("render",
			mcp.WithDescription("Render the laid-out tree as a PNG with element outlines and labels"),
			mcp.WithString("labels", mcp.Description("Label mode: names or ids (default: names)")),
		),
		s.handleRender,
	)

	s.registerRangeTools()
}

func (s *Server) registerRangeTools() {
	s.mcp.AddTool(
		mcp.NewTool("document_range",
			mcp.WithDescription("Open a text range spanning a document or text element and its descendants"),
			element("Element supporting the text pattern"),
		),
		s.handleDocumentRange,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_from_point",
			mcp.WithDescription("Open an empty text range at the element under a screen point, inside a text provider"),
			element("Element supporting the text pattern"),
			mcp.WithNumber("x", mcp.Description("Screen X"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Screen Y"), mcp.Required()),
		),
		s.handleRangeFromPoint,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_text",
			mcp.WithDescription("Return the plain text of a range"),
			handle("range"),
			mcp.WithNumber("max_length", mcp.Description("Maximum characters (-1 = unlimited)")),
		),
		s.handleRangeText,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_find",
			mcp.WithDescription("Search a range for text and open a range on the match"),
			handle("range"),
			mcp.WithString("text", mcp.Description("Text to find"), mcp.Required()),
			mcp.WithBoolean("backward", mcp.Description("Backward search; unsupported, fails with not implemented")),
			mcp.WithBoolean("ignore_case", mcp.Description("Case-insensitive search; unsupported, fails with not implemented")),
		),
		s.handleRangeFind,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_move",
			mcp.WithDescription("Move a range by count units and report how many units it moved"),
			handle("range"),
			unit(),
			mcp.WithNumber("count", mcp.Description("Units to move; negative moves backward"), mcp.Required()),
		),
		s.handleRangeMove,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_expand",
			mcp.WithDescription("Expand a range to the enclosing text unit"),
			handle("range"),
			unit(),
		),
		s.handleRangeExpand,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_compare",
			mcp.WithDescription("Report whether two ranges have identical endpoints"),
			handle("range"),
			handle("other"),
		),
		s.handleRangeCompare,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_compare_endpoints",
			mcp.WithDescription("Order an endpoint of one range against an endpoint of another (-1, 0, 1)"),
			handle("range"),
			endpoint("endpoint"),
			handle("other"),
			endpoint("other_endpoint"),
		),
		s.handleRangeCompareEndpoints,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_move_endpoint_by_range",
			mcp.WithDescription("Move one endpoint of a range onto an endpoint of another range"),
			handle("range"),
			endpoint("endpoint"),
			handle("other"),
			endpoint("other_endpoint"),
		),
		s.handleRangeMoveEndpointByRange,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_enclosing",
			mcp.WithDescription("Return the innermost element enclosing a range"),
			handle("range"),
		),
		s.handleRangeEnclosing,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_rects",
			mcp.WithDescription("Return the screen rectangles covered by a range"),
			handle("range"),
		),
		s.handleRangeRects,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_children",
			mcp.WithDescription("Return the elements inside a range"),
			handle("range"),
		),
		s.handleRangeChildren,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_clone",
			mcp.WithDescription("Copy a range into a new handle"),
			handle("range"),
		),
		s.handleRangeClone,
	)

	s.mcp.AddTool(
		mcp.NewTool("range_release",
			mcp.WithDescription(`Release a range handle, or every handle with "all"`),
			handle("range"),
		),
		s.handleRangeRelease,
	)
}

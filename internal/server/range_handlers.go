package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/a11ytree/internal/a11y"
	"github.com/mj1618/a11ytree/internal/uitree"
)

func (s *Server) rangeArg(params map[string]interface{}, key string) (*a11y.TextRange, error) {
	h, err := requireString(params, key)
	if err != nil {
		return nil, err
	}
	return s.ranges.Get(h)
}

func (s *Server) putRange(r *a11y.TextRange) (interface{}, error) {
	h, err := s.ranges.Put(r)
	if err != nil {
		return nil, err
	}
	return rangeResult{Handle: h, Span: r.Range()}, nil
}

func (s *Server) textProvider(params map[string]interface{}) (*a11y.TextProvider, error) {
	e, err := s.target(params)
	if err != nil {
		return nil, err
	}
	p, ok, err := s.session.Host.TextPattern(e)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s does not support the text pattern", uitree.ErrInvalidArgument, e)
	}
	return p, nil
}

// endpointPair reads the range/endpoint/other/other_endpoint arguments.
func (s *Server) endpointPair(params map[string]interface{}) (*a11y.TextRange, uitree.Endpoint, *a11y.TextRange, uitree.Endpoint, error) {
	r, err := s.rangeArg(params, "range")
	if err != nil {
		return nil, 0, nil, 0, err
	}
	ep, err := uitree.ParseEndpoint(StringParam(params, "endpoint", ""))
	if err != nil {
		return nil, 0, nil, 0, err
	}
	o, err := s.rangeArg(params, "other")
	if err != nil {
		return nil, 0, nil, 0, err
	}
	oep, err := uitree.ParseEndpoint(StringParam(params, "other_endpoint", ""))
	if err != nil {
		return nil, 0, nil, 0, err
	}
	return r, ep, o, oep, nil
}

func (s *Server) handleDocumentRange(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		p, err := s.textProvider(params)
		if err != nil {
			return nil, err
		}
		r, err := p.DocumentRange()
		if err != nil {
			return nil, err
		}
		return s.putRange(r)
	})
}

func (s *Server) handleRangeFromPoint(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		p, err := s.textProvider(params)
		if err != nil {
			return nil, err
		}
		r, err := p.RangeFromPoint(uitree.Point{X: IntParam(params, "x", 0), Y: IntParam(params, "y", 0)})
		if err != nil {
			return nil, err
		}
		return s.putRange(r)
	})
}

func (s *Server) handleRangeText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		text, err := r.Text(IntParam(params, "max_length", -1))
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"text": text}, nil
	})
}

func (s *Server) handleRangeFind(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		found, err := r.FindText(StringParam(params, "text", ""), BoolParam(params, "backward", false), BoolParam(params, "ignore_case", false))
		if err != nil {
			return nil, err
		}
		if found == nil {
			return map[string]interface{}{"found": false}, nil
		}
		return s.putRange(found)
	})
}

func (s *Server) handleRangeMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		u, err := uitree.ParseTextUnit(StringParam(params, "unit", ""))
		if err != nil {
			return nil, err
		}
		moved, err := r.Move(u, IntParam(params, "count", 0))
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"moved": moved, "span": r.Range()}, nil
	})
}

func (s *Server) handleRangeExpand(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		u, err := uitree.ParseTextUnit(StringParam(params, "unit", ""))
		if err != nil {
			return nil, err
		}
		if err := r.ExpandToEnclosingUnit(u); err != nil {
			return nil, err
		}
		return map[string]interface{}{"span": r.Range()}, nil
	})
}

func (s *Server) handleRangeCompare(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		o, err := s.rangeArg(params, "other")
		if err != nil {
			return nil, err
		}
		eq, err := r.Compare(o)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"equal": eq}, nil
	})
}

func (s *Server) handleRangeCompareEndpoints(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, ep, o, oep, err := s.endpointPair(params)
		if err != nil {
			return nil, err
		}
		cmp, err := r.CompareEndpoints(ep, o, oep)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"order": cmp}, nil
	})
}

func (s *Server) handleRangeMoveEndpointByRange(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, ep, o, oep, err := s.endpointPair(params)
		if err != nil {
			return nil, err
		}
		if err := r.MoveEndpointByRange(ep, o, oep); err != nil {
			return nil, err
		}
		return map[string]interface{}{"span": r.Range()}, nil
	})
}

func (s *Server) handleRangeEnclosing(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		e, err := r.EnclosingElement()
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"element": e.String()}, nil
	})
}

func (s *Server) handleRangeRects(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		rects, err := r.BoundingRectangles()
		if err != nil {
			return nil, err
		}
		out := make([]rectResult, len(rects))
		for i, rc := range rects {
			out[i] = toRect(rc)
		}
		return map[string]interface{}{"rects": out}, nil
	})
}

func (s *Server) handleRangeChildren(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		children, err := r.Children()
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(children))
		for i, c := range children {
			ids[i] = c.String()
		}
		return map[string]interface{}{"children": ids}, nil
	})
}

func (s *Server) handleRangeClone(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		r, err := s.rangeArg(params, "range")
		if err != nil {
			return nil, err
		}
		return s.putRange(r.Clone())
	})
}

func (s *Server) handleRangeRelease(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		h, err := requireString(params, "range")
		if err != nil {
			return nil, err
		}
		if h == "all" {
			n := s.ranges.Len()
			s.ranges.ReleaseAll()
			return map[string]interface{}{"released": n}, nil
		}
		if !s.ranges.Release(h) {
			return nil, fmt.Errorf("unknown range handle %q", h)
		}
		return map[string]interface{}{"released": 1}, nil
	})
}

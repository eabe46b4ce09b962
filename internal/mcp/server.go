package mcp

import (
	"context"
	"encoding/json"
	"io"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/david-aftergut/ILHealth-mcp/internal/tools"
)

type Server struct {
	registry *tools.Registry
	handler  *Handler
}

func NewServer(registry *tools.Registry) *Server {
	return &Server{
		registry: registry,
		handler:  NewHandler(registry),
	}
}

func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	return s.handler.Handle(ctx, req)
}

func (s *Server) Registry() *tools.Registry {
	return s.registry
}

// Serve runs the MCP session over rwc (normally stdin/stdout) until the peer
// disconnects or ctx is cancelled. Tool calls are dispatched asynchronously;
// the gateway itself has no shared mutable state to protect.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.PlainObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.AsyncHandler(&connHandler{server: s}))
	defer conn.Close()

	select {
	case <-conn.DisconnectNotify():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// connHandler adapts jsonrpc2 requests onto the MCP handler.
type connHandler struct {
	server *Server
}

func (h *connHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params map[string]interface{}
	if req.Params != nil {
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			if !req.Notif {
				conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
					Code:    jsonrpc2.CodeInvalidParams,
					Message: "Invalid params",
				})
			}
			return
		}
	}

	protoReq := &Request{
		JSONRPC: "2.0",
		Method:  req.Method,
		Params:  params,
	}
	if !req.Notif {
		protoReq.ID = req.ID.String()
	}

	resp := h.server.HandleRequest(ctx, protoReq)

	if req.Notif {
		return
	}

	if resp.Error != nil {
		conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    int64(resp.Error.Code),
			Message: resp.Error.Message,
		})
		return
	}

	conn.Reply(ctx, req.ID, resp.Result)
}

// StdioStream glues separate read and write halves into the ReadWriteCloser
// a jsonrpc2 stream wants.
type StdioStream struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func NewStdioStream(reader io.ReadCloser, writer io.WriteCloser) *StdioStream {
	return &StdioStream{reader: reader, writer: writer}
}

func (s *StdioStream) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *StdioStream) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

func (s *StdioStream) Close() error {
	rerr := s.reader.Close()
	werr := s.writer.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/viant/jsonrpc"

	"github.com/mentraflow/mcp/schema"
)

const defaultReadBufferSize = 64 * 1024

var nullId = json.RawMessage("null")

// message is the loosely typed shape of an inbound line; the id is kept raw
// so it can be echoed verbatim.
type message struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

func (m *message) isNotification() bool {
	return len(m.Id) == 0 && strings.HasPrefix(m.Method, schema.NotificationPrefix)
}

// StdioOption configures a Stdio transport.
type StdioOption func(s *Stdio)

// WithDrain makes ListenAndServe wait for in-flight requests once input ends.
func WithDrain() StdioOption {
	return func(s *Stdio) {
		s.drain = true
	}
}

// WithReadBufferSize sets the size of a single read from the input stream.
func WithReadBufferSize(size int) StdioOption {
	return func(s *Stdio) {
		if size > 0 {
			s.readBufferSize = size
		}
	}
}

// Stdio serves newline-delimited JSON-RPC over a reader/writer pair.
type Stdio struct {
	ctx            context.Context
	handler        *Handler
	reader         io.Reader
	writer         io.Writer
	logger         *slog.Logger
	framer         Framer
	mux            sync.Mutex
	inFlight       sync.WaitGroup
	drain          bool
	readBufferSize int
}

// ListenAndServe reads input until end of stream. Each complete line is
// dispatched on its own goroutine. An incomplete trailing line is discarded.
func (s *Stdio) ListenAndServe() error {
	buffer := make([]byte, s.readBufferSize)
	for {
		n, err := s.reader.Read(buffer)
		if n > 0 {
			for _, line := range s.framer.Feed(buffer[:n]) {
				s.inFlight.Add(1)
				go s.dispatch(line)
			}
		}
		if err == nil {
			continue
		}
		if s.drain {
			s.inFlight.Wait()
		} else {
			s.handler.cancelActive("input closed")
		}
		if errors.Is(err, io.EOF) {
			if pending := s.framer.Pending(); pending > 0 {
				s.logger.Debug("discarding incomplete message", "bytes", pending)
			}
			return nil
		}
		return err
	}
}

func (s *Stdio) dispatch(line []byte) {
	defer s.inFlight.Done()
	aMessage := &message{}
	if line[0] != '{' || json.Unmarshal(line, aMessage) != nil {
		s.logger.Warn("failed to parse message", "line", truncate(line, 256))
		s.write(&jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: nullId, Error: schema.NewParseError()})
		return
	}
	if aMessage.isNotification() {
		s.handler.OnNotification(s.ctx, &jsonrpc.Notification{Method: aMessage.Method, Params: aMessage.Params})
		return
	}
	id := aMessage.Id
	if len(id) == 0 {
		id = nullId
	}
	request := &jsonrpc.Request{Jsonrpc: aMessage.Jsonrpc, Id: id, Method: aMessage.Method, Params: aMessage.Params}
	response := &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: id}
	s.serve(request, response)
	s.write(response)
}

func (s *Stdio) serve(request *jsonrpc.Request, response *jsonrpc.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic", "method", request.Method, "panic", r)
			response.Result = nil
			response.Error = schema.NewInternalError(fmt.Sprintf("%v", r))
		}
	}()
	s.handler.Serve(s.ctx, request, response)
}

// write emits one response as a single line; writes never interleave.
func (s *Stdio) write(response *jsonrpc.Response) {
	data, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("failed to encode response", "error", err)
		data, _ = json.Marshal(&jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: response.Id, Error: schema.NewInternalError(err.Error())})
	}
	data = append(data, '\n')
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, err := s.writer.Write(data); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func truncate(data []byte, limit int) string {
	if len(data) <= limit {
		return string(data)
	}
	return string(data[:limit]) + "..."
}

// Stdio returns a stdio transport serving this server over in and out.
func (s *Server) Stdio(ctx context.Context, in io.Reader, out io.Writer, options ...StdioOption) *Stdio {
	ret := &Stdio{
		ctx:            ctx,
		handler:        s.NewHandler(),
		reader:         in,
		writer:         out,
		logger:         s.logger,
		readBufferSize: defaultReadBufferSize,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

package httpx

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"cubeserve/internal/config"
	"cubeserve/internal/fragment"
)

const (
	TestPageMarker = "test-video-cube-fixed"
	TestPagePath   = "/" + TestPageMarker + ".html"
)

type State int32

const (
	Stopped State = iota
	Listening
)

func (st State) String() string {
	if st == Listening {
		return "listening"
	}
	return "stopped"
}

/*
Server owns the listener, the fragment source and the parsed templates.
main creates exactly one and stops it on SIGINT/SIGTERM.
*/
type Server struct {
	Config     Config
	Fragment   *fragment.Source
	Log        logrus.FieldLogger
	PageTmpl   *template.Template
	SourceTmpl *template.Template

	files    http.Handler
	started  time.Time
	requests atomic.Int64
	serial   sync.Mutex

	mu      sync.Mutex
	state   State
	ln      net.Listener
	httpSrv *http.Server
}

type Config struct {
	Root  string // served directory
	Match string // config.MatchExact | config.MatchSubstring
}

func NewServer(cfg Config, src *fragment.Source, log logrus.FieldLogger, page, source *template.Template) *Server {
	if cfg.Match == "" {
		cfg.Match = config.MatchExact
	}
	return &Server{
		Config:     cfg,
		Fragment:   src,
		Log:        log,
		PageTmpl:   page,
		SourceTmpl: source,
		files:      http.FileServer(http.Dir(cfg.Root)),
		started:    time.Now(),
	}
}

// Listen binds addr. The server is Listening once it returns nil.
func (s *Server) Listen(addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Listening {
		return errors.New("server already listening")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	s.httpSrv = &http.Server{Handler: s.Handler()}
	s.state = Listening
	return nil
}

// Serve blocks until Shutdown. It returns nil after a clean stop.
func (s *Server) Serve() error {
	s.mu.Lock()
	srv, ln := s.httpSrv, s.ln
	s.mu.Unlock()
	if srv == nil {
		return errors.New("server not listening")
	}
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.setStopped()
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv, ln := s.httpSrv, s.ln
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	defer s.setStopped()
	err := srv.Shutdown(ctx)
	// Serve may never have taken ownership of the listener.
	_ = ln.Close()
	return err
}

// setStopped drops the finished http.Server and listener; Listen makes new ones.
func (s *Server) setStopped() {
	s.mu.Lock()
	s.state = Stopped
	s.httpSrv = nil
	s.ln = nil
	s.mu.Unlock()
}

func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Port is the bound TCP port, useful when listening on ":0".
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return 0
	}
	if tcp, ok := s.ln.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Banner prints the startup lines.
func Banner(w io.Writer, port int) {
	fmt.Fprintf(w, "Server running at http://localhost:%d/\n", port)
	fmt.Fprintf(w, "Test the video cube at: http://localhost:%d%s\n", port, TestPagePath)
	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
}

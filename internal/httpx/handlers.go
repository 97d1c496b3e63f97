package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"cubeserve/internal/fragment"
	"cubeserve/internal/lint"
	"cubeserve/internal/model"
	"cubeserve/internal/render"
	"cubeserve/internal/util"
)

func (s *Server) reqLog(r *http.Request) logrus.FieldLogger {
	return s.Log.WithFields(logrus.Fields{
		"path":       r.URL.Path,
		"request_id": GetRequestID(r.Context()),
	})
}

func handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if s.isTestPage(r.URL.Path) {
		s.handleTestPage(w, r)
		return
	}
	// http.FileServer redirects ".../index.html" to ".../"; serve the bytes.
	if strings.HasSuffix(r.URL.Path, "/index.html") {
		s.serveFile(w, r, r.URL.Path)
		return
	}
	s.files.ServeHTTP(w, r)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := http.Dir(s.Config.Root).Open(name)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			http.NotFound(w, r)
		case errors.Is(err, fs.ErrPermission):
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		default:
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
}

// handleTestPage reads the fragment fresh and wraps it into the test page.
// There is no fallback: any read failure is a 500 for this request.
func (s *Server) handleTestPage(w http.ResponseWriter, r *http.Request) {
	log := s.reqLog(r)
	content, err := s.Fragment.Read()
	if err != nil {
		log.WithError(err).WithField("fragment", s.Fragment.Path()).Error("test page: read fragment")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if findings := lint.Scan(content); len(findings) > 0 {
		log.WithField("findings", len(findings)).Warn("fragment lint:\n" + lint.Brief(findings, 5))
	}

	var buf bytes.Buffer
	if err := s.PageTmpl.Execute(&buf, model.NewTestPage(content)); err != nil {
		log.WithError(err).Error("test page: render")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// handleSource shows the fragment with syntax highlighting. ?t=light|dark,
// ?hl=3,5-7, ?raw=1 for plain text.
func (s *Server) handleSource(w http.ResponseWriter, r *http.Request) {
	log := s.reqLog(r)
	content, err := s.Fragment.Read()
	switch {
	case errors.Is(err, fragment.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		log.WithError(err).Error("source: read fragment")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	if util.IsTruthy(q.Get("raw")) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, content)
		return
	}

	theme := strings.ToLower(strings.TrimSpace(q.Get("t")))
	if _, ok := render.Themes[theme]; !ok {
		theme = "dark"
	}
	hlParam := strings.TrimSpace(q.Get("hl"))

	html, err := render.CodeHTML(content, "html", theme, util.ParseHL(hlParam))
	if err != nil {
		log.WithError(err).Error("source: highlight")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = s.SourceTmpl.Execute(&buf, map[string]any{
		"Path":     s.Fragment.Rel(),
		"Size":     util.HumanBytes(uint64(len(content))),
		"Theme":    theme,
		"HL":       hlParam,
		"TestPage": TestPagePath,
		"Findings": lint.Brief(lint.Scan(content), 10),
		"HTML":     html,
	})
	if err != nil {
		log.WithError(err).Error("source: render")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

type statusResp struct {
	State    string         `json:"state"`
	Uptime   string         `json:"uptime"`
	Requests int64          `json:"requests"`
	Match    string         `json:"match"`
	TestPage string         `json:"test_page"`
	Fragment fragment.Info  `json:"fragment"`
	Findings []lint.Finding `json:"findings,omitempty"`
	Error    string         `json:"error,omitempty"`

	GoAlloc        string  `json:"go_alloc"`
	GoSys          string  `json:"go_sys"`
	HostMemTotal   string  `json:"host_mem_total,omitempty"`
	HostMemPercent float64 `json:"host_mem_percent,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	alloc, sys := util.MemUsage()
	resp := statusResp{
		State:    s.State().String(),
		Uptime:   time.Since(s.started).Round(time.Second).String(),
		Requests: s.requests.Load(),
		Match:    s.Config.Match,
		TestPage: TestPagePath,
		GoAlloc:  util.HumanBytes(alloc),
		GoSys:    util.HumanBytes(sys),
	}

	info, err := s.Fragment.Stat()
	resp.Fragment = info
	if err == nil && info.Exists {
		var content string
		content, err = s.Fragment.Read()
		if err == nil {
			resp.Findings = lint.Scan(content)
		}
	}
	if err != nil {
		resp.Error = err.Error()
	}

	if total, _, pct, err := util.HostMem(); err == nil {
		resp.HostMemTotal = util.HumanBytes(total)
		resp.HostMemPercent = pct
	} else {
		s.reqLog(r).WithError(err).Debug("status: host memory")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

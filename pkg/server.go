package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sort"
	"sync"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
)

// Server hosts the board viewer over ssh, one pseudo-terminal per session
type Server struct {
	*ssh.Server
	Config ServerConfig

	mu      sync.Mutex
	viewers map[string]*Viewer
}

func NewServer(cfg ServerConfig) (*Server, error) {
	signer, err := hostSigner(cfg.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("host key: %w", err)
	}
	if cfg.HostKeyPath == "" {
		logrus.Warn("no host key configured, using an ephemeral key")
	}

	s := &Server{
		Config:  cfg,
		viewers: make(map[string]*Viewer),
	}
	s.Server = &ssh.Server{
		Addr:        cfg.Addr,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     s.handle,
	}
	s.AddHostKey(signer)
	return s, nil
}

// ListenAndServe blocks until the server is closed
func (s *Server) ListenAndServe() error {
	logrus.Infof("listening at %s", s.Config.Addr)
	err := s.Server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

// Viewers lists the connected sessions, oldest first
func (s *Server) Viewers() []*Viewer {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := make([]*Viewer, 0, len(s.viewers))
	for _, v := range s.viewers {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Started.Before(vs[j].Started) })
	return vs
}

func (s *Server) addViewer(v *Viewer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewers[v.ID] = v
}

func (s *Server) removeViewer(v *Viewer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.viewers, v.ID)
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	v := NewViewer(sess.User(), ptyReq.Term)
	s.addViewer(v)
	defer s.removeViewer(v)
	log := logrus.WithFields(logrus.Fields{"viewer": v.Name, "id": v.ID})
	log.Infof("session opened by %s from %s", v.User, sess.RemoteAddr())

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Config.Viewer)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Errorf("failed to start viewer: %s", err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	// The resize loop must be gone before f is closed
	resizeCtx, stopResize := context.WithCancel(sess.Context())
	var resizing sync.WaitGroup
	resizing.Add(1)
	go func() {
		defer resizing.Done()
		for {
			select {
			case win, ok := <-winCh:
				if !ok {
					return
				}
				if err := pty.Setsize(f, winsize(win)); err != nil {
					log.Debugf("resize: %s", err)
				}
			case <-resizeCtx.Done():
				return
			}
		}
	}()
	defer func() {
		stopResize()
		resizing.Wait()
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	code := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			code = 1
		}
		log.Infof("viewer exited: %s", err)
	}
	log.Info("session closed")
	sess.Exit(code)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}

// dungeon-server serves the dungeon over SSH; every connection gets its own
// freshly generated level. Build:
//
//	go build -o dungeon-server ./cmd/server
//
// Usage:
//
//	./dungeon-server [-config dungeon.yaml] [-port 2222] [-key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"sync"

	"dungeon-roguelike/internal/config"
	"dungeon-roguelike/internal/game"
	"dungeon-roguelike/internal/logger"
	internalssh "dungeon-roguelike/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

// allowedTerms are the TERM values we will load terminfo for.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu serialises os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	port := flag.Int("port", 0, "SSH server port (overrides config)")
	keyFile := flag.String("key", "", "PEM host key path (overrides config; generated if absent)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid config: %v\n", err)
		os.Exit(1)
	}
	closer := logger.Init(cfg.Logging)
	defer closer.Close()

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey)
	if err != nil {
		logger.Log.WithError(err).Fatal("host key")
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg.Level)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: the server only hands out read-only levels.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Log.WithField("port", cfg.Server.Port).Info("dungeon SSH server listening")
	logger.Log.Fatal(srv.ListenAndServe())
}

// handleSession runs one game for the lifetime of the connection.
func handleSession(s gossh.Session, level config.LevelConfig) {
	log := logger.Log.WithFields(logrus.Fields{
		"user":   s.User(),
		"remote": s.RemoteAddr().String(),
	})

	tty, ok := internalssh.NewTty(s)
	if !ok {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	term := tty.Term()
	if !allowedTerms[term] {
		term = "xterm-256color"
	}

	screen, err := newSessionScreen(tty, term)
	if err != nil {
		log.WithError(err).Warn("terminal setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	log.WithField("term", term).Info("session started")
	game.New(screen, level).Run()
	log.Info("session ended")
}

func newSessionScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	logger.Log.WithField("path", path).Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run; failure only costs a new key next time.
	if block, err := xssh.MarshalPrivateKey(key, "dungeon server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			logger.Log.WithError(err).Warn("could not save host key")
		}
	}
	return signer, nil
}

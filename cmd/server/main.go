package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Mshel/junction/internal/game"
	"github.com/Mshel/junction/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

type connectionLimiter struct {
	mu        sync.Mutex
	ipCounter map[string]int
	limit     int
}

func newConnectionLimiter(limit int) *connectionLimiter {
	return &connectionLimiter{ipCounter: make(map[string]int), limit: limit}
}

func getIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

// acquire reserves a slot for ip and reports the count it saw.
func (l *connectionLimiter) acquire(ip string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current := l.ipCounter[ip]
	if current >= l.limit {
		return current, false
	}
	l.ipCounter[ip]++
	return current + 1, true
}

func (l *connectionLimiter) release(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ipCounter[ip]--
	if l.ipCounter[ip] <= 0 {
		delete(l.ipCounter, ip)
		return 0
	}
	return l.ipCounter[ip]
}

func (l *connectionLimiter) middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := getIP(s)

		count, ok := l.acquire(ip)
		if !ok {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", count+1, "current_limit", l.limit)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (%d/%d). Please try again later.\r\n", count+1, l.limit)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}

		log.Info("Connection accepted", "ip", ip, "current_count", count, "limit", l.limit)
		next(s)
		log.Info("Connection closed and counter decremented", "ip", ip, "count_after", l.release(ip))
	}
}

func main() {
	if err := run(); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := game.LoadConfig(game.ConfigPath())
	if err != nil {
		return err
	}
	closeLog, err := game.ConfigureLogging(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	var journal *game.JournalService
	if cfg.Journal.Enabled {
		journal, err = game.NewJournalService(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer journal.Close()
	}

	// every session gets its own world, only the journal is shared
	viewHandler := func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sshSession.Pty()
		controllerModel := ui.NewControllerModel(cfg, journal, pty.Window.Width, pty.Window.Height)
		return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
	}

	limiter := newConnectionLimiter(cfg.Server.MaxConnectionsPerIP)
	address := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	sshServer, err := wish.NewServer(
		wish.WithAddress(address),
		wish.WithHostKeyPath(cfg.Server.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler),
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.middleware,
		),
	)
	if err != nil {
		return fmt.Errorf("create ssh server: %w", err)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "address", address)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("stop server: %w", err)
	}
	return nil
}

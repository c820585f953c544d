package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/client/client"
	"github.com/dmitrijs2005/bowlsignup/internal/client/config"
	"github.com/dmitrijs2005/bowlsignup/internal/client/mirror"
	"github.com/dmitrijs2005/bowlsignup/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bowlsignup/internal/client/router"
	"github.com/dmitrijs2005/bowlsignup/internal/client/services"
	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/models"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type signupSubmitter interface {
	Submit(ctx context.Context, candidate models.Candidate) error
}

type adminOperations interface {
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	Export(ctx context.Context) (string, error)
}

type recordView interface {
	Records() []models.Bowler
	Loading() bool
	Err() error
}

type App struct {
	config  *config.Config
	auth    services.AuthService
	signup  signupSubmitter
	admin   adminOperations
	records recordView
	router  *router.Router
	logger  logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode

	closers []func()
}

// NewApp opens the session store, dials the server and starts mirroring the
// bowlers collection.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	return newApp(ctx, c, logger, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDSN)
	if err != nil {
		logger.Error(ctx, "error initializing session store", "error", err)
		return nil, err
	}

	apiClient, err := client.NewBowlerClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(apiClient, metadata.NewSQLiteRepository(db), logger)
	session, err := auth.Restore(ctx)
	if err != nil {
		_ = apiClient.Close()
		_ = db.Close()
		return nil, fmt.Errorf("session restore error: %w", err)
	}

	m := mirror.New(logger)

	a := &App{
		config:  c,
		auth:    auth,
		signup:  services.NewSignupService(apiClient, m, logger),
		admin:   services.NewAdminService(apiClient, m, c.ExportDir, logger),
		records: m,
		router:  router.New("", session),
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     &lockedWriter{w: out},
	}

	m.OnFailure(func(err error) {
		fmt.Fprintf(a.out, "\nLive updates stopped, restart the client to resume: %v\n", err)
	})
	stopFeed := m.Attach(ctx, apiClient)

	a.closers = []func(){
		stopFeed,
		func() { _ = auth.Close(context.Background()) },
		func() { _ = db.Close() },
	}

	return a, nil
}

// lockedWriter serializes writes from the REPL and the subscription
// goroutine.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(context.Background(), "mode switched", "mode", string(mode))
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) getStatus() string {
	s := a.router.Current().String()
	if m := a.currentMode(); m != "" {
		s = s + " " + string(m)
	}
	return fmt.Sprintf("(%s)", s)
}

// Run drives the REPL until the user exits or input ends, then releases
// the subscription, the connection and the session store.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to bowlsignup (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	for _, fn := range a.closers {
		fn()
	}
	a.closers = nil
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

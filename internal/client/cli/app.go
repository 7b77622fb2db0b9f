package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/config"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/session"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It owns one Session and a reader over stdin.
type App struct {
	session *session.Session
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	s, err := session.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{session: s, log: log, reader: bufio.NewReader(os.Stdin)}, nil
}

// Run restores any persisted session and enters the REPL. Blocks until the
// user quits or stdin closes.
func (a *App) Run(ctx context.Context) error {
	defer a.session.Close()

	if a.session.Restore(ctx) {
		if u, ok := a.session.Auth.CurrentUser(ctx); ok {
			printlnFn("Welcome back, " + u.UserName)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Auth.IsAuthenticated()
}

func (a *App) status() string {
	if u, ok := a.session.Auth.CurrentUser(context.Background()); ok && a.isLoggedIn() {
		return u.UserName
	}
	return "guest"
}

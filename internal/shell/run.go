package shell

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sqlitekit/sqlitekit"
	"github.com/sqlitekit/sqlitekit/internal/log"
	"github.com/sqlitekit/sqlitekit/internal/shell/config"
	"github.com/sqlitekit/sqlitekit/internal/styled"
	"github.com/sqlitekit/sqlitekit/internal/version"
)

// Run runs the litesh interactive shell.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.ShellVersion())

	level := slog.LevelInfo
	if conf.Profile {
		level = slog.LevelDebug
	}
	logger := log.NewLogger(os.Stdout, level)

	conn, err := sqlitekit.Open(conf.Path, conf.ParsedEncoding)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", conf.Path, err)
	}
	defer conn.Close()

	sh := NewShell(ctx, stop, conf, conn, logger)
	defer sh.Shutdown()
	go func() {
		if err := sh.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	styled.DimmedColor().Printf("\nGoodbye!\n\n")
	return nil
}

package shell

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/sqlitekit/sqlitekit"
	"github.com/sqlitekit/sqlitekit/internal/log"
	"github.com/sqlitekit/sqlitekit/internal/shell/config"
	"github.com/sqlitekit/sqlitekit/internal/styled"
	"github.com/sqlitekit/sqlitekit/internal/util/sysutil"
)

type Shell struct {
	conf        config.Config
	conn        *sqlitekit.Connection
	logger      log.Logger
	ctx         context.Context
	stop        context.CancelFunc
	historyPath string
}

func NewShell(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	conn *sqlitekit.Connection,
	logger log.Logger,
) Shell {
	return Shell{
		conf:        conf,
		conn:        conn,
		logger:      logger,
		ctx:         ctx,
		stop:        stop,
		historyPath: filepath.Join(os.TempDir(), ".litesh_history"),
	}
}

func (s *Shell) Start() error {
	if s.conf.Profile {
		s.conn.Profile(func(sql string, elapsed time.Duration) {
			s.logger.DebugNs("profile", "statement finished", log.KV{
				"sql":     sql,
				"elapsed": elapsed.String(),
			})
		})
	}

	fmt.Println()
	fmt.Printf("Connected to %s\n", s.conf.Path)
	styled.DimmedColor().Println(`Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Println()

	for {
		select {
		case <-s.ctx.Done():
			return nil
		default:
			input := s.prompt()

			if input == "" {
				continue
			}

			if input == "exit" || input == ".exit" || input == ".quit" {
				s.Shutdown()
				return nil
			}

			if input == "clear" || input == ".clear" {
				sysutil.ClearTerminal()
				continue
			}

			if input == "help" || input == ".help" {
				cmdHelp()
				continue
			}

			if input == ".tables" {
				cmdQuery(s, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
				continue
			}

			if input == ".indexes" {
				cmdQuery(s, `SELECT name FROM sqlite_master WHERE type = 'index' ORDER BY name`)
				continue
			}

			if input == ".schema" {
				cmdQuery(s, `SELECT sql FROM sqlite_master WHERE sql IS NOT NULL`)
				continue
			}

			if name, ok := strings.CutPrefix(input, ".count "); ok {
				cmdCount(s, strings.TrimSpace(name))
				continue
			}

			if name, ok := strings.CutPrefix(input, ".columns "); ok {
				cmdColumns(s, strings.TrimSpace(name))
				continue
			}

			if strings.HasPrefix(input, ".") {
				fmt.Println("Unknown command, type .help for usage hints")
				continue
			}

			cmdQuery(s, input)
		}
	}
}

// Shutdown stops the shell.
func (s *Shell) Shutdown() {
	s.stop()
}

// prompt shows the prompt and reads the input from the user.
func (s *Shell) prompt() string {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	if file, err := os.Open(s.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	prompt, err := line.Prompt("SQLiteKit> ")
	if err != nil {
		if err == liner.ErrPromptAborted {
			fmt.Println("CTRL+C pressed, exiting...")
			return ".quit"
		}
		return ""
	}

	line.AppendHistory(prompt)
	if file, err := os.Create(s.historyPath); err == nil {
		_, _ = line.WriteHistory(file)
		file.Close()
	}

	return strings.TrimSpace(prompt)
}

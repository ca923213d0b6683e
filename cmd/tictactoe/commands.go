package main

import (
	"context"
	"ctchen222/tictactoe/internal/api/controller"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/console"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/room"
	"ctchen222/tictactoe/internal/server"
	"ctchen222/tictactoe/internal/telemetry"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// app is what every command gets after config, logging and telemetry are up.
type app struct {
	cfg *config.Config
	bot *bot.Bot
}

type flags struct {
	configPath string
	color      bool
	board      string
	player     int
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a decision-tree computer opponent",
		Long: `tictactoe plays a console game of tic-tac-toe. The computer opens in the
center, then you and the computer alternate until someone completes a line or
the board is full. Cells are numbered 1-9, left to right, top to bottom.`,
		SilenceUsage: true,
		RunE:         withRuntime(f, runPlay),
	}
	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&f.color, "color", true, "color the board marks")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE:  withRuntime(f, runPlay),
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the computer opponent over HTTP",
		Args:  cobra.NoArgs,
		RunE:  withRuntime(f, runServe),
	}

	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Build the decision tree for a board and show the chosen move",
		Args:  cobra.NoArgs,
		RunE: withRuntime(f, func(cmd *cobra.Command, rt *app) error {
			return runTree(cmd, rt, f)
		}),
	}
	treeCmd.Flags().StringVar(&f.board, "board", "000020000", "nine digits, row-major: 0 empty, 1 human, 2 computer")
	treeCmd.Flags().IntVar(&f.player, "player", int(game.Computer), "player to move: 1 human, 2 computer")

	rootCmd.AddCommand(playCmd, serveCmd, treeCmd)
	return rootCmd
}

// withRuntime loads the configuration, installs logging and telemetry and
// tears them down after run returns.
func withRuntime(f *flags, run func(cmd *cobra.Command, rt *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) (err error) {
		cfg, err := config.Load(f.configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("color") {
			cfg.Color = f.color
		}

		shutdown, err := telemetry.Init(cmd.Context(), cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		defer func() {
			if shutdownErr := shutdown(context.Background()); shutdownErr != nil {
				err = errors.Join(err, fmt.Errorf("failed to shut down telemetry: %w", shutdownErr))
			}
		}()

		logger.Init(logger.Options{
			Level:  cfg.SlogLevel(),
			Output: cmd.ErrOrStderr(),
			OTel:   cfg.Telemetry.Logs == "otlp",
		})

		b, err := bot.NewBot()
		if err != nil {
			return err
		}

		return run(cmd, &app{cfg: cfg, bot: b})
	}
}

func runPlay(cmd *cobra.Command, rt *app) error {
	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.WithColor(rt.cfg.Color))
	if err := con.Welcome(); err != nil {
		return err
	}

	r := room.NewRoom(uuid.NewString(), con, rt.bot)
	_, err := r.Run(cmd.Context())
	return err
}

func runServe(cmd *cobra.Command, rt *app) error {
	ctx := cmd.Context()

	if rt.cfg.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	moveController := controller.NewMoveController(service.NewMoveService(rt.bot))
	srv := server.NewServer(moveController, telemetry.MetricsHandler())

	httpServer := &http.Server{
		Addr:              rt.cfg.HTTPAddr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "HTTP server started", "http.addr", rt.cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func runTree(cmd *cobra.Command, rt *app, f *flags) error {
	cells, err := parseBoardFlag(f.board)
	if err != nil {
		return err
	}
	board, err := game.ParseBoard(cells)
	if err != nil {
		return err
	}

	decision, err := rt.bot.Decide(cmd.Context(), board, game.Cell(f.player))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := console.New(cmd.InOrStdin(), out, console.WithColor(rt.cfg.Color)).ShowBoard(board); err != nil {
		return err
	}

	row, col := game.ToRowCol(decision.Move)
	_, err = fmt.Fprintf(out, "move:      %d (row %d, col %d)\nheuristic: %s\noptions:   %d\nnodes:     %d\ndepth:     %d\n",
		decision.Move, row+1, col+1, decision.Heuristic, decision.Options, decision.Nodes, decision.Depth)
	return err
}

// parseBoardFlag reads a board written as nine digits.
func parseBoardFlag(s string) ([]int, error) {
	if len(s) != game.MaxIndex {
		return nil, fmt.Errorf("--board must have %d digits, got %q", game.MaxIndex, s)
	}

	cells := make([]int, 0, game.MaxIndex)
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("--board must contain only digits, got %q", s)
		}
		cells = append(cells, int(r-'0'))
	}
	return cells, nil
}

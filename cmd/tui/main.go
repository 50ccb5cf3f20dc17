package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/authclient/internal/buildinfo"
	"github.com/dmitrijs2005/authclient/internal/client/bootstrap"
	"github.com/dmitrijs2005/authclient/internal/client/config"
	"github.com/dmitrijs2005/authclient/internal/client/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx := context.Background()
	// the screen belongs to the program; logs go to log.file or nowhere
	env, err := bootstrap.Open(ctx, cfg, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer env.Close()
	defer env.Auth.Close(ctx)

	bridge := tui.NewBridge()
	defer bridge.Close()

	p := tea.NewProgram(tui.New(ctx, env.Auth, env.Users, bridge, env.Log), tea.WithAltScreen())
	bridge.Attach(p.Send)

	if _, err := p.Run(); err != nil {
		env.Log.Error(ctx, "tui exited", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	buildinfo.PrintBuildData(os.Stdout)
	return 0
}

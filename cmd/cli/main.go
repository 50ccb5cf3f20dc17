package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authclient/internal/buildinfo"
	"github.com/dmitrijs2005/authclient/internal/client/bootstrap"
	"github.com/dmitrijs2005/authclient/internal/client/cli"
	"github.com/dmitrijs2005/authclient/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := context.Background()
	env, err := bootstrap.Open(ctx, cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer env.Close()

	app := cli.NewApp(env.Auth, env.Users, os.Stdin, os.Stdout, int(os.Stdin.Fd()), env.Log)
	app.Run(ctx)
}

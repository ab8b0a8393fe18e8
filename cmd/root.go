package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "blog",
		Usage: "A personal blog server",
		Description: `A small personal blog. Posts live in a single SQLite
		table and are created, edited and deleted through an HTML form.
		Contact form submissions are forwarded by email via an SMTP relay.

		Flags can generally be set via environment variables, e.g.:

		--database => BLOG_DATABASE=posts.db
		--port => BLOG_PORT=8081
		`,
		Commands: []*cli.Command{
			serveCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

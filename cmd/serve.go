package cmd

import (
	"fmt"

	"github.com/Rodrigo-Rojo/blog/config"
	"github.com/Rodrigo-Rojo/blog/db"
	"github.com/Rodrigo-Rojo/blog/mail"
	"github.com/Rodrigo-Rojo/blog/server"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the blog",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP port to listen on",
				Value:   8081,
				EnvVars: []string{"BLOG_PORT"},
			},
			&cli.StringFlag{
				Name:    "database",
				Usage:   "Path to the SQLite database file",
				Value:   "posts.db",
				EnvVars: []string{"BLOG_DATABASE"},
			},
			&cli.StringFlag{
				Name:    "site-config",
				Usage:   "Path to a TOML file with the site title, author and nav links",
				EnvVars: []string{"BLOG_SITE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "email",
				Usage:   "Account used to authenticate against the SMTP relay",
				EnvVars: []string{"EMAIL"},
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Password for the SMTP account",
				EnvVars: []string{"PASSWORD"},
			},
			&cli.StringFlag{
				Name:    "smtp-host",
				Usage:   "SMTP relay host",
				Value:   "smtp.gmail.com",
				EnvVars: []string{"BLOG_SMTP_HOST"},
			},
			&cli.IntFlag{
				Name:    "smtp-port",
				Usage:   "SMTP relay port",
				Value:   587,
				EnvVars: []string{"BLOG_SMTP_PORT"},
			},
		},
		Action: func(ctx *cli.Context) error {
			site := config.DefaultSite()
			if path := ctx.String("site-config"); path != "" {
				loaded, err := config.LoadSite(path)
				if err != nil {
					return err
				}
				site = loaded
			}

			conn, err := db.Open(ctx.String("database"))
			if err != nil {
				return err
			}

			mailer := mail.NewMailer(config.Mail{
				Host:     ctx.String("smtp-host"),
				Port:     ctx.Int("smtp-port"),
				Account:  ctx.String("email"),
				Password: ctx.String("password"),
			})

			app := server.New(&server.Config{
				Site:   site,
				Store:  db.NewStore(conn),
				Mailer: mailer,
			})

			log.WithFields(log.Fields{
				"port":     ctx.Int("port"),
				"database": ctx.String("database"),
			}).Info("Starting blog server")

			return app.Listen(fmt.Sprintf(":%d", ctx.Int("port")))
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-share/internal/adapter"
	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/caarlos0/env/v11"
)

var (
	errUsage          = errors.New("usage: client [-a address] [-timeout d] <command> [args]")
	errUnknownCommand = errors.New("unknown command")
)

// clientEnv is read from the environment before flags are applied.
type clientEnv struct {
	Address string        `env:"PHOTO_SHARE_ADDRESS" envDefault:"localhost:8080"`
	Token   string        `env:"PHOTO_SHARE_TOKEN"`
	Timeout time.Duration `env:"PHOTO_SHARE_TIMEOUT" envDefault:"10s"`
}

type command struct {
	args  string
	usage string
	run   func(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error
}

var commands = map[string]command{
	"version":    {usage: "print server version", run: cmdVersion},
	"register":   {args: "<login> <password> <first> <last>", usage: "create an account", run: cmdRegister},
	"login":      {args: "<login> <password>", usage: "open a session", run: cmdLogin},
	"logout":     {usage: "end the session", run: cmdLogout},
	"users":      {usage: "list users", run: cmdUsers},
	"photos":     {args: "<user_id>", usage: "list photos of a user", run: cmdPhotos},
	"upload":     {args: "<file> [user_id...]", usage: "upload a photo, optionally shared with users", run: cmdUpload},
	"like":       {args: "<photo_id>", usage: "like a photo", run: cmdLike},
	"unlike":     {args: "<photo_id>", usage: "unlike a photo", run: cmdUnlike},
	"comment":    {args: "<photo_id> <text>", usage: "comment on a photo", run: cmdComment},
	"activities": {args: "[limit]", usage: "show recent activity", run: cmdActivities},
	"favorites":  {usage: "list favorite photos", run: cmdFavorites},
	"favorite":   {args: "<photo_id>", usage: "add a photo to favorites", run: cmdFavorite},
}

func run(ctx context.Context, args []string, out io.Writer, log *logger.Logger) error {
	var cfg clientEnv
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "server address host:port")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	showBuild := fs.Bool("build-info", false, "print build info and exit")
	fs.Usage = func() { printUsage(fs.Output()) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showBuild {
		printBuildInfo()
		return nil
	}
	if fs.NArg() == 0 {
		printUsage(out)
		return errUsage
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}

	api, err := adapter.NewHTTPServerAdapter(adapter.Config{BaseURL: cfg.Address, Timeout: cfg.Timeout}, log)
	if err != nil {
		return err
	}
	api.SetToken(cfg.Token)

	log.Debug().Str("func", "run").Str("command", name).Str("address", cfg.Address).Msg("running command")
	return cmd.run(ctx, api, fs.Args()[1:], out)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, errUsage.Error())
	fmt.Fprintln(w, "\ncommands:")
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		c := commands[name]
		fmt.Fprintf(w, "  %-11s %-34s %s\n", name, c.args, c.usage)
	}
}

func wantArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("%w: expected %s", errUsage, usage)
	}
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cmdVersion(ctx context.Context, api adapter.ServerAdapter, _ []string, out io.Writer) error {
	version, err := api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, version)
	return err
}

func cmdRegister(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if err := wantArgs(args, 4, "<login> <password> <first> <last>"); err != nil {
		return err
	}
	user, err := api.Register(ctx, models.RegisterRequest{
		LoginName: args[0],
		Password:  args[1],
		FirstName: args[2],
		LastName:  args[3],
	})
	if err != nil {
		return err
	}
	return printSession(out, user, api.Token())
}

func cmdLogin(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if err := wantArgs(args, 2, "<login> <password>"); err != nil {
		return err
	}
	user, err := api.Login(ctx, models.LoginRequest{LoginName: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	return printSession(out, user, api.Token())
}

func printSession(out io.Writer, user models.User, token string) error {
	_, err := fmt.Fprintf(out, "logged in as %s %s (%s)\nexport PHOTO_SHARE_TOKEN=%s\n",
		user.FirstName, user.LastName, user.ID, token)
	return err
}

func cmdLogout(ctx context.Context, api adapter.ServerAdapter, _ []string, out io.Writer) error {
	if err := api.Logout(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, "logged out")
	return err
}

func cmdUsers(ctx context.Context, api adapter.ServerAdapter, _ []string, out io.Writer) error {
	users, err := api.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if _, err = fmt.Fprintf(out, "%s\t%s %s\n", u.ID, u.FirstName, u.LastName); err != nil {
			return err
		}
	}
	return nil
}

func cmdPhotos(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if err := wantArgs(args, 1, "<user_id>"); err != nil {
		return err
	}
	photos, err := api.PhotosOfUser(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(out, photos)
}

func cmdUpload(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if err := wantArgs(args, 1, "<file> [user_id...]"); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	var sharedWith []string
	if len(args) > 1 {
		sharedWith = args[1:]
	}

	photo, err := api.UploadPhoto(ctx, filepath.Base(args[0]), f, sharedWith)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "uploaded %s as %s (%s)\n", photo.ID, photo.FileName, photo.Visibility)
	return err
}

func cmdLike(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if err := wantArgs(args, 1, "<photo_id>"); err != nil {
		return err
	}
	result, err := api.Like(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "likes: %d\n", result.LikesCount)
	return err
}

func cmdUnlike(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if err := wantArgs(args, 1, "<photo_id>"); err != nil {
		return err
	}
	result, err := api.Unlike(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "likes: %d\n", result.LikesCount)
	return err
}

func cmdComment(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if err := wantArgs(args, 2, "<photo_id> <text>"); err != nil {
		return err
	}
	comment, err := api.AddComment(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "comment %s: %s\n", comment.ID, comment.Text)
	return err
}

func cmdActivities(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	limit := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: limit must be a number", errUsage)
		}
		limit = n
	}

	activities, err := api.RecentActivities(ctx, limit)
	if err != nil {
		return err
	}
	for _, a := range activities {
		who := ""
		if a.User != nil {
			who = a.User.FirstName + " " + a.User.LastName
		}
		line := fmt.Sprintf("%s\t%s\t%s", a.DateTime.Format(time.RFC3339), a.Type, who)
		if a.PhotoFileName != nil {
			line += "\t" + *a.PhotoFileName
		}
		if _, err = fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func cmdFavorites(ctx context.Context, api adapter.ServerAdapter, _ []string, out io.Writer) error {
	favorites, err := api.Favorites(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, favorites)
}

func cmdFavorite(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if err := wantArgs(args, 1, "<photo_id>"); err != nil {
		return err
	}
	if _, err := api.AddFavorite(ctx, args[0]); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, "added to favorites")
	return err
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/blueswitch/blueswitch/internal/client"
	"github.com/blueswitch/blueswitch/internal/config"
	"github.com/blueswitch/blueswitch/internal/i18n"
	"github.com/blueswitch/blueswitch/internal/logger"
)

// errUsage is returned after usage has been printed.
var errUsage = errors.New("invalid usage")

type command struct {
	summary string
	auth    bool
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"ping":           {summary: "check that the backend answers", run: cmdPing},
	"signup":         {summary: "create an account", run: cmdSignUp},
	"login":          {summary: "verify email and password", run: cmdLogin},
	"reset-password": {summary: "send a password reset email", run: cmdResetPassword},
	"devices":        {summary: "list devices of the user or a team", auth: true, run: cmdDevices},
	"add-device":     {summary: "register a device", auth: true, run: cmdAddDevice},
	"switch":         {summary: "turn a device on or off", auth: true, run: cmdSwitch},
	"favorite":       {summary: "mark or unmark a favorite device", auth: true, run: cmdFavorite},
	"delete-device":  {summary: "delete a device", auth: true, run: cmdDeleteDevice},
	"footprint":      {summary: "show total CO2 and highest impact device", auth: true, run: cmdFootprint},
	"stats":          {summary: "show per-device footprint", auth: true, run: cmdStats},
	"ticket":         {summary: "print the CO2 ticket and write its QR code", auth: true, run: cmdTicket},
	"teams":          {summary: "list teams of the user", auth: true, run: cmdTeams},
	"create-team":    {summary: "create a team", auth: true, run: cmdCreateTeam},
	"join-team":      {summary: "join a team by name and code", auth: true, run: cmdJoinTeam},
	"team":           {summary: "show a team tab: devices, members or statistics", auth: true, run: cmdTeam},
	"member":         {summary: "promote, demote or remove a member", auth: true, run: cmdMember},
	"member-stats":   {summary: "show a member's contribution to a team", auth: true, run: cmdMemberStats},
	"delete-team":    {summary: "delete a team", auth: true, run: cmdDeleteTeam},
	"profile":        {summary: "show the user profile", auth: true, run: cmdProfile},
	"update-profile": {summary: "update profile fields", auth: true, run: cmdUpdateProfile},
}

type app struct {
	cfg    *config.ClientConfig
	logger *slog.Logger
	tr     *i18n.Translator
	out    io.Writer
	http   *http.Client

	gate   *client.Gate
	client *client.Client
	loader *client.Loader
	events *client.Events
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("blueswitch", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "path to a YAML config file")
	email := global.String("email", "", "account email, overrides config")
	global.Usage = func() { printUsage(stderr, global) }

	if err := global.Parse(args); err != nil {
		return errUsage
	}
	rest := global.Args()
	if len(rest) == 0 {
		printUsage(stderr, global)
		return errUsage
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		printUsage(stderr, global)
		return errors.Errorf("unknown command %q", rest[0])
	}

	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		return err
	}
	if *email != "" {
		cfg.Email = *email
	}

	a, err := newApp(cfg, stdout, stderr)
	if err != nil {
		return err
	}

	if cmd.auth {
		if err := a.signIn(ctx); err != nil {
			return err
		}
	}
	return cmd.run(ctx, a, rest[1:])
}

func newApp(cfg *config.ClientConfig, stdout, stderr io.Writer) (*app, error) {
	lg, err := logger.New(stderr, logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		logger: lg,
		tr:     i18n.New(cfg.Language),
		out:    stdout,
		http:   &http.Client{Timeout: cfg.Timeout},
		events: client.NewEvents(),
	}

	ccfg := client.Config{
		BaseURL:    cfg.BaseURL,
		HTTPClient: a.http,
		Logger:     lg,
		Language:   cfg.Language,
	}

	if cfg.Firebase.APIKey != "" {
		auth, err := client.NewAuth(client.AuthConfig{
			APIKey:     cfg.Firebase.APIKey,
			Endpoint:   cfg.Firebase.Endpoint,
			HTTPClient: a.http,
		})
		if err != nil {
			return nil, err
		}
		a.gate = client.NewGate(auth)
		ccfg.Token = a.gate.Token
	} else {
		ccfg.DevEmail = cfg.Email
	}

	a.client, err = client.New(ccfg)
	if err != nil {
		return nil, err
	}
	a.loader = client.NewLoader(a.client)
	return a, nil
}

// signIn opens a Firebase session when an API key is configured.
// Without one the backend is expected to trust X-User-Email.
func (a *app) signIn(ctx context.Context) error {
	if a.cfg.Email == "" {
		return errors.New("email is required, set -email or BLUESWITCH_EMAIL")
	}
	if a.gate == nil {
		return nil
	}
	if a.cfg.Password == "" {
		return errors.New("password is required, set BLUESWITCH_PASSWORD")
	}
	if _, err := a.gate.SignIn(ctx, a.cfg.Email, a.cfg.Password); err != nil {
		return a.authError(err)
	}
	return nil
}

func (a *app) authError(err error) error {
	var authErr *client.AuthError
	if errors.As(err, &authErr) {
		return errors.New(a.tr.T(authErr.UserMessageKey()))
	}
	return err
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func newFlags(name string, a *app) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func printUsage(w io.Writer, global *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: blueswitch [-config file] [-email address] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-16s %s\n", name, commands[name].summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags:")
	global.SetOutput(w)
	global.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: "+strings.TrimSuffix(config.EnvPrefix, "_")+"_* overrides config keys, e.g. BLUESWITCH_BASEURL")
}

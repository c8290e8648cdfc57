package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"

	"github.com/blueswitch/blueswitch/internal/client"
	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/ticket"
)

func cmdPing(ctx context.Context, a *app, _ []string) error {
	if err := a.client.Ping(ctx); err != nil {
		return errors.Wrap(err, a.tr.T("Error de conexión"))
	}
	a.println("ok")
	return nil
}

func credentials(a *app, name string, args []string, confirm bool) (client.CredentialsForm, error) {
	fs := newFlags(name, a)
	email := fs.String("email", a.cfg.Email, "account email")
	password := fs.String("password", a.cfg.Password, "account password")
	repeat := fs.String("confirm", "", "repeat the password")
	if err := fs.Parse(args); err != nil {
		return client.CredentialsForm{}, errUsage
	}

	form := client.CredentialsForm{Email: *email, Password: *password}
	if confirm {
		form.Confirm = *repeat
		if form.Confirm == "" {
			form.Confirm = form.Password
		}
	}
	return form.Validate(a.tr)
}

func (a *app) requireGate() error {
	if a.gate == nil {
		return errors.New("firebase.apiKey is not configured")
	}
	return nil
}

func cmdSignUp(ctx context.Context, a *app, args []string) error {
	form, err := credentials(a, "signup", args, true)
	if err != nil {
		return err
	}
	if err := a.requireGate(); err != nil {
		return err
	}
	if _, err := a.gate.SignUp(ctx, form.Email, form.Password); err != nil {
		return a.authError(err)
	}
	a.println(a.tr.T("User created successfully."))
	return nil
}

func cmdLogin(ctx context.Context, a *app, args []string) error {
	form, err := credentials(a, "login", args, false)
	if err != nil {
		return err
	}
	if err := a.requireGate(); err != nil {
		return err
	}
	if _, err := a.gate.SignIn(ctx, form.Email, form.Password); err != nil {
		return a.authError(err)
	}
	a.println(a.tr.T("Logged in successfully."))
	return nil
}

func cmdResetPassword(ctx context.Context, a *app, args []string) error {
	fs := newFlags("reset-password", a)
	email := fs.String("email", a.cfg.Email, "account email")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := a.requireGate(); err != nil {
		return err
	}
	if err := a.gate.SendPasswordReset(ctx, strings.TrimSpace(*email)); err != nil {
		return a.authError(err)
	}
	a.println(a.tr.T("Password reset email sent."))
	return nil
}

// owner selects the team when code is set, else the signed-in user.
func (a *app) owner(code string) client.Owner {
	if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
		return client.ByTeam(code)
	}
	return client.ByEmail(a.cfg.Email)
}

func (a *app) printDevices(devices []domain.Device) {
	if len(devices) == 0 {
		a.println(a.tr.T("No tienes dispositivos"))
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\t%s\t%s\t\t\n", a.tr.T("Nombre"), a.tr.T("Categoria"), a.tr.T("Watts"))
	for _, d := range devices {
		state := a.tr.T("Inactivo")
		if d.State {
			state = a.tr.T("Activo")
		}
		fav := ""
		if d.Favorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%s\n", d.ID, d.Name, d.Category, d.Watts, state, fav)
	}
	_ = w.Flush()
}

func cmdDevices(ctx context.Context, a *app, args []string) error {
	fs := newFlags("devices", a)
	team := fs.String("team", "", "team code")
	filter := fs.String("filter", "", "only devices whose name contains this text")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	devices, err := a.client.GetDevices(ctx, a.owner(*team))
	if err != nil {
		return err
	}
	a.printDevices(client.FilterByName(client.SortByFavorite(devices), *filter))
	return nil
}

func cmdAddDevice(ctx context.Context, a *app, args []string) error {
	fs := newFlags("add-device", a)
	form := client.DeviceForm{Email: a.cfg.Email}
	fs.StringVar(&form.Name, "name", "", "device name")
	fs.StringVar(&form.Category, "category", "", "device category")
	fs.StringVar(&form.Watts, "watts", "", "power draw in watts")
	fs.StringVar(&form.Color, "color", "", "card color, e.g. #34C759")
	fs.StringVar(&form.Image, "image", "", "image URI")
	fs.StringVar(&form.TeamCode, "team", "", "team code")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	req, err := form.Validate(a.tr)
	if err != nil {
		return err
	}
	d, err := a.client.CreateDevice(ctx, req)
	if err != nil {
		return err
	}
	a.printf("%s\n", d.ID)
	return nil
}

// deviceSwitch finds a device of the user or a team and wraps it in a switch.
func (a *app) deviceSwitch(ctx context.Context, team, id string) (*client.Switch, error) {
	devices, err := a.client.GetDevices(ctx, a.owner(team))
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		if d.ID == id {
			return client.NewSwitch(a.client, a.events, d), nil
		}
	}
	return nil, errors.Errorf("device %s not found", id)
}

func deviceFlags(name string, a *app, args []string, extra func(*flag.FlagSet)) (id, team string, err error) {
	fs := newFlags(name, a)
	idFlag := fs.String("id", "", "device id")
	teamFlag := fs.String("team", "", "team code when the device belongs to a team")
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return "", "", errUsage
	}
	if *idFlag == "" {
		return "", "", errors.New("-id is required")
	}
	return *idFlag, *teamFlag, nil
}

func cmdSwitch(ctx context.Context, a *app, args []string) error {
	id, team, err := deviceFlags("switch", a, args, nil)
	if err != nil {
		return err
	}
	sw, err := a.deviceSwitch(ctx, team, id)
	if err != nil {
		return err
	}
	if err := sw.Toggle(ctx); err != nil {
		return err
	}

	state := a.tr.T("Inactivo")
	if sw.On() {
		state = a.tr.T("Activo")
	}
	a.printf("%s: %s\n", sw.Device().Name, state)
	return nil
}

func cmdFavorite(ctx context.Context, a *app, args []string) error {
	var off *bool
	id, team, err := deviceFlags("favorite", a, args, func(fs *flag.FlagSet) {
		off = fs.Bool("off", false, "remove from favorites")
	})
	if err != nil {
		return err
	}
	sw, err := a.deviceSwitch(ctx, team, id)
	if err != nil {
		return err
	}
	if err := sw.Favorite(ctx, !*off); err != nil {
		return err
	}

	label := a.tr.T("Favorito")
	if !sw.Device().Favorite {
		label = a.tr.T("Quitar de favoritos")
	}
	a.printf("%s: %s\n", sw.Device().Name, label)
	return nil
}

func cmdDeleteDevice(ctx context.Context, a *app, args []string) error {
	id, team, err := deviceFlags("delete-device", a, args, nil)
	if err != nil {
		return err
	}
	sw, err := a.deviceSwitch(ctx, team, id)
	if err != nil {
		return err
	}
	if err := sw.Delete(ctx); err != nil {
		return err
	}
	a.println(a.tr.T("Dispositivo eliminado"))
	return nil
}

func cmdFootprint(ctx context.Context, a *app, args []string) error {
	fs := newFlags("footprint", a)
	team := fs.String("team", "", "team code")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	report, err := a.client.ReadCO2(ctx, a.owner(*team))
	if err != nil {
		return err
	}
	a.printf("%s: %.2f kg CO₂\n", a.tr.T("Huella Total"), report.TotalCO2)
	a.printf("%s: %s\n", a.tr.T("Dispositivo de Mayor Impacto"), client.HighestImpactLabel(report, a.tr))
	return nil
}

func (a *app) printFootprints(stats *client.Statistics) {
	if len(stats.Usage) == 0 {
		a.println(a.tr.T("No tienes dispositivos"))
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tkg CO₂\t%s\n", a.tr.T("Nombre"), a.tr.T("Horas"))
	for _, u := range stats.Usage {
		fmt.Fprintf(w, "%s\t%.3f\t%.1f\n", u.Device.Name, u.Footprint.KgCO2, u.Footprint.Hours)
	}
	_ = w.Flush()
}

func cmdStats(ctx context.Context, a *app, args []string) error {
	fs := newFlags("stats", a)
	team := fs.String("team", "", "team code")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	stats := a.loader.Statistics(ctx, a.owner(*team))
	if stats.UsageErr == nil {
		a.printFootprints(stats)
	}
	if stats.CO2 != nil {
		a.printf("%s: %.2f kg CO₂\n", a.tr.T("Huella Total"), stats.CO2.TotalCO2)
		a.printf("%s: %s\n", a.tr.T("Dispositivo de Mayor Impacto"), client.HighestImpactLabel(stats.CO2, a.tr))
	}
	return stats.Err()
}

func cmdTicket(ctx context.Context, a *app, args []string) error {
	fs := newFlags("ticket", a)
	team := fs.String("team", "", "team code")
	out := fs.String("qr", "", "write the QR code PNG to this file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	report, err := a.client.ReadCO2(ctx, a.owner(*team))
	if err != nil {
		return err
	}

	owner := a.cfg.Email
	if *team != "" {
		owner = strings.ToUpper(*team)
	}
	tk := ticket.New(*report, owner, a.tr, time.Now())
	a.printf("%s", tk.Text(a.tr))

	if *out == "" {
		return nil
	}
	png, err := tk.QRCode(a.cfg.Ticket.Size, ticket.Level(a.cfg.Ticket.Level))
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", *out)
	}
	a.logger.Info("ticket QR written", "path", *out, "bytes", len(png))
	return nil
}

func cmdTeams(ctx context.Context, a *app, _ []string) error {
	teams, err := a.loader.Teams(ctx, a.cfg.Email)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		a.println(a.tr.T("No tienes equipos"))
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, t := range teams {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Code, t.Name, client.RoleLabel(t.Role, a.tr))
	}
	_ = w.Flush()
	return nil
}

func cmdCreateTeam(ctx context.Context, a *app, args []string) error {
	fs := newFlags("create-team", a)
	form := client.CreateTeamForm{Email: a.cfg.Email}
	fs.StringVar(&form.Name, "name", "", "team name")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	form, err := form.Validate(a.tr)
	if err != nil {
		return err
	}
	team, err := a.client.CreateTeam(ctx, form.Name, form.Email)
	if err != nil {
		return err
	}
	a.printf("%s\t%s\n", team.Code, team.Name)
	return nil
}

func cmdJoinTeam(ctx context.Context, a *app, args []string) error {
	fs := newFlags("join-team", a)
	form := client.JoinTeamForm{Email: a.cfg.Email}
	fs.StringVar(&form.Name, "name", "", "team name")
	fs.StringVar(&form.Code, "code", "", "team code")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	form, err := form.Validate(a.tr)
	if err != nil {
		return err
	}
	team, err := a.client.JoinTeam(ctx, form.Email, form.Name, form.Code)
	if err != nil {
		return err
	}
	if team != nil {
		a.printf("%s\t%s\n", team.Code, team.Name)
	}
	return nil
}

func cmdTeam(ctx context.Context, a *app, args []string) error {
	fs := newFlags("team", a)
	code := fs.String("code", "", "team code")
	viewName := fs.String("view", "devices", "devices, members or statistics")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	view, ok := client.ParseTeamView(*viewName)
	if !ok {
		return errors.Errorf("unknown view %q", *viewName)
	}
	if *code == "" {
		return errors.New("-code is required")
	}
	teamCode := strings.ToUpper(strings.TrimSpace(*code))

	detail := a.loader.TeamDetail(ctx, teamCode)
	a.printf("== %s ==\n", view.Label(a.tr))

	switch view {
	case client.ViewMembers:
		if detail.MembersErr != nil {
			return detail.MembersErr
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, m := range detail.Members {
			actions := make([]string, 0, 2)
			for _, act := range client.MemberActions(m.Role) {
				actions = append(actions, string(act))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.Email, client.RoleLabel(m.Role, a.tr), strings.Join(actions, ","))
		}
		_ = w.Flush()
	case client.ViewStatistics:
		if detail.CO2Err != nil {
			return detail.CO2Err
		}
		a.printf("%s: %.2f kg CO₂\n", a.tr.T("Huella Total"), detail.CO2.TotalCO2)
		a.printf("%s: %s\n", a.tr.T("Dispositivo de Mayor Impacto"), detail.HighestImpact(a.client))
	default:
		if detail.DevicesErr != nil {
			return detail.DevicesErr
		}
		a.printDevices(detail.Devices)
	}
	return nil
}

func cmdMember(ctx context.Context, a *app, args []string) error {
	fs := newFlags("member", a)
	code := fs.String("code", "", "team code")
	email := fs.String("member", "", "member email")
	action := fs.String("action", "", "promote, demote or remove")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *code == "" || *email == "" {
		return errors.New("-code and -member are required")
	}

	roster := client.NewRoster(a.client, a.events)
	m, err := roster.Apply(ctx, strings.ToUpper(*code), *email, domain.MemberAction(strings.ToLower(*action)))
	if err != nil {
		return err
	}
	if m != nil {
		a.printf("%s\t%s\n", m.Email, client.RoleLabel(m.Role, a.tr))
	}
	return nil
}

func cmdMemberStats(ctx context.Context, a *app, args []string) error {
	fs := newFlags("member-stats", a)
	code := fs.String("code", "", "team code")
	email := fs.String("member", a.cfg.Email, "member email")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	stats, err := a.loader.MemberStats(ctx, *email, strings.ToUpper(*code))
	if err != nil {
		return err
	}
	a.printf("%s: %d\n", a.tr.T("Dispositivos"), stats.NumDevices)
	a.printf("%s: %g\n", a.tr.T("Watts"), stats.Watts)
	a.printf("%s: %.2f kg CO₂\n", a.tr.T("Huella Total"), stats.CO2)
	a.printf("%s: %.2f\n", a.tr.T("Equivalente en Árboles"), stats.Trees)
	return nil
}

func cmdDeleteTeam(ctx context.Context, a *app, args []string) error {
	fs := newFlags("delete-team", a)
	code := fs.String("code", "", "team code")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *code == "" {
		return errors.New("-code is required")
	}
	if err := client.NewRoster(a.client, a.events).DeleteTeam(ctx, strings.ToUpper(*code)); err != nil {
		return err
	}
	a.println(strings.ToUpper(*code))
	return nil
}

func (a *app) printProfile(u *domain.User) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", a.tr.T("Nombre"), u.Name)
	fmt.Fprintf(w, "email\t%s\n", u.Email)
	fmt.Fprintf(w, "phone\t%s\n", u.Phone)
	fmt.Fprintf(w, "city\t%s\n", u.City)
	fmt.Fprintf(w, "avatar\t%s\n", u.Avatar)
	_ = w.Flush()
}

func cmdProfile(ctx context.Context, a *app, _ []string) error {
	u, err := a.loader.Profile(ctx, a.cfg.Email)
	if err != nil {
		return err
	}
	a.printProfile(u)
	return nil
}

func cmdUpdateProfile(ctx context.Context, a *app, args []string) error {
	fs := newFlags("update-profile", a)
	update := domain.User{Email: a.cfg.Email}
	fs.StringVar(&update.Name, "name", "", "display name")
	fs.StringVar(&update.Phone, "phone", "", "phone number")
	fs.StringVar(&update.City, "city", "", "city")
	avatar := fs.String("avatar", "", "avatar image URI")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	u, err := a.client.UpdateUser(ctx, update)
	if err != nil {
		return err
	}
	if *avatar != "" {
		if u, err = a.client.UploadAvatar(ctx, a.cfg.Email, *avatar); err != nil {
			return err
		}
	}
	if u != nil {
		a.printProfile(u)
	}
	return nil
}

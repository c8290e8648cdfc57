package client

import (
	"slices"
	"strings"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/i18n"
)

// SortByFavorite returns devices with favorites first. Order within each group is kept.
func SortByFavorite(devices []domain.Device) []domain.Device {
	out := slices.Clone(devices)
	slices.SortStableFunc(out, func(a, b domain.Device) int {
		switch {
		case a.Favorite == b.Favorite:
			return 0
		case a.Favorite:
			return -1
		default:
			return 1
		}
	})
	return out
}

// SortMembersByRole returns members ordered admin, assistant, member. Ties keep their order.
func SortMembersByRole(members []domain.TeamMember) []domain.TeamMember {
	out := slices.Clone(members)
	slices.SortStableFunc(out, func(a, b domain.TeamMember) int {
		return a.Role.Priority() - b.Role.Priority()
	})
	return out
}

// FilterByName keeps devices whose name contains query, ignoring case.
// A blank query keeps everything.
func FilterByName(devices []domain.Device, query string) []domain.Device {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return slices.Clone(devices)
	}

	out := make([]domain.Device, 0, len(devices))
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.Name), query) {
			out = append(out, d)
		}
	}
	return out
}

// HighestImpactLabel names the device with the largest footprint.
func HighestImpactLabel(report *domain.CO2Report, tr *i18n.Translator) string {
	if report == nil || report.HighestDevice == nil || report.HighestDevice.Name == "" {
		return tr.T("No hay dispositivo registrado")
	}
	return report.HighestDevice.Name
}

// RoleLabel returns the translated name of a team role.
func RoleLabel(r domain.Role, tr *i18n.Translator) string {
	switch r {
	case domain.RoleAdmin:
		return tr.T("Administrador")
	case domain.RoleAssistant:
		return tr.T("Asistente")
	default:
		return tr.T("Miembro")
	}
}

// TeamView is a tab of the team detail screen.
type TeamView int

const (
	ViewDevices TeamView = iota
	ViewMembers
	ViewStatistics
)

// TeamViews lists the tabs in display order.
var TeamViews = []TeamView{ViewDevices, ViewMembers, ViewStatistics}

func (v TeamView) String() string {
	switch v {
	case ViewDevices:
		return "Dispositivos"
	case ViewMembers:
		return "Miembros"
	case ViewStatistics:
		return "Estadísticas"
	default:
		return "unknown"
	}
}

// Label returns the translated tab title.
func (v TeamView) Label(tr *i18n.Translator) string {
	return tr.T(v.String())
}

// ParseTeamView accepts the English tab name, case-insensitive.
func ParseTeamView(s string) (TeamView, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "devices":
		return ViewDevices, true
	case "members":
		return ViewMembers, true
	case "statistics", "stats":
		return ViewStatistics, true
	default:
		return ViewDevices, false
	}
}

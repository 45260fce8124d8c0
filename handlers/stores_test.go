package handlers

import (
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"teamplay/models"
	"teamplay/services"
	"teamplay/utils"
)

// newTestApp builds a Fiber app backed by in-memory stores, mirroring the
// semantics the GORM-backed services provide.
func newTestApp() (*fiber.App, *fakePlayerStore, *fakeTeamStore) {
	players := &fakePlayerStore{players: map[uint]models.Player{}}
	teams := &fakeTeamStore{players: players, teams: map[uint]models.Team{}}
	InitPlayerHandlers(players)
	InitTeamHandlers(teams)

	app := fiber.New()
	RegisterRoutes(app, "development")
	return app, players, teams
}

type fakePlayerStore struct {
	seq     uint
	players map[uint]models.Player
}

func (f *fakePlayerStore) seed(name string, pos models.Position) models.Player {
	f.seq++
	p := models.Player{
		ID:        f.seq,
		Name:      name,
		Position:  pos,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.players[p.ID] = p
	return p
}

func (f *fakePlayerStore) ListPlayers() ([]models.Player, error) {
	ids := make([]uint, 0, len(f.players))
	for id := range f.players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.players[id])
	}
	return out, nil
}

func (f *fakePlayerStore) AddPlayer(in services.PlayerInput) (*models.Player, error) {
	if in.Name == "" {
		return nil, &services.ValidationError{Message: "name is required"}
	}
	if in.Position == "" {
		return nil, &services.ValidationError{Message: "position is required"}
	}
	if !in.Position.Valid() {
		return nil, &services.ValidationError{Message: fmt.Sprintf("position %q is not allowed", in.Position)}
	}

	f.seq++
	p := models.Player{
		ID:        f.seq,
		Name:      in.Name,
		Position:  in.Position,
		IsCaptain: in.IsCaptain,
		TeamName:  in.TeamName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.players[p.ID] = p
	return &p, nil
}

func (f *fakePlayerStore) UpdatePlayer(id uint, in services.PlayerUpdate) (*models.Player, error) {
	if in.Position != nil && !in.Position.Valid() {
		return nil, &services.ValidationError{Message: fmt.Sprintf("position %q is not allowed", *in.Position)}
	}

	p, ok := f.players[id]
	if !ok {
		return nil, services.ErrPlayerNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Position != nil {
		p.Position = *in.Position
	}
	if in.IsCaptain != nil {
		p.IsCaptain = *in.IsCaptain
	}
	if in.TeamName != nil {
		p.TeamName = *in.TeamName
	}
	p.UpdatedAt = time.Now()
	f.players[id] = p
	return &p, nil
}

func (f *fakePlayerStore) DeletePlayer(id uint) error {
	if _, ok := f.players[id]; !ok {
		return services.ErrPlayerNotFound
	}
	delete(f.players, id)
	return nil
}

func (f *fakePlayerStore) ToggleCaptain(id uint) (*models.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, services.ErrPlayerNotFound
	}
	p.IsCaptain = !p.IsCaptain
	p.UpdatedAt = time.Now()
	f.players[id] = p
	return &p, nil
}

func (f *fakePlayerStore) SetTeamName(id uint, teamName string) (*models.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, services.ErrPlayerNotFound
	}
	p.TeamName = teamName
	p.UpdatedAt = time.Now()
	f.players[id] = p
	return &p, nil
}

type fakeTeamStore struct {
	players *fakePlayerStore
	seq     uint
	teams   map[uint]models.Team
	touched bool
}

func (f *fakeTeamStore) seed(name string, captainID uint, createdAt time.Time) models.Team {
	f.seq++
	t := models.Team{
		ID:        f.seq,
		Name:      name,
		CaptainID: captainID,
		Players:   []models.Player{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	f.teams[t.ID] = t
	return t
}

func (f *fakeTeamStore) SaveTeams(groups []services.TeamGroup) ([]models.Team, error) {
	f.touched = true
	if len(groups) == 0 {
		return nil, &services.ValidationError{Message: "at least one team is required"}
	}

	out := make([]models.Team, 0, len(groups))
	for _, group := range groups {
		refs := append([]models.Player{group.Captain}, group.Players...)
		for _, ref := range refs {
			if _, ok := f.players.players[ref.ID]; !ok {
				return nil, &services.ValidationError{Message: fmt.Sprintf("player %d does not exist", ref.ID)}
			}
		}

		name := group.Captain.TeamName
		if name == "" {
			name = group.Captain.Name
		}

		f.seq++
		team := models.Team{
			ID:        f.seq,
			Name:      name,
			CaptainID: group.Captain.ID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		captain := f.players.players[group.Captain.ID]
		team.Captain = &captain
		for _, ref := range group.Players {
			team.Players = append(team.Players, f.players.players[ref.ID])
		}
		f.teams[team.ID] = team
		out = append(out, team)
	}
	return out, nil
}

func (f *fakeTeamStore) GetTeams(date string) ([]models.Team, error) {
	f.touched = true
	var start, end time.Time
	if date != "" {
		var err error
		start, end, err = utils.DayWindow(date)
		if err != nil {
			return nil, &services.ValidationError{Message: err.Error()}
		}
	}

	out := []models.Team{}
	for _, team := range f.teams {
		if date != "" && (team.CreatedAt.Before(start) || team.CreatedAt.After(end)) {
			continue
		}
		out = append(out, team)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTeamStore) GetTeamByID(id uint) (*models.Team, error) {
	f.touched = true
	team, ok := f.teams[id]
	if !ok {
		return nil, services.ErrTeamNotFound
	}
	return &team, nil
}

func (f *fakeTeamStore) DeleteTeam(id uint) error {
	f.touched = true
	if _, ok := f.teams[id]; !ok {
		return services.ErrTeamNotFound
	}
	delete(f.teams, id)
	return nil
}

func (f *fakeTeamStore) DeleteTeamsByDate(date string) (int64, error) {
	f.touched = true
	start, end, err := utils.DayWindow(date)
	if err != nil {
		return 0, &services.ValidationError{Message: err.Error()}
	}

	var deleted int64
	for id, team := range f.teams {
		if !team.CreatedAt.Before(start) && !team.CreatedAt.After(end) {
			delete(f.teams, id)
			deleted++
		}
	}
	return deleted, nil
}

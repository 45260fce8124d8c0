// services/team_service.go - Team persistence and expansion logic
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"teamplay/models"
	"teamplay/utils"
)

// TeamGroup is one client-submitted grouping: the captain and the players as
// full records, exactly as the client received them from the player listing.
type TeamGroup struct {
	Captain models.Player   `json:"captain"`
	Players []models.Player `json:"players"`
}

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// SaveTeams stores a batch of groupings in input order and returns the
// created teams expanded. The batch runs in a single transaction: a failure
// on any grouping rolls back the whole batch.
func (s *TeamService) SaveTeams(groups []TeamGroup) ([]models.Team, error) {
	if len(groups) == 0 {
		return nil, newValidationError("at least one team is required")
	}

	ids := make([]uint, 0, len(groups))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, group := range groups {
			if err := s.checkReferences(tx, group); err != nil {
				return fmt.Errorf("team %d: %w", i+1, err)
			}

			team := &models.Team{
				Name:      deriveTeamName(group.Captain),
				CaptainID: group.Captain.ID,
			}
			if err := tx.Create(team).Error; err != nil {
				return err
			}

			for slot, player := range group.Players {
				row := &models.TeamPlayer{
					TeamID:   team.ID,
					PlayerID: player.ID,
					Slot:     slot,
				}
				if err := tx.Create(row).Error; err != nil {
					return err
				}
			}
			ids = append(ids, team.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	teams := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		team, err := s.GetTeamByID(id)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	return teams, nil
}

// GetTeams lists teams newest first, expanded. A non-empty date restricts
// the result to teams created within that calendar day.
func (s *TeamService) GetTeams(date string) ([]models.Team, error) {
	var start, end time.Time
	if date != "" {
		var err error
		start, end, err = utils.DayWindow(date)
		if err != nil {
			return nil, newValidationError(err.Error())
		}
	}

	query := s.db.Order("created_at DESC")
	if date != "" {
		query = query.Where("created_at BETWEEN ? AND ?", start, end)
	}

	var teams []models.Team
	if err := query.Preload("Captain").Find(&teams).Error; err != nil {
		return nil, err
	}

	for i := range teams {
		if err := s.loadPlayers(&teams[i]); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

// GetTeamByID returns one team with captain and players expanded.
func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.Preload("Captain").First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	if err := s.loadPlayers(&team); err != nil {
		return nil, err
	}
	return &team, nil
}

// DeleteTeam removes one team and its membership rows.
func (s *TeamService) DeleteTeam(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamPlayer{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Team{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamNotFound
		}
		return nil
	})
}

// DeleteTeamsByDate removes every team created within the given calendar day
// and reports how many were removed. Zero matches is not an error.
func (s *TeamService) DeleteTeamsByDate(date string) (int64, error) {
	start, end, err := utils.DayWindow(date)
	if err != nil {
		return 0, newValidationError(err.Error())
	}

	var deleted int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		matching := tx.Model(&models.Team{}).Select("id").
			Where("created_at BETWEEN ? AND ?", start, end)
		if err := tx.Where("team_id IN (?)", matching).Delete(&models.TeamPlayer{}).Error; err != nil {
			return err
		}

		result := tx.Where("created_at BETWEEN ? AND ?", start, end).Delete(&models.Team{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// checkReferences verifies every submitted player id exists at creation
// time. After creation nothing maintains the references; deleting a player
// later leaves the team with a dangling entry.
func (s *TeamService) checkReferences(tx *gorm.DB, group TeamGroup) error {
	if group.Captain.ID == 0 {
		return newValidationError("captain id is required")
	}

	ids := make([]uint, 0, len(group.Players)+1)
	ids = append(ids, group.Captain.ID)
	for _, player := range group.Players {
		if player.ID == 0 {
			return newValidationError("player id is required")
		}
		ids = append(ids, player.ID)
	}

	var found []uint
	if err := tx.Model(&models.Player{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return err
	}

	known := make(map[uint]bool, len(found))
	for _, id := range found {
		known[id] = true
	}
	for _, id := range ids {
		if !known[id] {
			return newValidationError(fmt.Sprintf("player %d does not exist", id))
		}
	}
	return nil
}

// loadPlayers fills team.Players in submission order. Players deleted since
// the team was saved drop out of the join rather than failing the read.
func (s *TeamService) loadPlayers(team *models.Team) error {
	players := []models.Player{}
	err := s.db.Table("team_players").
		Select("players.*").
		Joins("JOIN players ON players.id = team_players.player_id").
		Where("team_players.team_id = ?", team.ID).
		Order("team_players.slot").
		Scan(&players).Error
	if err != nil {
		return err
	}
	team.Players = players
	return nil
}

// deriveTeamName picks the submitted captain's teamName, falling back to the
// captain's own name when none was set.
func deriveTeamName(captain models.Player) string {
	if captain.TeamName != "" {
		return captain.TeamName
	}
	return captain.Name
}

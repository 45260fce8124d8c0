// services/player_service.go - Player CRUD business logic
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"teamplay/models"
)

var validate = validator.New()

// PlayerInput is the payload for creating a player.
type PlayerInput struct {
	Name      string          `json:"name" validate:"required"`
	Position  models.Position `json:"position" validate:"required,oneof=Striker Midfielder Defender Goalkeeper"`
	IsCaptain bool            `json:"isCaptain"`
	TeamName  string          `json:"teamName"`
}

// PlayerUpdate is a partial field set; nil fields are left untouched.
type PlayerUpdate struct {
	Name      *string          `json:"name"`
	Position  *models.Position `json:"position"`
	IsCaptain *bool            `json:"isCaptain"`
	TeamName  *string          `json:"teamName"`
}

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

// ListPlayers returns every player in store order.
func (s *PlayerService) ListPlayers() ([]models.Player, error) {
	var players []models.Player
	if err := s.db.Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// AddPlayer validates and stores a new player, returning the stored record
// with its assigned id and timestamps.
func (s *PlayerService) AddPlayer(in PlayerInput) (*models.Player, error) {
	if err := validate.Struct(in); err != nil {
		return nil, newValidationError(validationMessage(err))
	}

	player := &models.Player{
		Name:      in.Name,
		Position:  in.Position,
		IsCaptain: in.IsCaptain,
		TeamName:  in.TeamName,
	}
	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}
	return player, nil
}

// UpdatePlayer applies a partial field set and returns the updated record.
func (s *PlayerService) UpdatePlayer(id uint, in PlayerUpdate) (*models.Player, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, newValidationError("name cannot be empty")
		}
		updates["name"] = *in.Name
	}
	if in.Position != nil {
		if !in.Position.Valid() {
			return nil, newValidationError(invalidPositionMessage(*in.Position))
		}
		updates["position"] = *in.Position
	}
	if in.IsCaptain != nil {
		updates["is_captain"] = *in.IsCaptain
	}
	if in.TeamName != nil {
		updates["team_name"] = *in.TeamName
	}

	player, err := s.getPlayer(id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return player, nil
	}

	if err := s.db.Model(player).Updates(updates).Error; err != nil {
		return nil, err
	}
	return player, nil
}

// DeletePlayer removes a player. Teams referencing it keep their rows; the
// reference simply stops resolving on expansion.
func (s *PlayerService) DeletePlayer(id uint) error {
	result := s.db.Delete(&models.Player{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// ToggleCaptain flips the captain flag and returns the updated record.
func (s *PlayerService) ToggleCaptain(id uint) (*models.Player, error) {
	player, err := s.getPlayer(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(player).Update("is_captain", !player.IsCaptain).Error; err != nil {
		return nil, err
	}
	return player, nil
}

// SetTeamName overwrites the player's teamName and returns the updated record.
func (s *PlayerService) SetTeamName(id uint, teamName string) (*models.Player, error) {
	player, err := s.getPlayer(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(player).Update("team_name", teamName).Error; err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) getPlayer(id uint) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// validationMessage flattens a validator error into a single readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return invalidPositionMessage(models.Position(fmt.Sprint(fe.Value())))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func invalidPositionMessage(p models.Position) string {
	allowed := make([]string, len(models.Positions))
	for i, pos := range models.Positions {
		allowed[i] = string(pos)
	}
	return fmt.Sprintf("position %q is not one of %s", p, strings.Join(allowed, ", "))
}

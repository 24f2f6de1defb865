package transport

import (
	"github.com/google/uuid"

	"github.com/lexloop/vocab_server/internal/models"
	"github.com/lexloop/vocab_server/internal/tokens"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateWordRequest struct {
	Words               models.StringList `json:"words"`
	Definitions         models.StringList `json:"definitions"`
	Images              models.StringList `json:"images"`
	Audio               models.StringList `json:"audio"`
	ListenHighScore     int               `json:"listenhighscore"`
	ImageHighScore      int               `json:"imagehighscore"`
	DefinitionHighScore int               `json:"definitionhighscore"`
}

// UpdateWordRequest leaves absent fields nil so PUT and PATCH only
// touch what the client sent.
type UpdateWordRequest struct {
	Words               models.StringList `json:"words"`
	Definitions         models.StringList `json:"definitions"`
	Images              models.StringList `json:"images"`
	Audio               models.StringList `json:"audio"`
	ListenHighScore     *int              `json:"listenhighscore"`
	ImageHighScore      *int              `json:"imagehighscore"`
	DefinitionHighScore *int              `json:"definitionhighscore"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
	}
}

func UserResponseFromClaim(claim tokens.UserClaim) UserResponse {
	return UserResponse{
		ID:       claim.ID,
		Username: claim.Username,
		Email:    claim.Email,
		Name:     claim.Name,
	}
}

type AuthResponse struct {
	JwtToken string       `json:"jwtToken"`
	User     UserResponse `json:"user"`
}

// WordResponse embeds the owner's full projection. Used where the
// owner record is loaded alongside the word.
type WordResponse struct {
	ID                  uuid.UUID         `json:"id"`
	User                UserResponse      `json:"user"`
	Words               models.StringList `json:"words"`
	Definitions         models.StringList `json:"definitions"`
	Images              models.StringList `json:"images"`
	Audio               models.StringList `json:"audio"`
	ListenHighScore     int               `json:"listenhighscore"`
	ImageHighScore      int               `json:"imagehighscore"`
	DefinitionHighScore int               `json:"definitionhighscore"`
}

func NewWordResponse(w *models.Word) WordResponse {
	return WordResponse{
		ID:                  w.ID,
		User:                NewUserResponse(&w.User),
		Words:               w.Words,
		Definitions:         w.Definitions,
		Images:              w.Images,
		Audio:               w.Audio,
		ListenHighScore:     w.ListenHighScore,
		ImageHighScore:      w.ImageHighScore,
		DefinitionHighScore: w.DefinitionHighScore,
	}
}

// WordRefResponse carries only the owner's id. Used right after create,
// where the owner record was never loaded.
type WordRefResponse struct {
	ID                  uuid.UUID         `json:"id"`
	User                uuid.UUID         `json:"user"`
	Words               models.StringList `json:"words"`
	Definitions         models.StringList `json:"definitions"`
	Images              models.StringList `json:"images"`
	Audio               models.StringList `json:"audio"`
	ListenHighScore     int               `json:"listenhighscore"`
	ImageHighScore      int               `json:"imagehighscore"`
	DefinitionHighScore int               `json:"definitionhighscore"`
}

func NewWordRefResponse(w *models.Word) WordRefResponse {
	return WordRefResponse{
		ID:                  w.ID,
		User:                w.UserID,
		Words:               w.Words,
		Definitions:         w.Definitions,
		Images:              w.Images,
		Audio:               w.Audio,
		ListenHighScore:     w.ListenHighScore,
		ImageHighScore:      w.ImageHighScore,
		DefinitionHighScore: w.DefinitionHighScore,
	}
}

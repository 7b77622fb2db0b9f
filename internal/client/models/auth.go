package models

// AuthPayload is the body returned by login and refresh: a fresh token pair
// plus the authenticated user.
type AuthPayload struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

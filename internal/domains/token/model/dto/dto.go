package dto

// IssueTokenRequest is the caller supplied payload signed into the token.
type IssueTokenRequest map[string]any

type TokenResponse struct {
	Token string `json:"token"`
}

package dto

type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AccessTokenOutput struct {
	AccessToken string `json:"accessToken"`
}

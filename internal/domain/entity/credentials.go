package entity

// APICredentials is a client-credentials pair fetched from the secret
// store. Values never appear in logs or user-visible messages.
type APICredentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

package model

// TwitchUser is one resolved identity from the Helix users endpoint.
// Field names follow the Helix response body.
type TwitchUser struct {
	Type            string `json:"type"`
	ID              string `json:"id"`
	Login           string `json:"login"`
	DisplayName     string `json:"display_name"`
	BroadcasterType string `json:"broadcaster_type"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profile_image_url"`
	OfflineImageURL string `json:"offline_image_url"`
}

// TwitchUserList is the Helix users response envelope. Identifiers that did
// not resolve are silently absent from Data; Helix does not report them.
type TwitchUserList struct {
	Data []TwitchUser `json:"data"`
}

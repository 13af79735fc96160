package entity

// Player is the Telegram user behind a game session.
type Player struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// DisplayName is used in logs and activity entries.
func (that *Player) DisplayName() string {
	if that.Username != "" {
		return "@" + that.Username
	}
	return that.ID
}

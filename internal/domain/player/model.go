package player

import "fmt"

// Player is an athlete referenced by player match statistics.
type Player struct {
	ID   string
	Name string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

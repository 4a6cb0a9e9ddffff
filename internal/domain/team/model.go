package team

import "fmt"

// Record is the season aggregate maintained by the fact store.
type Record struct {
	Wins   int
	Draws  int
	Losses int
}

// Team is a club taking part in a season.
type Team struct {
	ID     string
	Name   string
	Short  string
	Record Record
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

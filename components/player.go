package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Controlled bool // Driven by this client's input
	Contact    bool // Overlapping a visible enemy this tick (cosmetic only)
}

var Player = donburi.NewComponentType[PlayerData]()

package websocket

import "fmt"

// ReplayEntry is one clickable time-travel target: jumping to its step
// replays the game up to that move.
type ReplayEntry struct {
	Step  int    `json:"step"`
	Label string `json:"label"`
}

func replayList(lastStep int) []ReplayEntry {
	entries := make([]ReplayEntry, 0, lastStep+1)

	entries = append(entries, ReplayEntry{Step: 0, Label: "Go to game start"})

	for step := 1; step <= lastStep; step++ {
		entries = append(entries, ReplayEntry{Step: step, Label: fmt.Sprintf("Go to move #%d", step)})
	}

	return entries
}

package domain

// StateLabel identifies the menu node a user is currently positioned at
type StateLabel string

// StateHome is the root menu state; users with no stored state are treated as being here
const StateHome StateLabel = "HOME"

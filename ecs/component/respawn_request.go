package component

// RespawnRequest is a marker component indicating the character should be
// moved back to the level spawn.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()

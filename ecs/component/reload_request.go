package component

// ReloadRequest is a marker component used to signal that prefabs changed
// on disk. Systems may create a short-lived entity with this component.
type ReloadRequest struct {
	Character bool
	Level     bool
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()

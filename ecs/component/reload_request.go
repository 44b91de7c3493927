package component

// ReloadRequest is a short-lived marker asking the tuning reload system to
// re-read a prefab file and push its values into live entities.
type ReloadRequest struct {
	File string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()

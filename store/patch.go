package store

// Patch is a partial update to exactly one slice. Patches are built with the
// per-slice constructors below; the mutation function receives the live slice
// value and sets only the fields it cares about, which gives shallow-merge
// semantics; untouched fields keep their current values.
type Patch interface {
	Key() Key
	// apply is unexported so every Patch flowing into Apply carries a known
	// key and a store-owned application path.
	apply(*State)
}

type patch struct {
	key Key
	fn  func(*State)
}

func (p patch) Key() Key       { return p.key }
func (p patch) apply(s *State) { p.fn(s) }

// Project returns a patch over the project slice.
func Project(fn func(*ProjectSlice)) Patch {
	return patch{KeyProject, func(s *State) { fn(&s.Project) }}
}

// Users returns a patch over the users slice.
func Users(fn func(*UsersSlice)) Patch {
	return patch{KeyUsers, func(s *State) { fn(&s.Users) }}
}

// Groups returns a patch over the groups slice.
func Groups(fn func(*GroupsSlice)) Patch {
	return patch{KeyGroups, func(s *State) { fn(&s.Groups) }}
}

// Images returns a patch over the images slice.
func Images(fn func(*ImagesSlice)) Patch {
	return patch{KeyImages, func(s *State) { fn(&s.Images) }}
}

// Repository returns a patch over the repository slice.
func Repository(fn func(*RepositorySlice)) Patch {
	return patch{KeyRepository, func(s *State) { fn(&s.Repository) }}
}

// Camera returns a patch over the camera slice.
func Camera(fn func(*CameraSlice)) Patch {
	return patch{KeyCamera, func(s *State) { fn(&s.Camera) }}
}

// UI returns a patch over the ui slice.
func UI(fn func(*UISlice)) Patch {
	return patch{KeyUI, func(s *State) { fn(&s.UI) }}
}

// App returns a patch over the app slice.
func App(fn func(*AppSlice)) Patch {
	return patch{KeyApp, func(s *State) { fn(&s.App) }}
}

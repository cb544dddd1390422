package trash

// Failure records one candidate that could not be moved to the trash.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes a relocation phase.
type Result struct {
	// Trashed lists the paths successfully moved, in attempt order.
	Trashed []string

	// Failed lists candidates whose relocation was attempted and failed.
	Failed []Failure

	// Skipped is true when no trash backend was available and nothing
	// was attempted at all. Distinct from Failed: skipped candidates
	// were never touched.
	Skipped bool
}

// Relocate moves every orphan in groups to the trash using svc. Groups map
// a library path to its orphan directories; candidates are attempted in
// the given per-library order, libraries in the given key order. One
// failure never stops the remaining candidates.
//
// When svc reports unavailable the whole phase is skipped and the result
// carries Skipped=true with zero attempts.
func Relocate(libraries []string, groups map[string][]string, svc Service) Result {
	var res Result

	if !svc.Available() {
		logger.Info("trash backend unavailable, skipping relocation")
		res.Skipped = true
		return res
	}

	for _, lib := range libraries {
		for _, path := range groups[lib] {
			if err := svc.MoveToTrash(path); err != nil {
				logger.Warn("failed to trash directory", "path", path, "error", err)
				res.Failed = append(res.Failed, Failure{Path: path, Err: err})
				continue
			}
			logger.Info("moved to trash", "path", path)
			res.Trashed = append(res.Trashed, path)
		}
	}

	return res
}

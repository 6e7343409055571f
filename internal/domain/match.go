package domain

// Match is one file eligible for relocation.
type Match struct {
	Path string
	Name string
}

// MoveResult records the outcome for a single file. A nil Err means the
// file was moved.
type MoveResult struct {
	Name string
	Err  error
}

// MoveReport aggregates the per-file results of one run.
type MoveReport struct {
	Moved   int
	Results []MoveResult
}

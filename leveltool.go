/*
Package leveltool compiles hand-painted level layouts into tile grids,
rendered images and collision dumps.
*/
package leveltool

import "log"

type LevelTool struct {
	db     *BuildDB
	logger *log.Logger
}

// New returns a tool using db to skip unchanged levels. db may be nil, in
// which case every level is rebuilt unconditionally.
func New(db *BuildDB, logger *log.Logger) *LevelTool {
	return &LevelTool{
		db:     db,
		logger: logger,
	}
}

package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex //nolint: gochecknoglobals

// Migrate applies the migrations found under <dir>/<dialect> of fsys and
// returns the resulting schema version.
func (s *Store) Migrate(ctx context.Context, fsys fs.FS, dir string) (int64, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return 0, fmt.Errorf("could not migrate inside a tx")
	}

	sub, err := fs.Sub(fsys, path.Join(dir, s.dialect))
	if err != nil {
		return 0, fmt.Errorf("could not open %s migrations: %w", s.dialect, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return 0, fmt.Errorf("could not set goose dialect to %s: %w", s.dialect, err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return 0, fmt.Errorf("could not migrate %s: %w", s.dialect, err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("could not read schema version: %w", err)
	}

	return version, nil
}

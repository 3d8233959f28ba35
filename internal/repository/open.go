package repository

import (
	"fmt"
	"log"

	"github.com/awsl-project/entrainde/internal/repository/gormdb"
	"github.com/awsl-project/entrainde/internal/repository/jsonfile"
)

// Open returns the task backend: a SQL database when dsn is set, the JSON
// document at jsonPath otherwise.
func Open(dsn, jsonPath string) (TaskRepository, error) {
	if dsn == "" {
		log.Printf("[Store] Using JSON file: %s", jsonPath)
		return jsonfile.NewRepository(jsonPath), nil
	}

	db, err := gormdb.NewDBWithDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("open task database: %w", err)
	}
	log.Printf("[Store] Using %s database", db.Dialector())
	return gormdb.NewTaskRepository(db), nil
}

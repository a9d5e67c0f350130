// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection to the database with sane
// pool settings and an initial ping guarded by a timeout.
//
// # Schema Inspection
//
// The package also includes tools to inspect the live schema, used by the
// migrate command to verify that the expected tables and columns exist.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "fridge_sessions")
package database

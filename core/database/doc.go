// Package database handles the connection to the emulator database.
//
// It wraps GORM to configure MySQL connections from the application
// configuration: URL-safe credentials, connection/read/write timeouts in
// the DSN, pool limits, and an upfront ping so an unreachable database
// fails at startup rather than on the first tree reload.
//
// The connection is optional. When it fails, the dashboard builds its
// tree from storage alone and the caller logs a warning.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database

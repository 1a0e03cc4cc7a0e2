// Package database opens the relational mirror and inspects its schema.
//
// Connect wraps GORM and selects the MySQL or SQLite dialector from the
// configured driver. GetTableColumns and MissingColumns read the live
// schema so the integrity checks can verify that mirror tables carry the
// columns the mirror models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Mirror database unavailable", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "mirror_pokemon")
package database

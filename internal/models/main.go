package models

// ModelRegistry lists the models gorm AutoMigrate manages in development.
// Production schemas come from the SQL files under migrations/.
var ModelRegistry = []any{
	&WaitlistEntry{},
	&User{},
}

package core

type AppConfig interface {
	GetRuntimePath() string
	GetDatabasePath() string
	GetContextPath() string
	GetKnowledgePath() string
	GetLanguage() string
}

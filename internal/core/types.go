package core

import (
	"errors"
	"time"
)

const (
	BodaiName    = "BODAI"
	BodaiVersion = "0.2.0"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrNotFound        = errors.New("record not found")
	ErrInvalidCategory = errors.New("invalid profile category")
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// ContextEntry is one turn of the recent conversation log.
type ContextEntry struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Memory is a free-text record. Timestamp is in Unix seconds.
type Memory struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

func (m Memory) CreatedAt() time.Time {
	return time.Unix(m.Timestamp, 0)
}

type Category string

const (
	CategoryHobby      Category = "hobby"
	CategoryPreference Category = "preferinta"
	CategoryLocation   Category = "loc"
	CategoryIdentity   Category = "identitate"
	CategoryProfession Category = "profesie"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHobby, CategoryPreference, CategoryLocation, CategoryIdentity, CategoryProfession:
		return true
	}
	return false
}

type ProfileFact struct {
	ID        int64    `json:"id"`
	Category  Category `json:"category"`
	Info      string   `json:"info"`
	Timestamp int64    `json:"timestamp"`
}

// KnowledgeItem is a fixed question/answer pair of the knowledge base.
type KnowledgeItem struct {
	Question string `json:"q" yaml:"q"`
	Answer   string `json:"a" yaml:"a"`
}

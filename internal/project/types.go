// Package project describes what rdt generates: a validated, immutable
// project configuration and the framework/ORM compatibility matrix.
package project

import (
	"fmt"
	"strings"
)

// Framework is a supported web framework.
type Framework string

// ORM is a supported object-relational mapper.
type ORM string

// Database is a database kind label.
type Database string

const (
	FlaskRestx Framework = "Flask-Restx"
	FastAPI    Framework = "FastAPI"
	DjangoRest Framework = "Django-Rest"
)

const (
	SQLAlchemy  ORM = "SQLAlchemy"
	TortoiseORM ORM = "TortoiseORM"
	Peewee      ORM = "Peewee"
	DjangoORM   ORM = "DjangoORM"
)

const (
	PostgreSQL Database = "PostgreSQL"
	MySQL      Database = "MySQL"
	SQLite     Database = "SQLite"
)

var (
	allFrameworks = []Framework{FlaskRestx, FastAPI, DjangoRest}
	allORMs       = []ORM{SQLAlchemy, TortoiseORM, Peewee, DjangoORM}
	allDatabases  = []Database{PostgreSQL, MySQL, SQLite}
)

// ORMs lists every known ORM.
func ORMs() []ORM {
	return append([]ORM(nil), allORMs...)
}

// Databases lists every known database kind.
func Databases() []Database {
	return append([]Database(nil), allDatabases...)
}

// Valid reports whether f is a known framework.
func (f Framework) Valid() bool {
	for _, known := range allFrameworks {
		if f == known {
			return true
		}
	}
	return false
}

// Valid reports whether o is a known ORM.
func (o ORM) Valid() bool {
	for _, known := range allORMs {
		if o == known {
			return true
		}
	}
	return false
}

// Valid reports whether d is a known database kind.
func (d Database) Valid() bool {
	for _, known := range allDatabases {
		if d == known {
			return true
		}
	}
	return false
}

// ParseFramework matches s against the known frameworks, ignoring case.
func ParseFramework(s string) (Framework, error) {
	for _, f := range allFrameworks {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return Framework(s), choiceError("framework", s, allFrameworks)
}

// ParseORM matches s against the known ORMs, ignoring case.
func ParseORM(s string) (ORM, error) {
	for _, o := range allORMs {
		if strings.EqualFold(strings.TrimSpace(s), string(o)) {
			return o, nil
		}
	}
	return ORM(s), choiceError("orm", s, allORMs)
}

// ParseDatabase matches s against the known database kinds, ignoring case.
func ParseDatabase(s string) (Database, error) {
	for _, d := range allDatabases {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return Database(s), choiceError("database", s, allDatabases)
}

func choiceError[T ~string](field, got string, valid []T) error {
	return ValidationErrors{{
		Field:   field,
		Message: fmt.Sprintf("%q is not one of %s", got, joinChoices(valid)),
	}}
}

func joinChoices[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

package project

import "fmt"

// Compatibility describes which ORMs and databases a framework works with.
type Compatibility struct {
	Framework        Framework  `json:"framework"`
	CompatibleORMs   []ORM      `json:"compatibleOrms"`
	IncompatibleORMs []ORM      `json:"incompatibleOrms"`
	Reason           string     `json:"reason"`
	Databases        []Database `json:"databases"`
	Async            bool       `json:"async"`
}

var compatibility = map[Framework]Compatibility{
	FlaskRestx: {
		Framework:        FlaskRestx,
		CompatibleORMs:   []ORM{SQLAlchemy, Peewee},
		IncompatibleORMs: []ORM{TortoiseORM},
		Reason:           "Flask is synchronous, TortoiseORM is async-only",
		Databases:        allDatabases,
	},
	FastAPI: {
		Framework:        FastAPI,
		CompatibleORMs:   []ORM{SQLAlchemy, TortoiseORM},
		IncompatibleORMs: []ORM{Peewee},
		Reason:           "FastAPI is async, Peewee is sync-only",
		Databases:        allDatabases,
		Async:            true,
	},
	DjangoRest: {
		Framework:        DjangoRest,
		CompatibleORMs:   []ORM{DjangoORM},
		IncompatibleORMs: []ORM{SQLAlchemy, TortoiseORM, Peewee},
		Reason:           "Django-Rest uses Django ORM exclusively",
		Databases:        allDatabases,
	},
}

// Frameworks lists the supported frameworks in display order.
func Frameworks() []Framework {
	return append([]Framework(nil), allFrameworks...)
}

// FrameworkInfo returns the compatibility entry for fw.
func FrameworkInfo(fw Framework) (Compatibility, bool) {
	c, ok := compatibility[fw]
	if !ok {
		return Compatibility{}, false
	}
	c.CompatibleORMs = append([]ORM(nil), c.CompatibleORMs...)
	c.IncompatibleORMs = append([]ORM(nil), c.IncompatibleORMs...)
	c.Databases = append([]Database(nil), c.Databases...)
	return c, true
}

// CompatibleORMs returns the ORMs that work with fw, preferred first.
// An unknown framework yields nil.
func CompatibleORMs(fw Framework) []ORM {
	c, ok := FrameworkInfo(fw)
	if !ok {
		return nil
	}
	return c.CompatibleORMs
}

// ValidateCombination reports whether orm can be used with fw and, when it
// cannot, why.
func ValidateCombination(fw Framework, orm ORM) (bool, string) {
	c, ok := compatibility[fw]
	if !ok {
		return false, fmt.Sprintf("unknown framework %q", fw)
	}
	for _, o := range c.CompatibleORMs {
		if o == orm {
			return true, ""
		}
	}
	for _, o := range c.IncompatibleORMs {
		if o == orm {
			return false, c.Reason
		}
	}
	return false, fmt.Sprintf("%s is not supported with %s", orm, fw)
}

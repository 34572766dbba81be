package templates

import (
	"sort"
	"strings"

	"github.com/rdt-dev/rdt/internal/project"
)

// AuthSuffix marks a template key as the auth-enabled variant of another key.
const AuthSuffix = "_auth"

// Framework-layer keys.
const (
	KeyInit        = "init"
	KeyExtensions  = "extensions"
	KeyConfig      = "config"
	KeyModels      = "models"
	KeyRoutes      = "routes"
	KeyMain        = "main"
	KeyDatabase    = "database"
	KeySchemas     = "schemas"
	KeySettings    = "settings"
	KeyURLs        = "urls"
	KeySerializers = "serializers"
	KeyViews       = "views"
)

// Common-layer keys.
const (
	KeyGitignore     = "gitignore"
	KeyEnvExample    = "env_example"
	KeyReadme        = "readme"
	KeyLicense       = "license"
	KeyDockerfile    = "dockerfile"
	KeyDockerCompose = "docker_compose"
	KeyDockerignore  = "dockerignore"
	KeySecurity      = "security"
	KeyPytestIni     = "pytest_ini"
	KeyPyproject     = "pyproject_toml"
)

// Test-layer keys.
const (
	KeyConftest     = "conftest"
	KeyTestAPI      = "test_api"
	KeyTestModels   = "test_models"
	KeyTestSecurity = "test_security"
)

// Pair is a framework/ORM combination.
type Pair struct {
	Framework project.Framework
	ORM       project.ORM
}

type table map[string]string

var frameworkTemplates = map[Pair]table{
	{project.FlaskRestx, project.SQLAlchemy}: {
		KeyInit:                    "flask_restx/sqlalchemy/init.py.tmpl",
		KeyInit + AuthSuffix:       "flask_restx/sqlalchemy/init_auth.py.tmpl",
		KeyExtensions:              "flask_restx/sqlalchemy/extensions.py.tmpl",
		KeyExtensions + AuthSuffix: "flask_restx/sqlalchemy/extensions_auth.py.tmpl",
		KeyModels:                  "flask_restx/sqlalchemy/models.py.tmpl",
		KeyRoutes:                  "flask_restx/sqlalchemy/routes.py.tmpl",
		KeyRoutes + AuthSuffix:     "flask_restx/sqlalchemy/routes_auth.py.tmpl",
		KeyConfig:                  "flask_restx/sqlalchemy/config.py.tmpl",
	},
	{project.FlaskRestx, project.Peewee}: {
		KeyInit:                    "flask_restx/peewee/init.py.tmpl",
		KeyInit + AuthSuffix:       "flask_restx/peewee/init_auth.py.tmpl",
		KeyExtensions:              "flask_restx/peewee/extensions.py.tmpl",
		KeyExtensions + AuthSuffix: "flask_restx/peewee/extensions_auth.py.tmpl",
		KeyModels:                  "flask_restx/peewee/models.py.tmpl",
		KeyRoutes:                  "flask_restx/peewee/routes.py.tmpl",
		KeyRoutes + AuthSuffix:     "flask_restx/peewee/routes_auth.py.tmpl",
		KeyConfig:                  "flask_restx/peewee/config.py.tmpl",
	},
	{project.FastAPI, project.SQLAlchemy}: {
		KeyMain:                "fastapi/sqlalchemy/main.py.tmpl",
		KeyMain + AuthSuffix:   "fastapi/sqlalchemy/main_auth.py.tmpl",
		KeyDatabase:            "fastapi/sqlalchemy/database.py.tmpl",
		KeyModels:              "fastapi/sqlalchemy/models.py.tmpl",
		KeyRoutes:              "fastapi/sqlalchemy/routes.py.tmpl",
		KeyRoutes + AuthSuffix: "fastapi/sqlalchemy/routes_auth.py.tmpl",
		KeyConfig:              "fastapi/sqlalchemy/config.py.tmpl",
		KeySchemas:             "fastapi/sqlalchemy/schemas.py.tmpl",
	},
	{project.FastAPI, project.TortoiseORM}: {
		KeyMain:                "fastapi/tortoise/main.py.tmpl",
		KeyMain + AuthSuffix:   "fastapi/tortoise/main_auth.py.tmpl",
		KeyDatabase:            "fastapi/tortoise/database.py.tmpl",
		KeyModels:              "fastapi/tortoise/models.py.tmpl",
		KeyRoutes:              "fastapi/tortoise/routes.py.tmpl",
		KeyRoutes + AuthSuffix: "fastapi/tortoise/routes_auth.py.tmpl",
		KeyConfig:              "fastapi/tortoise/config.py.tmpl",
		KeySchemas:             "fastapi/tortoise/schemas.py.tmpl",
	},
	{project.DjangoRest, project.DjangoORM}: {
		KeySettings:           "django_rest/settings.py.tmpl",
		KeyURLs:               "django_rest/urls.py.tmpl",
		KeyModels:             "django_rest/models.py.tmpl",
		KeySerializers:        "django_rest/serializers.py.tmpl",
		KeyViews:              "django_rest/views.py.tmpl",
		KeyViews + AuthSuffix: "django_rest/views_auth.py.tmpl",
	},
}

var commonTemplates = table{
	KeyGitignore:     "common/gitignore.tmpl",
	KeyEnvExample:    "common/env.example.tmpl",
	KeyReadme:        "common/README.md.tmpl",
	KeyLicense:       "common/LICENSE.tmpl",
	KeyDockerfile:    "common/Dockerfile.tmpl",
	KeyDockerCompose: "common/docker-compose.yml.tmpl",
	KeyDockerignore:  "common/dockerignore.tmpl",
	KeySecurity:      "common/security.py.tmpl",
	KeyPytestIni:     "common/pytest.ini.tmpl",
	KeyPyproject:     "common/pyproject.toml.tmpl",
}

const testSecurityTemplate = "common/test_security.py.tmpl"

var testTemplates = map[Pair]table{
	{project.FlaskRestx, project.SQLAlchemy}: {
		KeyConftest:     "flask_restx/sqlalchemy/conftest.py.tmpl",
		KeyTestAPI:      "flask_restx/sqlalchemy/test_api.py.tmpl",
		KeyTestModels:   "flask_restx/sqlalchemy/test_models.py.tmpl",
		KeyTestSecurity: testSecurityTemplate,
	},
	{project.FlaskRestx, project.Peewee}: {
		KeyConftest:     "flask_restx/peewee/conftest.py.tmpl",
		KeyTestAPI:      "flask_restx/peewee/test_api.py.tmpl",
		KeyTestModels:   "flask_restx/peewee/test_models.py.tmpl",
		KeyTestSecurity: testSecurityTemplate,
	},
	{project.FastAPI, project.SQLAlchemy}: {
		KeyConftest:     "fastapi/sqlalchemy/conftest.py.tmpl",
		KeyTestAPI:      "fastapi/sqlalchemy/test_api.py.tmpl",
		KeyTestModels:   "fastapi/sqlalchemy/test_models.py.tmpl",
		KeyTestSecurity: testSecurityTemplate,
	},
	{project.FastAPI, project.TortoiseORM}: {
		KeyConftest:     "fastapi/tortoise/conftest.py.tmpl",
		KeyTestAPI:      "fastapi/tortoise/test_api.py.tmpl",
		KeyTestModels:   "fastapi/tortoise/test_models.py.tmpl",
		KeyTestSecurity: testSecurityTemplate,
	},
	{project.DjangoRest, project.DjangoORM}: {
		KeyConftest:     "django_rest/conftest.py.tmpl",
		KeyTestAPI:      "django_rest/test_api.py.tmpl",
		KeyTestModels:   "django_rest/test_models.py.tmpl",
		KeyTestSecurity: testSecurityTemplate,
	},
}

// isAuthOnly reports whether key only applies when authentication is enabled.
func isAuthOnly(key string) bool {
	return strings.HasSuffix(key, AuthSuffix) || key == KeySecurity || key == KeyTestSecurity
}

func merge(dst, src table, authEnabled bool) {
	for k, v := range src {
		if !authEnabled && isAuthOnly(k) {
			continue
		}
		dst[k] = v
	}
}

// TemplatesForConfig returns logical key to template id for a configuration.
// The framework/ORM layer is merged first, then the common layer, then the
// test layer when testingEnabled is set. Auth-only keys are left out when
// authEnabled is false. The returned map is owned by the caller.
func TemplatesForConfig(fw project.Framework, orm project.ORM, authEnabled, testingEnabled bool) map[string]string {
	pair := Pair{Framework: fw, ORM: orm}
	out := make(map[string]string)

	merge(out, frameworkTemplates[pair], authEnabled)
	merge(out, commonTemplates, authEnabled)
	if testingEnabled {
		merge(out, testTemplates[pair], authEnabled)
	}
	return out
}

// TestTemplates returns the test layer for a combination, or false when the
// combination has no test table.
func TestTemplates(fw project.Framework, orm project.ORM, authEnabled bool) (map[string]string, bool) {
	tests, ok := testTemplates[Pair{Framework: fw, ORM: orm}]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(tests))
	merge(out, tests, authEnabled)
	return out, true
}

// CommonTemplate returns the template id for a common key.
func CommonTemplate(key string) (string, bool) {
	id, ok := commonTemplates[key]
	return id, ok
}

// RequiredTemplates returns the sorted, de-duplicated template ids a
// combination needs with auth and testing enabled. Combinations absent
// from the registry yield nil.
func RequiredTemplates(fw project.Framework, orm project.ORM) []string {
	if !HasCombination(fw, orm) {
		return nil
	}

	seen := make(map[string]bool)
	var ids []string
	for _, id := range TemplatesForConfig(fw, orm, true, true) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// HasCombination reports whether the registry knows the combination.
func HasCombination(fw project.Framework, orm project.ORM) bool {
	_, ok := frameworkTemplates[Pair{Framework: fw, ORM: orm}]
	return ok
}

// Combinations lists every registered combination in framework display order.
func Combinations() []Pair {
	var pairs []Pair
	for _, fw := range project.Frameworks() {
		for _, orm := range project.ORMs() {
			if HasCombination(fw, orm) {
				pairs = append(pairs, Pair{Framework: fw, ORM: orm})
			}
		}
	}
	return pairs
}

package deps

import "github.com/rdt-dev/rdt/internal/project"

var baseDeps = []string{
	"python-dotenv>=1.0.0",
	"pydantic>=2.5.0",
	"pydantic-settings>=2.1.0",
}

var testingDeps = []string{
	"pytest>=7.4.0",
	"pytest-cov>=4.1.0",
	"pytest-asyncio>=0.21.0",
}

type frameworkSet struct {
	base       []string
	auth       []string
	production []string
}

var frameworkDeps = map[project.Framework]frameworkSet{
	project.FlaskRestx: {
		base:       []string{"Flask>=3.0.0", "flask-restx>=1.3.0", "flask-cors>=4.0.0"},
		auth:       []string{"flask-jwt-extended>=4.5.0", "passlib[bcrypt]>=1.7.4"},
		production: []string{"gunicorn>=21.2.0", "gevent>=23.9.1"},
	},
	project.FastAPI: {
		base:       []string{"fastapi>=0.109.0", "uvicorn[standard]>=0.27.0", "python-multipart>=0.0.6"},
		auth:       []string{"python-jose[cryptography]>=3.3.0", "passlib[bcrypt]>=1.7.4"},
		production: []string{"uvicorn[standard]>=0.27.0"},
	},
	project.DjangoRest: {
		base:       []string{"Django>=5.0.0", "djangorestframework>=3.14.0", "django-cors-headers>=4.3.0", "django-filter>=23.5"},
		auth:       []string{"djangorestframework-simplejwt>=5.3.0", "passlib[bcrypt]>=1.7.4"},
		production: []string{"gunicorn>=21.2.0", "whitenoise>=6.6.0"},
	},
}

type ormSet struct {
	base         []string
	perFramework map[project.Framework][]string
}

var ormDeps = map[project.ORM]ormSet{
	project.SQLAlchemy: {
		base: []string{"sqlalchemy>=2.0.0"},
		perFramework: map[project.Framework][]string{
			project.FlaskRestx: {"flask-sqlalchemy>=3.1.0", "Flask-Migrate>=4.0.0"},
			project.FastAPI:    {"sqlalchemy[asyncio]>=2.0.0", "alembic>=1.13.0"},
		},
	},
	project.TortoiseORM: {
		base: []string{"tortoise-orm>=0.20.0"},
		perFramework: map[project.Framework][]string{
			project.FastAPI: {"aerich>=0.7.0"},
		},
	},
	project.Peewee: {
		base: []string{"peewee>=3.17.0"},
		perFramework: map[project.Framework][]string{
			project.FlaskRestx: {"peewee-migrate>=1.12.0"},
		},
	},
	project.DjangoORM: {},
}

type driverSet struct {
	sync  []string
	async []string
}

var dbDrivers = map[project.Database]driverSet{
	project.PostgreSQL: {sync: []string{"psycopg2-binary>=2.9.9"}, async: []string{"asyncpg>=0.29.0"}},
	project.MySQL:      {sync: []string{"mysqlclient>=2.2.0"}, async: []string{"aiomysql>=0.2.0"}},
	project.SQLite:     {async: []string{"aiosqlite>=0.19.0"}},
}

var recommendedDeps = []string{
	"rich>=13.7.0",
	"httpx>=0.26.0",
}

var devDeps = []string{
	"black>=23.12.0",
	"ruff>=0.1.0",
	"mypy>=1.7.0",
	"pre-commit>=3.6.0",
}

package output

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	files := map[string]string{
		"src/main.py":      "entrypoint",
		"src/api/views.py": "",
		"README.md":        "docs",
	}

	got := stripAnsi(RenderFileTree("my-api", files))

	assert.Contains(t, got, "my-api/\n")
	assert.Contains(t, got, "├── src/\n")
	assert.Contains(t, got, "│   ├── api/\n")
	assert.Contains(t, got, "│   │   └── views.py\n")
	assert.Contains(t, got, "entrypoint")
	assert.Contains(t, got, "└── README.md")
}

func TestRenderFileTreeEmpty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("x", nil))
}

func TestTableRendersRows(t *testing.T) {
	tbl := NewTable("FRAMEWORK", "ORMS").
		Row("FastAPI", "SQLAlchemy, TortoiseORM").
		Row("Django-Rest", "DjangoORM")

	assert.Equal(t, 2, tbl.Len())
	got := stripAnsi(tbl.String())
	assert.Contains(t, got, "FRAMEWORK")
	assert.Contains(t, got, "TortoiseORM")
}

func TestTableTitle(t *testing.T) {
	got := stripAnsi(NewTable().Title("Project").Row("Name", "my-api").String())
	assert.Contains(t, got, "Project\n")
	assert.Contains(t, got, "my-api")
}

func TestRenderMarkdownPlain(t *testing.T) {
	assert.Equal(t, "# Next\n", RenderMarkdown("# Next\n", false))
}

func TestRenderFileTreeAlignsDescriptions(t *testing.T) {
	files := map[string]string{
		"README.md":              "docs",
		"src/models/__init__.py": "package marker",
	}

	lines := strings.Split(stripAnsi(RenderFileTree("api", files)), "\n")

	col := func(desc string) int {
		for _, l := range lines {
			if i := strings.Index(l, desc); i >= 0 {
				return utf8.RuneCountInString(l[:i])
			}
		}
		return -1
	}
	assert.Equal(t, descriptionColumn, col("docs"))
	assert.Equal(t, descriptionColumn, col("package marker"))
}

func TestRenderFileTreeFileBecomesDirectory(t *testing.T) {
	got := stripAnsi(RenderSimpleTree("api", []string{"src", "src/main.py"}))

	assert.Contains(t, got, "└── src/\n")
	assert.Contains(t, got, "    └── main.py\n")
}

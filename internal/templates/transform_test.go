package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"my_project", "MyProject"},
		{"my-project", "MyProject"},
		{"blog-api_v2", "BlogApiV2"},
		{"myAPI", "Myapi"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PascalCase(tt.in))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"MyProject", "my_project"},
		{"my-project", "my_project"},
		{"HTTPServer", "httpserver"},
		{"getHTTPResponse", "get_httpresponse"},
		{"__weird--name__", "weird_name"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeCase(tt.in))
		})
	}
}

func TestKebabCase(t *testing.T) {
	assert.Equal(t, "my-project", KebabCase("my_project"))
	assert.Equal(t, "my-project", KebabCase("MyProject"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "My Project", TitleCase("my_project"))
	assert.Equal(t, "Blog Api", TitleCase("blog-api"))
	assert.Equal(t, "My Project2Api", TitleCase("my_project2api"))
	assert.Equal(t, "O'Neil App", TitleCase("o'neil_app"))
	assert.Equal(t, "Shouty Name", TitleCase("SHOUTY_NAME"))
}

func TestSnakePascalRoundTripIsLossy(t *testing.T) {
	assert.Equal(t, "my_project", SnakeCase(PascalCase("my_project")))
	assert.NotEqual(t, "HTTPServer", PascalCase(SnakeCase("HTTPServer")))
}

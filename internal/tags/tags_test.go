package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "no matches",
			content: "nothing of interest here",
			want:    []string{},
		},
		{
			name:    "tag differs from keyword",
			content: "We run PostgreSQL and Kubernetes.",
			want:    []string{"k8s", "postgres"},
		},
		{
			name:    "case-insensitive",
			content: "DOCKER and Redis",
			want:    []string{"docker", "redis"},
		},
		{
			name:    "substring containment fires inside words",
			content: "golang services",
			want:    []string{"go"},
		},
		{
			name:    "duplicate keyword yields one tag",
			content: "docker docker docker",
			want:    []string{"docker"},
		},
		{
			name:    "mixed lexicons sorted alphabetically",
			content: "React app with authentication and a MySQL backend",
			want:    []string{"auth", "mysql", "react"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.content))
		})
	}
}

func TestExtract_TruncatesToMaxTags(t *testing.T) {
	e := NewExtractor()

	// "mongodb" also fires the "go" keyword via substring containment.
	content := "docker kubernetes redis mysql mongodb elasticsearch aws azure"
	got := e.Extract(content)

	assert.Len(t, got, MaxTags)
	// Alphabetical order means truncation keeps the first five sorted tags.
	assert.Equal(t, []string{"aws", "azure", "docker", "elastic", "go"}, got)
}

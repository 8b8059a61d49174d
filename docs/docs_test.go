package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The served spec must describe the API, not just its info block.
func TestSpecCoversRoutes(t *testing.T) {
	var spec struct {
		BasePath    string                     `json:"basePath"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &spec))

	assert.Equal(t, "/api/v1", spec.BasePath)
	assert.NotEmpty(t, spec.Paths)

	for _, path := range []string{
		"/auth/register",
		"/auth/login",
		"/colleges",
		"/student/profile",
		"/student/jobs/{jobId}/apply",
		"/student/jobs/{jobId}/save",
		"/college/jobs/{jobId}/status",
		"/college/stats",
		"/recruiter/jobs",
		"/recruiter/applications/{applicationId}/status",
	} {
		assert.Contains(t, spec.Paths, path)
	}

	for _, definition := range []string{
		"dto.APIResponse",
		"dto.ErrorResponse",
		"models.Job",
		"models.Application",
	} {
		assert.Contains(t, spec.Definitions, definition)
	}
}

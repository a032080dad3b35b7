package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrations_Order(t *testing.T) {
	ms := Migrations()
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		assert.NotNil(t, m.Up)
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"create_resume_documents", "add_updated_at_index_to_resume_documents"}, names)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMermaid(t *testing.T) {
	expected := `erDiagram
    PEOPLE }o--o| ORGANIZATIONS : "works_for"
    PEOPLE }o--o| PEOPLE : "works_for"

    PEOPLE {
        integer id PK
        string name
        date birth_date
        integer works_for FK
        datetime created
        datetime updated
    }
`
	assert.Equal(t, expected, Mermaid(personDescriptor()))
}
